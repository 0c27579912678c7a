package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultTargetLimit = 10

// TransferTargetsArgs is the input schema for the transfer_targets tool.
type TransferTargetsArgs struct {
	Horizon   string `json:"horizon" jsonschema:"Weighting horizon: next|next5 (default next5)"`
	Lookahead int    `json:"lookahead" jsonschema:"Gameweeks to look ahead (0 = horizon default)"`
	Position  int    `json:"position" jsonschema:"Filter by position (1=GK,2=DEF,3=MID,4=FWD, 0=all)"`
	Limit     int    `json:"limit" jsonschema:"How many targets to return (default 10)"`
}

// TransferTargetsResult is the output of the transfer_targets tool.
type TransferTargetsResult struct {
	Horizon        string                       `json:"horizon"`
	Lookahead      int                          `json:"lookahead"`
	StartGW        int                          `json:"start_gw"`
	Position       string                       `json:"position,omitempty"`
	ScoringFormula string                       `json:"scoring_formula"`
	Targets        []engine.TransferIndexResult `json:"targets"`
}

// buildTransferTargets ranks the engine's transfer-index output for
// presentation: index DESC, then season points DESC, then element id
// ASC. The engine itself returns an unordered pool; sorting and
// top-N selection live here.
func buildTransferTargets(cfg ServerConfig, args TransferTargetsArgs) (*TransferTargetsResult, error) {
	horizon := engine.Horizon(strings.TrimSpace(strings.ToLower(args.Horizon)))
	if horizon == "" {
		horizon = engine.HorizonNext5
	}

	lookahead := args.Lookahead
	if lookahead <= 0 {
		if horizon == engine.HorizonNext {
			lookahead = 1
		} else {
			lookahead = 5
		}
	}
	limit := args.Limit
	if limit <= 0 {
		limit = defaultTargetLimit
	}
	if args.Position < 0 || args.Position > 4 {
		return nil, fmt.Errorf("invalid position filter: %d", args.Position)
	}

	snap, err := loadSnapshot(cfg)
	if err != nil {
		return nil, err
	}

	targets, err := engine.ComputeTransferIndex(snap.Players, snap.Fixtures, snap.Teams, snap.Events, lookahead, horizon)
	if err != nil {
		return nil, err
	}

	if args.Position != 0 {
		filtered := targets[:0]
		for _, t := range targets {
			if t.PositionType == args.Position {
				filtered = append(filtered, t)
			}
		}
		targets = filtered
	}

	sort.Slice(targets, func(i, j int) bool {
		if targets[i].TransferIndex != targets[j].TransferIndex {
			return targets[i].TransferIndex > targets[j].TransferIndex
		}
		if targets[i].TotalPoints != targets[j].TotalPoints {
			return targets[i].TotalPoints > targets[j].TotalPoints
		}
		return targets[i].Element < targets[j].Element
	})
	if len(targets) > limit {
		targets = targets[:limit]
	}

	startGW := 0
	if next := snap.nextEvent(); next != nil {
		startGW = next.ID
	}

	out := &TransferTargetsResult{
		Horizon:   string(horizon),
		Lookahead: lookahead,
		StartGW:   startGW,
		Targets:   targets,
	}
	if args.Position != 0 {
		out.Position = positionLabel(args.Position)
	}
	switch horizon {
	case engine.HorizonNext:
		out.ScoringFormula = "index = 0.50*fixture_quality + 0.30*availability + 0.20*clamp(form/8)"
	default:
		out.ScoringFormula = "index = 0.5*clamp(form/10) + 0.5*clamp((5L - difficulty_sum)/(4L))"
	}
	return out, nil
}

func transferTargetsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, TransferTargetsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args TransferTargetsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildTransferTargets(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
