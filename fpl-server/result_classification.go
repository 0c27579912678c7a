package main

import (
	"context"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResultClassificationArgs is the input schema for the
// result_classification tool.
type ResultClassificationArgs struct {
	GW int `json:"gw" jsonschema:"Gameweek to classify (0 = current)"`
}

// ClassifiedResult is one finished fixture with its label relative to
// the pre-match difficulty gap.
type ClassifiedResult struct {
	FixtureID      int                   `json:"fixture_id"`
	Event          int                   `json:"event"`
	HomeShort      string                `json:"home_short"`
	AwayShort      string                `json:"away_short"`
	HomeScore      int                   `json:"home_score"`
	AwayScore      int                   `json:"away_score"`
	Classification engine.Classification `json:"classification"`
}

// ResultClassificationResult is the output of the
// result_classification tool.
type ResultClassificationResult struct {
	GW      int                `json:"gw"`
	Results []ClassifiedResult `json:"results"`
	Skipped int                `json:"skipped_unplayed"`
}

// buildResultClassification labels each played fixture of a gameweek
// as Expected, Upset, or Neutral. Unplayed fixtures are counted, not
// errored: not classifiable is an expected state mid-gameweek.
func buildResultClassification(cfg ServerConfig, args ResultClassificationArgs) (*ResultClassificationResult, error) {
	snap, err := loadSnapshot(cfg)
	if err != nil {
		return nil, err
	}
	gw, err := resolveGW(args.GW, snap.currentEvent())
	if err != nil {
		return nil, err
	}

	positions, err := engine.ComputePositions(snap.Teams, snap.Fixtures)
	if err != nil {
		return nil, err
	}
	short := snap.teamShort()

	out := &ResultClassificationResult{GW: gw, Results: make([]ClassifiedResult, 0)}
	for _, f := range snap.Fixtures {
		if f.Event != gw {
			continue
		}
		homeDiff := engine.RateDifficulty(f.TeamA, snap.Players, positions, false)
		awayDiff := engine.RateDifficulty(f.TeamH, snap.Players, positions, true)
		c := engine.ClassifyResult(f.TeamHScore, f.TeamAScore, homeDiff, awayDiff)
		if c == nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, ClassifiedResult{
			FixtureID:      f.ID,
			Event:          f.Event,
			HomeShort:      short[f.TeamH],
			AwayShort:      short[f.TeamA],
			HomeScore:      *f.TeamHScore,
			AwayScore:      *f.TeamAScore,
			Classification: *c,
		})
	}
	return out, nil
}

func resultClassificationHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, ResultClassificationArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args ResultClassificationArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildResultClassification(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
