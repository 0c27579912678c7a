package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GameStatusArgs is the input schema for the game_status tool.
type GameStatusArgs struct{}

// GameStatusResult reports where the season stands: the current and
// next gameweeks and their deadlines.
type GameStatusResult struct {
	Phase           string `json:"phase"`
	CurrentGW       int    `json:"current_gw,omitempty"`
	CurrentFinished bool   `json:"current_finished,omitempty"`
	NextGW          int    `json:"next_gw,omitempty"`
	NextDeadline    string `json:"next_deadline,omitempty"`
	TotalEvents     int    `json:"total_events"`
}

func buildGameStatus(cfg ServerConfig) (*GameStatusResult, error) {
	snap, err := loadSnapshot(cfg)
	if err != nil {
		return nil, err
	}

	out := &GameStatusResult{TotalEvents: len(snap.Events)}

	cur := snap.currentEvent()
	if cur != nil {
		out.CurrentGW = cur.ID
		out.CurrentFinished = cur.Finished
	}
	var hasNext bool
	for _, e := range snap.Events {
		if e.IsNext {
			out.NextGW = e.ID
			out.NextDeadline = e.DeadlineTime
			hasNext = true
			break
		}
	}

	switch {
	case cur == nil && !hasNext:
		out.Phase = "off-season"
	case cur == nil:
		out.Phase = "pre-season"
	case !hasNext:
		out.Phase = "final-gameweek"
	default:
		out.Phase = "in-season"
	}
	return out, nil
}

func gameStatusHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, GameStatusArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args GameStatusArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildGameStatus(cfg)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
