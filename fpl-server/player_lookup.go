package main

import (
	"context"
	"fmt"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PlayerLookupArgs is the input schema for the player_lookup tool.
type PlayerLookupArgs struct {
	ElementID int `json:"element_id" jsonschema:"Player element id (required)"`
}

// PlayerLookupResult is the output of the player_lookup tool.
type PlayerLookupResult struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	TeamID       int     `json:"team_id"`
	TeamShort    string  `json:"team_short"`
	PositionType int     `json:"position_type"`
	Position     string  `json:"position"`
	Form         float64 `json:"form"`
	TotalPoints  int     `json:"total_points"`
	Minutes      int     `json:"minutes"`
	Availability int     `json:"availability_pct"`
	Status       string  `json:"status"`
}

func lookupPlayer(cfg ServerConfig, elementID int) (*PlayerLookupResult, error) {
	if elementID == 0 {
		return nil, fmt.Errorf("element_id is required")
	}
	snap, err := loadSnapshot(cfg)
	if err != nil {
		return nil, err
	}
	short := snap.teamShort()

	for _, p := range snap.Players {
		if p.ID != elementID {
			continue
		}
		return &PlayerLookupResult{
			ID:           p.ID,
			Name:         p.WebName,
			TeamID:       p.Team,
			TeamShort:    short[p.Team],
			PositionType: p.ElementType,
			Position:     positionLabel(p.ElementType),
			Form:         model.FormValue(p),
			TotalPoints:  p.TotalPoints,
			Minutes:      p.Minutes,
			Availability: model.Availability(p),
			Status:       p.Status,
		}, nil
	}
	return nil, fmt.Errorf("player not found: %d", elementID)
}

func playerLookupHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, PlayerLookupArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PlayerLookupArgs) (*mcp.CallToolResult, any, error) {
		out, err := lookupPlayer(cfg, args.ElementID)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
