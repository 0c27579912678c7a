package main

import (
	"context"
	"sort"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FixtureDifficultyArgs is the input schema for the fixture_difficulty tool.
type FixtureDifficultyArgs struct {
	GW int `json:"gw" jsonschema:"Gameweek to rate fixtures for (0 = next)"`
}

// FixtureDifficultyItem is one side's view of one fixture: the rated
// opponent, the venue, and the full rating breakdown.
type FixtureDifficultyItem struct {
	Rank          int                     `json:"rank"`
	FixtureID     int                     `json:"fixture_id"`
	Event         int                     `json:"event"`
	TeamID        int                     `json:"team_id"`
	TeamShort     string                  `json:"team_short"`
	OpponentID    int                     `json:"opponent_id"`
	OpponentShort string                  `json:"opponent_short"`
	Venue         string                  `json:"venue"`
	Rating        engine.DifficultyResult `json:"rating"`
}

// FixtureDifficultyResult is the output of the fixture_difficulty tool.
type FixtureDifficultyResult struct {
	GW       int                     `json:"gw"`
	Fixtures []FixtureDifficultyItem `json:"fixtures"`
}

// buildFixtureDifficulty rates every fixture of one gameweek from
// both perspectives, easiest first.
func buildFixtureDifficulty(cfg ServerConfig, args FixtureDifficultyArgs) (*FixtureDifficultyResult, error) {
	snap, err := loadSnapshot(cfg)
	if err != nil {
		return nil, err
	}
	gw, err := resolveGW(args.GW, snap.nextEvent())
	if err != nil {
		return nil, err
	}

	positions, err := engine.ComputePositions(snap.Teams, snap.Fixtures)
	if err != nil {
		return nil, err
	}
	short := snap.teamShort()

	items := make([]FixtureDifficultyItem, 0)
	for _, f := range snap.Fixtures {
		if f.Event != gw {
			continue
		}
		// Home side faces the away team; isAway describes the
		// perspective team's venue.
		items = append(items, FixtureDifficultyItem{
			FixtureID:     f.ID,
			Event:         f.Event,
			TeamID:        f.TeamH,
			TeamShort:     short[f.TeamH],
			OpponentID:    f.TeamA,
			OpponentShort: short[f.TeamA],
			Venue:         "HOME",
			Rating:        engine.RateDifficulty(f.TeamA, snap.Players, positions, false),
		})
		items = append(items, FixtureDifficultyItem{
			FixtureID:     f.ID,
			Event:         f.Event,
			TeamID:        f.TeamA,
			TeamShort:     short[f.TeamA],
			OpponentID:    f.TeamH,
			OpponentShort: short[f.TeamH],
			Venue:         "AWAY",
			Rating:        engine.RateDifficulty(f.TeamH, snap.Players, positions, true),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Rating.FinalScore != items[j].Rating.FinalScore {
			return items[i].Rating.FinalScore < items[j].Rating.FinalScore
		}
		return items[i].TeamShort < items[j].TeamShort
	})
	for i := range items {
		items[i].Rank = i + 1
	}

	return &FixtureDifficultyResult{GW: gw, Fixtures: items}, nil
}

func fixtureDifficultyHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, FixtureDifficultyArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args FixtureDifficultyArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildFixtureDifficulty(cfg, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
