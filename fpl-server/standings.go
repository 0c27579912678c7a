package main

import (
	"context"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LeagueStandingsArgs is the input schema for the league_standings tool.
type LeagueStandingsArgs struct{}

// LeagueStandingsResult is the output of the league_standings tool.
type LeagueStandingsResult struct {
	AsOfGW    int                   `json:"as_of_gw"`
	Standings []engine.StandingsRow `json:"standings"`
}

// buildLeagueStandings derives the current league table from every
// finished result in the snapshot.
func buildLeagueStandings(cfg ServerConfig) (*LeagueStandingsResult, error) {
	snap, err := loadSnapshot(cfg)
	if err != nil {
		return nil, err
	}

	rows, err := engine.BuildStandings(snap.Teams, snap.Fixtures)
	if err != nil {
		return nil, err
	}

	asOf := 0
	if cur := snap.currentEvent(); cur != nil {
		asOf = cur.ID
	}
	return &LeagueStandingsResult{AsOfGW: asOf, Standings: rows}, nil
}

func leagueStandingsHandler(cfg ServerConfig) func(context.Context, *mcp.CallToolRequest, LeagueStandingsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueStandingsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLeagueStandings(cfg)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
