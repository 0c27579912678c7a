package engine

import (
	"fmt"
	"sort"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/model"
)

// StandingsRow is one team's line in the derived league table.
type StandingsRow struct {
	Pos    int    `json:"pos"`
	TeamID int    `json:"team_id"`
	Team   string `json:"team"`
	Short  string `json:"short"`
	Played int    `json:"played"`
	Won    int    `json:"won"`
	Drawn  int    `json:"drawn"`
	Lost   int    `json:"lost"`
	GF     int    `json:"gf"`
	GA     int    `json:"ga"`
	GD     int    `json:"gd"`
	Points int    `json:"points"`
}

// teamTally accumulates W/D/L/GF/GA for a single team while folding
// finished fixtures into the table.
type teamTally struct {
	TeamID int
	Won    int
	Drawn  int
	Lost   int
	GF     int
	GA     int
}

func (t *teamTally) points() int { return t.Won*3 + t.Drawn }
func (t *teamTally) gd() int     { return t.GF - t.GA }
func (t *teamTally) played() int { return t.Won + t.Drawn + t.Lost }

// foldResults accumulates every finished fixture with both scores
// present into per-team tallies. A fixture that references a team id
// not in the team list is a data-integrity failure, not something to
// skip: a silently dropped result would corrupt the table.
func foldResults(teams []model.Team, fixtures []model.Fixture) (map[int]*teamTally, error) {
	tallies := make(map[int]*teamTally, len(teams))
	for _, t := range teams {
		tallies[t.ID] = &teamTally{TeamID: t.ID}
	}

	for _, f := range fixtures {
		if !f.Finished || f.TeamHScore == nil || f.TeamAScore == nil {
			continue
		}
		home, ok := tallies[f.TeamH]
		if !ok {
			return nil, fmt.Errorf("fixture %d references unknown home team %d", f.ID, f.TeamH)
		}
		away, ok := tallies[f.TeamA]
		if !ok {
			return nil, fmt.Errorf("fixture %d references unknown away team %d", f.ID, f.TeamA)
		}
		hs, as := *f.TeamHScore, *f.TeamAScore

		home.GF += hs
		home.GA += as
		away.GF += as
		away.GA += hs

		switch {
		case hs > as:
			home.Won++
			away.Lost++
		case hs < as:
			away.Won++
			home.Lost++
		default:
			home.Drawn++
			away.Drawn++
		}
	}
	return tallies, nil
}

// sortTallies orders teams Points DESC → GD DESC → GF DESC → team id
// ASC. The id tie-break makes the order strict even when every
// footballing metric is level, so ranks are always unique.
func sortTallies(tallies map[int]*teamTally) []*teamTally {
	out := make([]*teamTally, 0, len(tallies))
	for _, t := range tallies {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].points() != out[j].points() {
			return out[i].points() > out[j].points()
		}
		if out[i].gd() != out[j].gd() {
			return out[i].gd() > out[j].gd()
		}
		if out[i].GF != out[j].GF {
			return out[i].GF > out[j].GF
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}

// ComputePositions derives the current league position (1..N) of
// every team from finished results. Every input team appears exactly
// once in the output; teams with no finished fixtures rank last by
// the tie-break. Pure function of its inputs.
func ComputePositions(teams []model.Team, fixtures []model.Fixture) (map[int]int, error) {
	tallies, err := foldResults(teams, fixtures)
	if err != nil {
		return nil, err
	}
	ordered := sortTallies(tallies)
	positions := make(map[int]int, len(ordered))
	for i, t := range ordered {
		positions[t.TeamID] = i + 1
	}
	return positions, nil
}

// BuildStandings returns the full league table in position order,
// using the same fold and ordering as ComputePositions.
func BuildStandings(teams []model.Team, fixtures []model.Fixture) ([]StandingsRow, error) {
	tallies, err := foldResults(teams, fixtures)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]model.Team, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
	}

	ordered := sortTallies(tallies)
	rows := make([]StandingsRow, 0, len(ordered))
	for i, a := range ordered {
		t := byID[a.TeamID]
		rows = append(rows, StandingsRow{
			Pos:    i + 1,
			TeamID: a.TeamID,
			Team:   t.Name,
			Short:  t.ShortName,
			Played: a.played(),
			Won:    a.Won,
			Drawn:  a.Drawn,
			Lost:   a.Lost,
			GF:     a.GF,
			GA:     a.GA,
			GD:     a.gd(),
			Points: a.points(),
		})
	}
	return rows, nil
}
