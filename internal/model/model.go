package model

import (
	"strconv"
	"strings"
)

// Team is bootstrap team metadata, immutable for a season.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// Fixture is one scheduled or finished match. Score pointers are nil
// until the match kicks off; a finished fixture always carries both.
type Fixture struct {
	ID          int    `json:"id"`
	Event       int    `json:"event"`
	TeamH       int    `json:"team_h"`
	TeamA       int    `json:"team_a"`
	TeamHScore  *int   `json:"team_h_score"`
	TeamAScore  *int   `json:"team_a_score"`
	Finished    bool   `json:"finished"`
	KickoffTime string `json:"kickoff_time"`
}

// Player is the subset of a bootstrap element the engine consumes.
// Form and SelectedByPercent arrive as decimal text from the API and
// are parsed on demand via ParseDecimal.
type Player struct {
	ID                       int    `json:"id"`
	WebName                  string `json:"web_name"`
	Team                     int    `json:"team"`
	ElementType              int    `json:"element_type"`
	Form                     string `json:"form"`
	TotalPoints              int    `json:"total_points"`
	Minutes                  int    `json:"minutes"`
	SelectedByPercent        string `json:"selected_by_percent"`
	ChanceOfPlayingNextRound *int   `json:"chance_of_playing_next_round"`
	Status                   string `json:"status"`
}

// Event is one gameweek. Exactly one event is current and at most one
// is next; both absent means pre-season or end-of-season.
type Event struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DeadlineTime string `json:"deadline_time"`
	IsCurrent    bool   `json:"is_current"`
	IsNext       bool   `json:"is_next"`
	Finished     bool   `json:"finished"`
}

// Bootstrap mirrors the /bootstrap-static/ payload fields we keep.
type Bootstrap struct {
	Events   []Event  `json:"events"`
	Teams    []Team   `json:"teams"`
	Elements []Player `json:"elements"`
}

// ParseDecimal parses a decimal-text field like form ("4.5") or
// ownership ("12.3"). The second return is false for empty or
// non-numeric input so callers can distinguish "missing" from zero.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormValue is the lenient read of a player's form: unparseable
// text counts as 0, matching how composite scores treat it.
func FormValue(p Player) float64 {
	v, _ := ParseDecimal(p.Form)
	return v
}

// Availability returns chance_of_playing_next_round clamped to
// [0, 100], with absence meaning fully available.
func Availability(p Player) int {
	if p.ChanceOfPlayingNextRound == nil {
		return 100
	}
	c := *p.ChanceOfPlayingNextRound
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
