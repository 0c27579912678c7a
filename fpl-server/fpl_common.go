package main

import (
	"fmt"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/model"
	"github.com/aatrey56/FPL-Transfer-Agent/internal/store"
)

// snapshot is one loaded view of the raw league data: teams, players,
// events from bootstrap-static plus the full fixture list. Every tool
// call reloads it so a data refresh is picked up without a restart.
type snapshot struct {
	Teams    []model.Team
	Players  []model.Player
	Events   []model.Event
	Fixtures []model.Fixture
}

func loadSnapshot(cfg ServerConfig) (*snapshot, error) {
	st := store.NewJSONStore(cfg.RawRoot)

	var boot model.Bootstrap
	if err := st.ReadJSON(store.BootstrapPath, &boot); err != nil {
		return nil, fmt.Errorf("bootstrap snapshot: %w", err)
	}
	var fixtures []model.Fixture
	if err := st.ReadJSON(store.FixturesPath, &fixtures); err != nil {
		return nil, fmt.Errorf("fixtures snapshot: %w", err)
	}

	return &snapshot{
		Teams:    boot.Teams,
		Players:  boot.Elements,
		Events:   boot.Events,
		Fixtures: fixtures,
	}, nil
}

func (s *snapshot) teamShort() map[int]string {
	out := make(map[int]string, len(s.Teams))
	for _, t := range s.Teams {
		out[t.ID] = t.ShortName
	}
	return out
}

// currentEvent returns the event flagged is_current, or nil between
// seasons.
func (s *snapshot) currentEvent() *model.Event {
	for i := range s.Events {
		if s.Events[i].IsCurrent {
			return &s.Events[i]
		}
	}
	return nil
}

// nextEvent returns the event flagged is_next, falling back to the
// first event in the list (pre-season and mid-transition states are
// expected, not errors).
func (s *snapshot) nextEvent() *model.Event {
	for i := range s.Events {
		if s.Events[i].IsNext {
			return &s.Events[i]
		}
	}
	if len(s.Events) > 0 {
		return &s.Events[0]
	}
	return nil
}

// resolveGW picks the gameweek a tool should operate on: an explicit
// positive argument wins, otherwise the fallback event.
func resolveGW(gw int, fallback *model.Event) (int, error) {
	if gw > 0 {
		return gw, nil
	}
	if fallback == nil {
		return 0, fmt.Errorf("no events in snapshot; pass an explicit gw")
	}
	return fallback.ID, nil
}

func positionLabel(pos int) string {
	switch pos {
	case 1:
		return "GK"
	case 2:
		return "DEF"
	case 3:
		return "MID"
	case 4:
		return "FWD"
	default:
		return "UNK"
	}
}
