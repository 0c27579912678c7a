package engine

import (
	"fmt"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/model"
)

// Horizon selects the weighting scheme for the transfer index.
type Horizon string

const (
	// HorizonNext scores only the immediate fixture, weighting
	// availability heavily.
	HorizonNext Horizon = "next"
	// HorizonNext5 scores the whole lookahead run, splitting weight
	// evenly between form and fixtures.
	HorizonNext5 Horizon = "next5"
)

const (
	// FinalGameweek caps the lookahead window at the end of a
	// standard season.
	FinalGameweek = 38

	// BlankGameweekPenalty is accumulated when a team has no fixture
	// in a gameweek: strictly worse than the hardest real fixture.
	BlankGameweekPenalty = 6

	// BlankOpponentID marks a blank-gameweek entry in the upcoming
	// fixture list.
	BlankOpponentID = 0

	// minRankedTotalPoints filters statistically inactive players
	// out of the ranking pool.
	minRankedTotalPoints = 10

	// moderateFixtureQuality stands in for the next-fixture quality
	// when a player has no upcoming fixture at all.
	moderateFixtureQuality = 0.65

	homeFixtureBonus = 0.05

	nextFixtureWeight      = 0.50
	nextAvailabilityWeight = 0.30
	nextFormWeight         = 0.20
	nextFormScale          = 8

	next5FormWeight    = 0.5
	next5FixtureWeight = 0.5
	next5FormScale     = 10
)

// UpcomingFixture is one entry in a player's lookahead window. A
// blank gameweek is recorded with OpponentID == BlankOpponentID and
// the blank penalty as its difficulty.
type UpcomingFixture struct {
	Event         int     `json:"event"`
	OpponentID    int     `json:"opponent_id"`
	OpponentShort string  `json:"opponent_short,omitempty"`
	IsHome        bool    `json:"is_home"`
	Difficulty    float64 `json:"difficulty"`
	Label         string  `json:"label,omitempty"`
}

// TransferIndexResult projects one ranked player: the composite index
// in [0, 1], the fixture run behind it, and two ownership-versus-
// output ratios for flagging high-ownership low-return picks.
type TransferIndexResult struct {
	Element           int               `json:"element"`
	Name              string            `json:"name"`
	TeamID            int               `json:"team_id"`
	TeamShort         string            `json:"team_short"`
	PositionType      int               `json:"position_type"`
	Form              float64           `json:"form"`
	TotalPoints       int               `json:"total_points"`
	TransferIndex     float64           `json:"transfer_index"`
	DifficultySum     float64           `json:"difficulty_sum"`
	Upcoming          []UpcomingFixture `json:"upcoming"`
	OwnershipPct      float64           `json:"ownership_pct"`
	OwnershipPerForm  float64           `json:"ownership_per_form"`
	OwnershipPerPoint float64           `json:"ownership_per_point"`
}

// fixtureSlot is the opponent-and-venue view of one team's fixture in
// one gameweek.
type fixtureSlot struct {
	OpponentID int
	IsHome     bool
}

// ComputeTransferIndex walks every eligible player's fixture run from
// the next gameweek and blends form, availability, and fixture
// difficulty into a 0.0–1.0 index under the chosen horizon. The
// returned collection is unordered; ranking belongs to the caller.
//
// Double gameweeks are not modeled: a team maps to at most one
// fixture per gameweek, first match found.
func ComputeTransferIndex(players []model.Player, fixtures []model.Fixture, teams []model.Team, events []model.Event, lookahead int, horizon Horizon) ([]TransferIndexResult, error) {
	if lookahead < 1 {
		return nil, fmt.Errorf("lookahead must be >= 1, got %d", lookahead)
	}
	if horizon != HorizonNext && horizon != HorizonNext5 {
		return nil, fmt.Errorf("unknown horizon %q", horizon)
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("no events provided")
	}

	// Positions are computed once and shared across every player in
	// this call so all ratings agree on the table.
	positions, err := ComputePositions(teams, fixtures)
	if err != nil {
		return nil, err
	}

	startGW := events[0].ID
	for _, e := range events {
		if e.IsNext {
			startGW = e.ID
			break
		}
	}
	endGW := startGW + lookahead - 1
	if endGW > FinalGameweek {
		endGW = FinalGameweek
	}

	slots := buildFixtureSlots(fixtures, startGW, endGW)

	teamShort := make(map[int]string, len(teams))
	for _, t := range teams {
		teamShort[t.ID] = t.ShortName
	}

	out := make([]TransferIndexResult, 0, len(players))
	for _, p := range players {
		if p.TotalPoints <= minRankedTotalPoints {
			continue
		}

		upcoming := make([]UpcomingFixture, 0, endGW-startGW+1)
		difficultySum := 0.0
		for gw := startGW; gw <= endGW; gw++ {
			slot, ok := slots[slotKey{p.Team, gw}]
			if !ok {
				difficultySum += BlankGameweekPenalty
				upcoming = append(upcoming, UpcomingFixture{
					Event:      gw,
					OpponentID: BlankOpponentID,
					Difficulty: BlankGameweekPenalty,
					Label:      "Blank",
				})
				continue
			}
			rating := RateDifficulty(slot.OpponentID, players, positions, !slot.IsHome)
			difficultySum += float64(rating.Score)
			upcoming = append(upcoming, UpcomingFixture{
				Event:         gw,
				OpponentID:    slot.OpponentID,
				OpponentShort: teamShort[slot.OpponentID],
				IsHome:        slot.IsHome,
				Difficulty:    float64(rating.Score),
				Label:         rating.Label,
			})
		}

		form := model.FormValue(p)
		index := 0.0
		switch horizon {
		case HorizonNext:
			index = nextIndex(p, form, upcoming)
		case HorizonNext5:
			index = next5Index(form, difficultySum, lookahead)
		}

		ownership, _ := model.ParseDecimal(p.SelectedByPercent)
		perForm := 0.0
		if form != 0 {
			perForm = ownership / form
		}
		perPoint := 0.0
		if p.TotalPoints != 0 {
			perPoint = ownership / float64(p.TotalPoints)
		}

		out = append(out, TransferIndexResult{
			Element:           p.ID,
			Name:              p.WebName,
			TeamID:            p.Team,
			TeamShort:         teamShort[p.Team],
			PositionType:      p.ElementType,
			Form:              form,
			TotalPoints:       p.TotalPoints,
			TransferIndex:     index,
			DifficultySum:     difficultySum,
			Upcoming:          upcoming,
			OwnershipPct:      ownership,
			OwnershipPerForm:  perForm,
			OwnershipPerPoint: perPoint,
		})
	}
	return out, nil
}

type slotKey struct {
	TeamID int
	Event  int
}

// buildFixtureSlots indexes unfinished fixtures in [startGW, endGW]
// by (team, gameweek), keeping the first match found per slot.
func buildFixtureSlots(fixtures []model.Fixture, startGW, endGW int) map[slotKey]fixtureSlot {
	slots := make(map[slotKey]fixtureSlot)
	for _, f := range fixtures {
		if f.Finished || f.Event < startGW || f.Event > endGW {
			continue
		}
		hk := slotKey{f.TeamH, f.Event}
		if _, ok := slots[hk]; !ok {
			slots[hk] = fixtureSlot{OpponentID: f.TeamA, IsHome: true}
		}
		ak := slotKey{f.TeamA, f.Event}
		if _, ok := slots[ak]; !ok {
			slots[ak] = fixtureSlot{OpponentID: f.TeamH, IsHome: false}
		}
	}
	return slots
}

// nextIndex weights the immediate fixture, availability, and form
// (50/30/20) into the single-fixture transfer index.
func nextIndex(p model.Player, form float64, upcoming []UpcomingFixture) float64 {
	quality := moderateFixtureQuality
	if len(upcoming) > 0 {
		first := upcoming[0]
		quality = fixtureQuality(first.Difficulty)
		if first.IsHome {
			quality += homeFixtureBonus
			if quality > 1 {
				quality = 1
			}
		}
	}
	availability := float64(model.Availability(p)) / 100
	formNorm := clamp01(form / nextFormScale)
	return nextFixtureWeight*quality + nextAvailabilityWeight*availability + nextFormWeight*formNorm
}

// fixtureQuality maps an FDR score onto a 0–1 attractiveness scale;
// the blank penalty lands in the hardest band.
func fixtureQuality(difficulty float64) float64 {
	switch {
	case difficulty >= 5:
		return 0.25
	case difficulty >= 4:
		return 0.40
	case difficulty >= 3:
		return 0.65
	default:
		return 0.85
	}
}

// next5Index maps the best possible run (all difficulty 1) to 1.0 and
// the worst real run (all difficulty 5) to 0.0; blank penalties push
// below zero before clamping, so blank-heavy windows score worse than
// any real fixture run.
func next5Index(form float64, difficultySum float64, lookahead int) float64 {
	formNorm := clamp01(form / next5FormScale)
	fixtureNorm := clamp01((float64(5*lookahead) - difficultySum) / float64(4*lookahead))
	return next5FormWeight*formNorm + next5FixtureWeight*fixtureNorm
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
