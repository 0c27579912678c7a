package engine

import (
	"math"
	"testing"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/model"
)

func transferTeams() []model.Team {
	return []model.Team{
		{ID: 1, Name: "Arsenal", ShortName: "ARS"},
		{ID: 2, Name: "Chelsea", ShortName: "CHE"},
	}
}

func transferEvents(next int) []model.Event {
	events := make([]model.Event, 0, 38)
	for id := 1; id <= 38; id++ {
		events = append(events, model.Event{ID: id, IsNext: id == next})
	}
	return events
}

func rankedPlayer(id, team int, form string, points int) model.Player {
	return model.Player{
		ID: id, WebName: "P", Team: team, ElementType: 3,
		Form: form, TotalPoints: points, SelectedByPercent: "10.0",
	}
}

func TestComputeTransferIndex_ArgumentValidation(t *testing.T) {
	teams := transferTeams()
	events := transferEvents(10)

	if _, err := ComputeTransferIndex(nil, nil, teams, events, 0, HorizonNext5); err == nil {
		t.Error("lookahead 0: expected error, got nil")
	}
	if _, err := ComputeTransferIndex(nil, nil, teams, events, 5, Horizon("soon")); err == nil {
		t.Error("unknown horizon: expected error, got nil")
	}
	if _, err := ComputeTransferIndex(nil, nil, teams, nil, 5, HorizonNext5); err == nil {
		t.Error("empty events: expected error, got nil")
	}
}

func TestComputeTransferIndex_AllBlankWindow(t *testing.T) {
	players := []model.Player{rankedPlayer(1, 1, "0", 50)}

	results, err := ComputeTransferIndex(players, nil, transferTeams(), transferEvents(10), 5, HorizonNext5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.DifficultySum != 30 {
		t.Errorf("difficulty sum = %v; want 30 (5 blanks x penalty 6)", r.DifficultySum)
	}
	if r.TransferIndex != 0 {
		t.Errorf("transfer index = %v; want 0 (zero form, all-blank run)", r.TransferIndex)
	}
	if len(r.Upcoming) != 5 {
		t.Fatalf("expected 5 upcoming entries, got %d", len(r.Upcoming))
	}
	for _, u := range r.Upcoming {
		if u.OpponentID != BlankOpponentID {
			t.Errorf("gw %d: opponent = %d; want blank sentinel %d", u.Event, u.OpponentID, BlankOpponentID)
		}
		if u.Difficulty != BlankGameweekPenalty {
			t.Errorf("gw %d: difficulty = %v; want %v", u.Event, u.Difficulty, BlankGameweekPenalty)
		}
	}
}

func TestComputeTransferIndex_FiltersInactivePlayers(t *testing.T) {
	players := []model.Player{
		rankedPlayer(1, 1, "5.0", 10), // at the threshold: excluded
		rankedPlayer(2, 1, "5.0", 11),
	}

	results, err := ComputeTransferIndex(players, nil, transferTeams(), transferEvents(10), 5, HorizonNext5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Element != 2 {
		t.Fatalf("expected only element 2 ranked, got %+v", results)
	}
}

func TestComputeTransferIndex_NextHorizonHomeFixture(t *testing.T) {
	players := []model.Player{
		rankedPlayer(1, 1, "4.0", 50),
		// Opponent squad has no parseable form, so its rating
		// degrades to Easy.
		{ID: 2, WebName: "Opp", Team: 2, Form: "", TotalPoints: 0},
	}
	fixtures := []model.Fixture{
		{ID: 1, Event: 10, TeamH: 1, TeamA: 2},
	}

	results, err := ComputeTransferIndex(players, fixtures, transferTeams(), transferEvents(10), 1, HorizonNext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if len(r.Upcoming) != 1 || !r.Upcoming[0].IsHome || r.Upcoming[0].OpponentShort != "CHE" {
		t.Fatalf("upcoming = %+v; want single home fixture vs CHE", r.Upcoming)
	}
	// quality 0.85 (Easy) + 0.05 home bonus, availability 1.0,
	// form 4.0/8 = 0.5:
	// 0.50*0.90 + 0.30*1.0 + 0.20*0.5 = 0.85
	if math.Abs(r.TransferIndex-0.85) > 1e-9 {
		t.Errorf("transfer index = %v; want 0.85", r.TransferIndex)
	}
}

func TestComputeTransferIndex_NextHorizonAvailability(t *testing.T) {
	chance := 50
	p := rankedPlayer(1, 1, "4.0", 50)
	p.ChanceOfPlayingNextRound = &chance
	players := []model.Player{p, {ID: 2, Team: 2, Form: "", TotalPoints: 0}}
	fixtures := []model.Fixture{{ID: 1, Event: 10, TeamH: 2, TeamA: 1}}

	results, err := ComputeTransferIndex(players, fixtures, transferTeams(), transferEvents(10), 1, HorizonNext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := results[0]
	// away fixture: quality 0.85, no home bonus; availability 0.5
	// 0.50*0.85 + 0.30*0.5 + 0.20*0.5 = 0.675
	if math.Abs(r.TransferIndex-0.675) > 1e-9 {
		t.Errorf("transfer index = %v; want 0.675", r.TransferIndex)
	}
}

func TestComputeTransferIndex_Next5FixtureNorm(t *testing.T) {
	// Strong opponent squads make every fixture Very Hard; the run
	// norm collapses toward zero while form holds its half.
	players := []model.Player{
		rankedPlayer(1, 1, "10.0", 50),
		{ID: 2, Team: 2, Form: "9.0", TotalPoints: 0},
		{ID: 3, Team: 2, Form: "9.0", TotalPoints: 0},
	}
	fixtures := []model.Fixture{
		{ID: 1, Event: 10, TeamH: 1, TeamA: 2},
		{ID: 2, Event: 11, TeamH: 2, TeamA: 1},
	}

	results, err := ComputeTransferIndex(players, fixtures, transferTeams(), transferEvents(10), 2, HorizonNext5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := results[0]
	if r.DifficultySum != 10 {
		t.Errorf("difficulty sum = %v; want 10 (two fixtures rated 5)", r.DifficultySum)
	}
	// form_norm = 1.0, fixture_norm = clamp((10-10)/8) = 0
	if math.Abs(r.TransferIndex-0.5) > 1e-9 {
		t.Errorf("transfer index = %v; want 0.5", r.TransferIndex)
	}
}

func TestComputeTransferIndex_IndexAlwaysInUnitRange(t *testing.T) {
	players := []model.Player{
		rankedPlayer(1, 1, "99.9", 500),
		rankedPlayer(2, 1, "-3.0", 40),
		rankedPlayer(3, 2, "", 40),
		rankedPlayer(4, 2, "junk", 40),
	}
	fixtures := []model.Fixture{
		{ID: 1, Event: 10, TeamH: 1, TeamA: 2},
	}

	for _, horizon := range []Horizon{HorizonNext, HorizonNext5} {
		for _, lookahead := range []int{1, 3, 5, 40} {
			results, err := ComputeTransferIndex(players, fixtures, transferTeams(), transferEvents(10), lookahead, horizon)
			if err != nil {
				t.Fatalf("%s/%d: unexpected error: %v", horizon, lookahead, err)
			}
			for _, r := range results {
				if r.TransferIndex < 0 || r.TransferIndex > 1 {
					t.Errorf("%s/%d: element %d index %v outside [0, 1]", horizon, lookahead, r.Element, r.TransferIndex)
				}
			}
		}
	}
}

func TestComputeTransferIndex_OwnershipRatios(t *testing.T) {
	p := rankedPlayer(1, 1, "5.0", 50)
	p.SelectedByPercent = "25.0"
	zeroForm := rankedPlayer(2, 1, "0", 40)
	zeroForm.SelectedByPercent = "8.0"
	players := []model.Player{p, zeroForm}

	results, err := ComputeTransferIndex(players, nil, transferTeams(), transferEvents(10), 1, HorizonNext5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byElement := make(map[int]TransferIndexResult)
	for _, r := range results {
		byElement[r.Element] = r
	}

	if got := byElement[1].OwnershipPerForm; math.Abs(got-5.0) > 1e-9 {
		t.Errorf("ownership/form = %v; want 5.0", got)
	}
	if got := byElement[1].OwnershipPerPoint; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("ownership/points = %v; want 0.5", got)
	}
	if got := byElement[2].OwnershipPerForm; got != 0 {
		t.Errorf("zero-form ownership/form = %v; want 0", got)
	}
}

func TestComputeTransferIndex_FallsBackToFirstEvent(t *testing.T) {
	// No is_next flag anywhere: the window starts at the first event
	// in the list.
	events := []model.Event{{ID: 7}, {ID: 8}}
	players := []model.Player{rankedPlayer(1, 1, "5.0", 50), {ID: 2, Team: 2, TotalPoints: 0}}
	fixtures := []model.Fixture{{ID: 1, Event: 7, TeamH: 1, TeamA: 2}}

	results, err := ComputeTransferIndex(players, fixtures, transferTeams(), events, 1, HorizonNext)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := results[0]
	if len(r.Upcoming) != 1 || r.Upcoming[0].Event != 7 || r.Upcoming[0].OpponentID != 2 {
		t.Errorf("upcoming = %+v; want the GW7 fixture vs team 2", r.Upcoming)
	}
}

func TestComputeTransferIndex_WindowCappedAtSeasonEnd(t *testing.T) {
	players := []model.Player{rankedPlayer(1, 1, "5.0", 50)}

	results, err := ComputeTransferIndex(players, nil, transferTeams(), transferEvents(37), 5, HorizonNext5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(results[0].Upcoming); got != 2 {
		t.Errorf("window length = %d; want 2 (GW37-38)", got)
	}
}
