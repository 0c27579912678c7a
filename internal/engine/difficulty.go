package engine

import "github.com/aatrey56/FPL-Transfer-Agent/internal/model"

// Difficulty model constants. The thresholds are calibrated against
// the 0–10 average-form scale and must keep their relative order;
// they are tunable, not structural.
const (
	// DefaultTablePosition is assumed for a team missing from the
	// position map: mid-table, so unranked teams are not biased
	// toward either extreme.
	DefaultTablePosition = 10

	tableAdjustmentWeight = 0.15

	// Asymmetric venue adjustment: an opponent playing away is
	// penalized more than an opponent at home is boosted.
	awayOpponentAdjustment = 0.15
	homeOpponentAdjustment = -0.10

	veryHardAbove = 4.2
	hardAbove     = 3.7
	moderateAbove = 3.2
	goodAbove     = 2.7
)

// DifficultyResult is the full rating of one opponent from one side's
// perspective. Every intermediate term is exported: downstream
// classification and ranking recompute against this breakdown, and
// the UI surfaces it in tooltips.
type DifficultyResult struct {
	Score              int     `json:"score"`
	Label              string  `json:"label"`
	OpponentFormAvg    float64 `json:"opponent_form_avg"`
	PlayersUsed        int     `json:"players_used"`
	LeaguePosition     int     `json:"league_position"`
	TableAdjustment    float64 `json:"table_adjustment"`
	HomeAwayAdjustment float64 `json:"home_away_adjustment"`
	FinalScore         float64 `json:"final_score"`
}

// RateDifficulty scores how hard the given opponent is to face, from
// the perspective of a team whose fixture against it is home or away
// (isAway refers to the perspective team). It blends the opponent's
// top-squad form with its league position and the venue, then maps
// the continuous result onto the 1–5 FDR scale. Deterministic and
// side-effect free.
func RateDifficulty(opponentID int, players []model.Player, positions map[int]int, isAway bool) DifficultyResult {
	strength := TeamFormStrength(opponentID, players, TopFormPlayers)

	position, ok := positions[opponentID]
	if !ok {
		position = DefaultTablePosition
	}

	// Rank 1 maps to +1.5, rank 20 to -1.35. Weight 0.15 keeps the
	// table a secondary signal relative to form.
	tableAdjustment := float64((20-position)+1-10) * tableAdjustmentWeight

	haAdjustment := homeOpponentAdjustment
	if isAway {
		haAdjustment = awayOpponentAdjustment
	}

	final := strength.Avg + tableAdjustment + haAdjustment
	score, label := difficultyBand(final)

	return DifficultyResult{
		Score:              score,
		Label:              label,
		OpponentFormAvg:    strength.Avg,
		PlayersUsed:        strength.Count,
		LeaguePosition:     position,
		TableAdjustment:    tableAdjustment,
		HomeAwayAdjustment: haAdjustment,
		FinalScore:         final,
	}
}

func difficultyBand(final float64) (int, string) {
	switch {
	case final > veryHardAbove:
		return 5, "Very Hard"
	case final > hardAbove:
		return 4, "Hard"
	case final > moderateAbove:
		return 3, "Moderate"
	case final > goodAbove:
		return 2, "Good"
	default:
		return 1, "Easy"
	}
}
