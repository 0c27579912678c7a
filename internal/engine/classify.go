package engine

// Result labels for finished fixtures relative to the derived FDR.
const (
	ResultExpected = "Expected"
	ResultUpset    = "Upset"
	ResultNeutral  = "Neutral"
)

const (
	favoriteGap     = 1.0
	drawUpsetGap    = 1.5
	weakWinnerScore = 2
)

// Classification labels one finished fixture against the pre-match
// strength gap implied by the two sides' difficulty ratings.
type Classification struct {
	Label          string  `json:"label"`
	IsFavoriteHome bool    `json:"is_favorite_home"`
	IsFavoriteAway bool    `json:"is_favorite_away"`
	Gap            float64 `json:"gap"`
}

// ClassifyResult labels a result Expected, Upset, or Neutral. The
// homeDiff argument is the rating computed with the away side as the
// opponent (and vice versa), so each side's strength is read from the
// other side's rating. Returns nil when either score is absent: an
// unplayed fixture is not classifiable, which is not an error.
//
// Only clear mismatches earn a confident label. A gap inside ±1
// produces Neutral unless the winner was itself rated easy to beat,
// in which case the win is unsurprising.
func ClassifyResult(homeScore, awayScore *int, homeDiff, awayDiff DifficultyResult) *Classification {
	if homeScore == nil || awayScore == nil {
		return nil
	}
	hs, as := *homeScore, *awayScore

	homeStrength := float64(awayDiff.Score)
	awayStrength := float64(homeDiff.Score)
	gap := homeStrength - awayStrength

	out := &Classification{Gap: gap}

	switch {
	case gap >= favoriteGap:
		out.IsFavoriteHome = true
		if hs > as {
			out.Label = ResultExpected
			return out
		}
		if as > hs {
			out.Label = ResultUpset
			return out
		}
		// A big favorite failing to win counts as an upset.
		if gap >= drawUpsetGap {
			out.Label = ResultUpset
			return out
		}
	case gap <= -favoriteGap:
		out.IsFavoriteAway = true
		if as > hs {
			out.Label = ResultExpected
			return out
		}
		if hs > as {
			out.Label = ResultUpset
			return out
		}
		if -gap >= drawUpsetGap {
			out.Label = ResultUpset
			return out
		}
	}

	if hs == as {
		out.Label = ResultNeutral
		return out
	}

	// No clear favorite: a win by the side already rated easy to
	// beat is unsurprising, anything else stays Neutral.
	winnerStrength := homeStrength
	if as > hs {
		winnerStrength = awayStrength
	}
	if winnerStrength <= weakWinnerScore {
		out.Label = ResultExpected
	} else {
		out.Label = ResultNeutral
	}
	return out
}
