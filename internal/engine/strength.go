package engine

import (
	"sort"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/model"
)

// TopFormPlayers is the default squad slice size for the opponent
// strength signal: a team's threat comes from its in-form regulars,
// not the full squad.
const TopFormPlayers = 12

// FormStrength is the aggregated recent-form signal of one team.
// Count reports how many players actually fed the average; callers
// must treat Count == 0 as insufficient data, not as a weak team.
type FormStrength struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// TeamFormStrength averages the top topN form values across a team's
// squad. Unparseable form fields are excluded rather than zeroed so a
// bad record cannot drag the average down. The mean keeps the scale
// stable across squads of different sizes.
func TeamFormStrength(teamID int, players []model.Player, topN int) FormStrength {
	forms := make([]float64, 0, topN)
	for _, p := range players {
		if p.Team != teamID {
			continue
		}
		v, ok := model.ParseDecimal(p.Form)
		if !ok {
			continue
		}
		forms = append(forms, v)
	}
	if len(forms) == 0 {
		return FormStrength{}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(forms)))
	if topN > 0 && len(forms) > topN {
		forms = forms[:topN]
	}

	sum := 0.0
	for _, v := range forms {
		sum += v
	}
	return FormStrength{
		Avg:   sum / float64(len(forms)),
		Count: len(forms),
	}
}
