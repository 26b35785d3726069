package engine

import (
	"sort"

	"hooprank-api/models"
)

// SeasonSummary is one team's aggregate over a set of weeks (one season or a
// multi-year range).
type SeasonSummary struct {
	TeamID   int
	TeamName string

	Weeks     int
	SumTotalZ float64
	AvgTotalZ float64

	ActualWins   float64
	ExpectedWins float64
	Luck         float64
	AvgLuck      float64
	FraudScore   float64

	CatAvgZ map[models.Category]float64
	CatRank map[models.Category]int

	Rank int
}

// SeasonSummaries aggregates weekly power entries into per-team summaries
// with tie-aware ranks. weeks holds one slice per matchup week; league
// average rows are skipped. The result is ordered best-to-worst by average
// total z, with team id as the deterministic tiebreak for ordering (tied
// averages still share a rank).
func SeasonSummaries(weeks [][]TeamPower) []SeasonSummary {
	type acc struct {
		summary SeasonSummary
		catSum  map[models.Category]float64
		luckSum float64
	}

	byTeam := map[int]*acc{}
	var order []int

	for _, week := range weeks {
		for _, tp := range week {
			if tp.LeagueAverage {
				continue
			}
			a, ok := byTeam[tp.TeamID]
			if !ok {
				a = &acc{
					summary: SeasonSummary{
						TeamID:  tp.TeamID,
						CatAvgZ: make(map[models.Category]float64, len(models.Categories)),
						CatRank: make(map[models.Category]int, len(models.Categories)),
					},
					catSum: make(map[models.Category]float64, len(models.Categories)),
				}
				byTeam[tp.TeamID] = a
				order = append(order, tp.TeamID)
			}

			a.summary.TeamName = tp.TeamName
			a.summary.Weeks++
			a.summary.SumTotalZ += tp.TotalZ
			a.summary.ActualWins += tp.ActualScore
			a.summary.ExpectedWins += tp.AllPlay.WinPct
			a.luckSum += tp.LuckIndex
			for cat, z := range tp.Z {
				a.catSum[cat] += z
			}
		}
	}

	if len(byTeam) == 0 {
		return nil
	}

	out := make([]SeasonSummary, 0, len(byTeam))
	for _, id := range order {
		a := byTeam[id]
		s := a.summary
		if s.Weeks > 0 {
			s.AvgTotalZ = Finite(s.SumTotalZ / float64(s.Weeks))
			s.AvgLuck = Finite(a.luckSum / float64(s.Weeks))
		}
		s.Luck = Finite(s.ActualWins - s.ExpectedWins)
		if s.Weeks > 0 {
			s.FraudScore = Finite(s.Luck / float64(s.Weeks))
		}
		for _, cat := range models.Categories {
			if s.Weeks > 0 {
				s.CatAvgZ[cat] = Finite(a.catSum[cat] / float64(s.Weeks))
			} else {
				s.CatAvgZ[cat] = 0
			}
		}
		out = append(out, s)
	}

	// Per-category season ranks over mean z.
	for _, cat := range models.Categories {
		vals := make([]float64, len(out))
		for i := range out {
			vals[i] = out[i].CatAvgZ[cat]
		}
		for i, r := range MinRankDesc(vals) {
			out[i].CatRank[cat] = r
		}
	}

	// Overall rank by average total z.
	avgs := make([]float64, len(out))
	for i := range out {
		avgs[i] = out[i].AvgTotalZ
	}
	for i, r := range MinRankDesc(avgs) {
		out[i].Rank = r
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AvgTotalZ != out[j].AvgTotalZ {
			return out[i].AvgTotalZ > out[j].AvgTotalZ
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out
}
