package engine

// NeutralResultScore is the actual-result score used when a team's real
// head-to-head outcome for the week is unknown.
const NeutralResultScore = 0.5

// AllPlayRecord is a team's hypothetical record had it faced every other
// real team that week.
type AllPlayRecord struct {
	Wins   int
	Losses int
	Ties   int
	WinPct float64
}

// TeamPower is a team's full weekly power entry: z-scores plus all-play and
// luck. ActualScore is the real category win score in [0,1].
type TeamPower struct {
	TeamZScores
	AllPlay     AllPlayRecord
	ActualScore float64
	LuckIndex   float64
}

// WeekAllPlay derives every team's all-play record and luck index from the
// week's total z-scores. results maps team id to the actual result score;
// missing teams default to neutral. The league-average row is carried through
// zeroed since it never plays. With fewer than two real teams all-play is
// undefined and every record is zero.
func WeekAllPlay(zrows []TeamZScores, results map[int]float64) []TeamPower {
	totals := make([]float64, 0, len(zrows))
	for _, r := range zrows {
		if !r.LeagueAverage {
			totals = append(totals, r.TotalZ)
		}
	}
	n := len(totals)

	out := make([]TeamPower, len(zrows))
	for i, r := range zrows {
		out[i] = TeamPower{TeamZScores: r}

		if r.LeagueAverage || n <= 1 {
			continue
		}

		wins, ties := 0, 0
		for _, other := range totals {
			switch {
			case other < r.TotalZ:
				wins++
			case other == r.TotalZ:
				ties++
			}
		}
		ties-- // the equality scan counts the team itself

		rec := AllPlayRecord{
			Wins:   wins,
			Ties:   ties,
			Losses: (n - 1) - wins - ties,
		}
		rec.WinPct = Finite((float64(rec.Wins) + 0.5*float64(rec.Ties)) / float64(n-1))

		actual, ok := results[r.TeamID]
		if !ok {
			actual = NeutralResultScore
		}

		out[i].AllPlay = rec
		out[i].ActualScore = Finite(actual)
		out[i].LuckIndex = Finite(actual - rec.WinPct)
	}

	return out
}
