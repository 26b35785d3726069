package engine

import (
	"math"

	"hooprank-api/models"
)

// LeagueAverageTeamID is the provider id reserved for the synthetic
// league-average row.
const LeagueAverageTeamID = 0

// LeagueAverageTeamName labels the synthetic league-average row.
const LeagueAverageTeamName = "League Average"

// TeamRow is one team's raw category values for a week. A missing key in
// Values means the team reported nothing for that category.
type TeamRow struct {
	TeamID        int
	TeamName      string
	LeagueAverage bool
	Values        models.CategoryValues
}

// TeamZScores is a TeamRow with per-category z-scores. Categories without a
// value that week are absent from Z and contribute 0 to TotalZ.
type TeamZScores struct {
	TeamRow
	Z      map[models.Category]float64
	TotalZ float64
}

// LeagueAverageRow builds the synthetic mean row over the real teams in rows.
// Only categories with at least one reported value get an entry.
func LeagueAverageRow(rows []TeamRow) TeamRow {
	avg := TeamRow{
		TeamID:        LeagueAverageTeamID,
		TeamName:      LeagueAverageTeamName,
		LeagueAverage: true,
		Values:        models.CategoryValues{},
	}
	for _, cat := range models.Categories {
		sum := 0.0
		n := 0
		for _, r := range rows {
			if r.LeagueAverage {
				continue
			}
			if v, ok := r.Values[cat]; ok {
				sum += v
				n++
			}
		}
		if n > 0 {
			avg.Values[cat] = Finite(sum / float64(n))
		}
	}
	return avg
}

// WeekZScores normalizes one week's raw team values into per-category
// z-scores. The league-average row is appended and participates in its own
// mean/std basis. The standard deviation is the population one (divide by N);
// a zero-variance category yields z = 0 for every row. A week with no teams
// yields nil.
func WeekZScores(rows []TeamRow) []TeamZScores {
	if len(rows) == 0 {
		return nil
	}

	work := make([]TeamRow, 0, len(rows)+1)
	work = append(work, rows...)
	work = append(work, LeagueAverageRow(rows))

	out := make([]TeamZScores, len(work))
	for i, r := range work {
		out[i] = TeamZScores{
			TeamRow: r,
			Z:       make(map[models.Category]float64, len(models.Categories)),
		}
	}

	for _, cat := range models.Categories {
		vals := make([]float64, 0, len(work))
		idx := make([]int, 0, len(work))
		for i, r := range work {
			if v, ok := r.Values[cat]; ok {
				vals = append(vals, v)
				idx = append(idx, i)
			}
		}
		if len(vals) == 0 {
			continue
		}

		mean, std := meanStd(vals)
		for k, i := range idx {
			z := 0.0
			if std != 0 {
				z = (vals[k] - mean) / std
			}
			out[i].Z[cat] = Finite(z)
		}
	}

	for i := range out {
		total := 0.0
		for _, z := range out[i].Z {
			total += z
		}
		out[i].TotalZ = Finite(total)
	}

	return out
}

// meanStd returns the mean and population standard deviation of vals.
func meanStd(vals []float64) (float64, float64) {
	n := len(vals)
	if n == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(n)

	if n == 1 {
		return mean, 0
	}
	variance := 0.0
	for _, v := range vals {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	return mean, math.Sqrt(variance)
}
