package engine

import (
	"math"
	"testing"

	"hooprank-api/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func realRow(id int, name string, vals models.CategoryValues) TeamRow {
	return TeamRow{TeamID: id, TeamName: name, Values: vals}
}

func TestWeekZScoresEmptyWeek(t *testing.T) {
	if got := WeekZScores(nil); got != nil {
		t.Fatalf("expected nil for empty week, got %d rows", len(got))
	}
	if got := WeekZScores([]TeamRow{}); got != nil {
		t.Fatalf("expected nil for empty week, got %d rows", len(got))
	}
}

func TestWeekZScoresAppendsLeagueAverage(t *testing.T) {
	rows := []TeamRow{
		realRow(1, "Alpha", models.CategoryValues{models.CatPoints: 100}),
		realRow(2, "Beta", models.CategoryValues{models.CatPoints: 120}),
	}

	got := WeekZScores(rows)
	if len(got) != 3 {
		t.Fatalf("expected 2 teams + average row, got %d", len(got))
	}

	avg := got[2]
	if !avg.LeagueAverage || avg.TeamID != LeagueAverageTeamID {
		t.Fatalf("last row should be the league average, got %+v", avg.TeamRow)
	}
	if v := avg.Values[models.CatPoints]; !almostEqual(v, 110) {
		t.Errorf("league average PTS = %v, want 110", v)
	}
}

func TestWeekZScoresThreeTeamPoints(t *testing.T) {
	// PTS 100/110/120. With the league-average row (110) in the basis the
	// population std dev over {100,110,120,110} is sqrt(50).
	rows := []TeamRow{
		realRow(1, "Alpha", models.CategoryValues{models.CatPoints: 100}),
		realRow(2, "Beta", models.CategoryValues{models.CatPoints: 110}),
		realRow(3, "Gamma", models.CategoryValues{models.CatPoints: 120}),
	}

	got := WeekZScores(rows)
	if len(got) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(got))
	}

	wantSigma := math.Sqrt(50)
	wantZ := []float64{-10 / wantSigma, 0, 10 / wantSigma, 0}
	for i, w := range wantZ {
		if z := got[i].Z[models.CatPoints]; !almostEqual(z, w) {
			t.Errorf("row %d PTS z = %v, want %v", i, z, w)
		}
	}
}

func TestWeekZScoresMeanCentering(t *testing.T) {
	rows := []TeamRow{
		realRow(1, "Alpha", models.CategoryValues{models.CatRebounds: 180, models.CatAssists: 90}),
		realRow(2, "Beta", models.CategoryValues{models.CatRebounds: 200, models.CatAssists: 120}),
		realRow(3, "Gamma", models.CategoryValues{models.CatRebounds: 165, models.CatAssists: 101}),
		realRow(4, "Delta", models.CategoryValues{models.CatRebounds: 210, models.CatAssists: 84}),
	}

	avg := LeagueAverageRow(rows)
	for _, cat := range []models.Category{models.CatRebounds, models.CatAssists} {
		mean := avg.Values[cat]
		sum := 0.0
		for _, r := range rows {
			sum += r.Values[cat] - mean
		}
		if !almostEqual(sum, 0) {
			t.Errorf("sum of deviations for %s = %v, want 0", cat, sum)
		}
	}
}

func TestWeekZScoresIdenticalValues(t *testing.T) {
	vals := models.CategoryValues{}
	for _, c := range models.Categories {
		vals[c] = 42
	}
	rows := []TeamRow{
		realRow(1, "Alpha", vals),
		realRow(2, "Beta", vals),
		realRow(3, "Gamma", vals),
	}

	for _, r := range WeekZScores(rows) {
		for cat, z := range r.Z {
			if z != 0 {
				t.Errorf("team %d %s z = %v, want 0 with no variance", r.TeamID, cat, z)
			}
		}
		if r.TotalZ != 0 {
			t.Errorf("team %d totalZ = %v, want 0", r.TeamID, r.TotalZ)
		}
	}
}

func TestWeekZScoresAbsentCategoryOmitted(t *testing.T) {
	// Nobody reported FG% (no attempts): the category must be absent from
	// every Z map rather than defaulted to zero entries.
	rows := []TeamRow{
		realRow(1, "Alpha", models.CategoryValues{models.CatPoints: 90}),
		realRow(2, "Beta", models.CategoryValues{models.CatPoints: 110}),
	}

	for _, r := range WeekZScores(rows) {
		if _, ok := r.Z[models.CatFGPct]; ok {
			t.Errorf("team %d has FG%% z-score despite no reported values", r.TeamID)
		}
	}
}

func TestWeekZScoresPartialCategory(t *testing.T) {
	// Only two of three teams reported FT%: the basis excludes the third
	// team, which also gets no FT% z entry, but TotalZ still sums what is
	// present.
	rows := []TeamRow{
		realRow(1, "Alpha", models.CategoryValues{models.CatFTPct: 0.8, models.CatPoints: 100}),
		realRow(2, "Beta", models.CategoryValues{models.CatFTPct: 0.6, models.CatPoints: 100}),
		realRow(3, "Gamma", models.CategoryValues{models.CatPoints: 100}),
	}

	got := WeekZScores(rows)
	if _, ok := got[2].Z[models.CatFTPct]; ok {
		t.Errorf("non-reporting team received an FT%% z-score")
	}
	if _, ok := got[0].Z[models.CatFTPct]; !ok {
		t.Errorf("reporting team missing its FT%% z-score")
	}
	// All PTS identical, so Gamma's totalZ is exactly its (absent) FT%
	// contribution: zero.
	if !almostEqual(got[2].TotalZ, 0) {
		t.Errorf("totalZ = %v, want 0", got[2].TotalZ)
	}
}

func TestWeekZScoresFiniteOutput(t *testing.T) {
	rows := []TeamRow{
		realRow(1, "Alpha", models.CategoryValues{models.CatPoints: math.Inf(1)}),
		realRow(2, "Beta", models.CategoryValues{models.CatPoints: 50}),
	}

	for _, r := range WeekZScores(rows) {
		for cat, z := range r.Z {
			if math.IsNaN(z) || math.IsInf(z, 0) {
				t.Errorf("team %d %s z is non-finite: %v", r.TeamID, cat, z)
			}
		}
		if math.IsNaN(r.TotalZ) || math.IsInf(r.TotalZ, 0) {
			t.Errorf("team %d totalZ is non-finite: %v", r.TeamID, r.TotalZ)
		}
	}
}

func TestWeekZScoresDeterministic(t *testing.T) {
	rows := []TeamRow{
		realRow(1, "Alpha", models.CategoryValues{models.CatPoints: 91, models.CatRebounds: 170}),
		realRow(2, "Beta", models.CategoryValues{models.CatPoints: 104, models.CatRebounds: 188}),
		realRow(3, "Gamma", models.CategoryValues{models.CatPoints: 99, models.CatRebounds: 201}),
	}

	first := WeekZScores(rows)
	second := WeekZScores(rows)
	for i := range first {
		if first[i].TotalZ != second[i].TotalZ {
			t.Fatalf("recompute diverged at row %d: %v vs %v", i, first[i].TotalZ, second[i].TotalZ)
		}
		for cat, z := range first[i].Z {
			if second[i].Z[cat] != z {
				t.Fatalf("recompute diverged at row %d %s", i, cat)
			}
		}
	}
}
