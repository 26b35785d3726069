package engine

import (
	"testing"

	"hooprank-api/models"
)

func powerEntry(id int, name string, total, actual, winPct float64) TeamPower {
	return TeamPower{
		TeamZScores: TeamZScores{
			TeamRow: TeamRow{TeamID: id, TeamName: name},
			Z:       map[models.Category]float64{models.CatPoints: total},
			TotalZ:  total,
		},
		AllPlay:     AllPlayRecord{WinPct: winPct},
		ActualScore: actual,
		LuckIndex:   actual - winPct,
	}
}

func findSummary(t *testing.T, summaries []SeasonSummary, id int) SeasonSummary {
	t.Helper()
	for _, s := range summaries {
		if s.TeamID == id {
			return s
		}
	}
	t.Fatalf("team %d missing from summaries", id)
	return SeasonSummary{}
}

func TestSeasonSummariesEmpty(t *testing.T) {
	if got := SeasonSummaries(nil); got != nil {
		t.Fatalf("expected nil, got %d summaries", len(got))
	}
}

func TestSeasonSummariesAggregates(t *testing.T) {
	weeks := [][]TeamPower{
		{
			powerEntry(1, "Alpha", 4.0, 1.0, 0.8),
			powerEntry(2, "Beta", -4.0, 0.0, 0.2),
		},
		{
			powerEntry(1, "Alpha", 2.0, 0.5, 0.6),
			powerEntry(2, "Beta", -2.0, 0.5, 0.4),
		},
	}

	got := SeasonSummaries(weeks)
	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}

	alpha := findSummary(t, got, 1)
	if alpha.Weeks != 2 {
		t.Errorf("weeks = %d, want 2", alpha.Weeks)
	}
	if !almostEqual(alpha.SumTotalZ, 6.0) || !almostEqual(alpha.AvgTotalZ, 3.0) {
		t.Errorf("sum/avg = %v/%v, want 6/3", alpha.SumTotalZ, alpha.AvgTotalZ)
	}
	if !almostEqual(alpha.ActualWins, 1.5) || !almostEqual(alpha.ExpectedWins, 1.4) {
		t.Errorf("actual/expected = %v/%v, want 1.5/1.4", alpha.ActualWins, alpha.ExpectedWins)
	}
	if !almostEqual(alpha.Luck, 0.1) {
		t.Errorf("luck = %v, want 0.1", alpha.Luck)
	}
	if !almostEqual(alpha.FraudScore, 0.05) {
		t.Errorf("fraudScore = %v, want 0.05", alpha.FraudScore)
	}
	if !almostEqual(alpha.CatAvgZ[models.CatPoints], 3.0) {
		t.Errorf("PTS season z = %v, want 3", alpha.CatAvgZ[models.CatPoints])
	}

	if got[0].TeamID != 1 || got[0].Rank != 1 {
		t.Errorf("best team = %d rank %d, want team 1 rank 1", got[0].TeamID, got[0].Rank)
	}
	if got[1].Rank != 2 {
		t.Errorf("second rank = %d, want 2", got[1].Rank)
	}
}

func TestSeasonSummariesSkipsLeagueAverage(t *testing.T) {
	avg := powerEntry(LeagueAverageTeamID, LeagueAverageTeamName, 0.5, 0, 0)
	avg.LeagueAverage = true

	weeks := [][]TeamPower{{
		powerEntry(1, "Alpha", 1.0, 0.5, 0.5),
		powerEntry(2, "Beta", -1.0, 0.5, 0.5),
		avg,
	}}

	for _, s := range SeasonSummaries(weeks) {
		if s.TeamID == LeagueAverageTeamID {
			t.Fatalf("league average row leaked into season summaries")
		}
	}
}

func TestSeasonSummariesTiedRanks(t *testing.T) {
	weeks := [][]TeamPower{{
		powerEntry(1, "Alpha", 2.0, 0.5, 0.5),
		powerEntry(2, "Beta", 2.0, 0.5, 0.5),
		powerEntry(3, "Gamma", -1.0, 0.5, 0.5),
	}}

	got := SeasonSummaries(weeks)

	if findSummary(t, got, 1).Rank != 1 || findSummary(t, got, 2).Rank != 1 {
		t.Errorf("tied leaders should share rank 1")
	}
	if r := findSummary(t, got, 3).Rank; r != 3 {
		t.Errorf("rank after a two-way tie = %d, want 3", r)
	}
	// Deterministic ordering inside the tie.
	if got[0].TeamID != 1 || got[1].TeamID != 2 {
		t.Errorf("tie ordering = %d,%d, want 1,2", got[0].TeamID, got[1].TeamID)
	}
}

func TestSeasonSummariesUnevenWeeks(t *testing.T) {
	// Team 3 joined for the second week only: its averages divide by its own
	// week count, not the range length.
	weeks := [][]TeamPower{
		{
			powerEntry(1, "Alpha", 3.0, 1.0, 0.9),
			powerEntry(2, "Beta", -3.0, 0.0, 0.1),
		},
		{
			powerEntry(1, "Alpha", 1.0, 0.5, 0.5),
			powerEntry(2, "Beta", -1.0, 0.5, 0.5),
			powerEntry(3, "Gamma", 5.0, 1.0, 1.0),
		},
	}

	gamma := findSummary(t, SeasonSummaries(weeks), 3)
	if gamma.Weeks != 1 {
		t.Fatalf("weeks = %d, want 1", gamma.Weeks)
	}
	if !almostEqual(gamma.AvgTotalZ, 5.0) {
		t.Errorf("avgTotalZ = %v, want 5", gamma.AvgTotalZ)
	}
}
