package services

import (
	"testing"
)

func TestResultScores(t *testing.T) {
	db := newTestDB(t)
	seedSeason(t, db, 2024, 1)

	stats := NewStatsService(db, testLeagueID)
	scores, err := stats.ResultScores(2024, 1)
	if err != nil {
		t.Fatalf("ResultScores failed: %v", err)
	}

	want := map[int]float64{1: 0, 2: 1, 3: 0, 4: 1}
	for teamID, w := range want {
		if got, ok := scores[teamID]; !ok || got != w {
			t.Errorf("team %d score = %v (present %v), want %v", teamID, got, ok, w)
		}
	}
}

func TestCompletedWeeksIgnoresOpenMatchups(t *testing.T) {
	db := newTestDB(t)
	teams := seedSeason(t, db, 2024, 2)

	// Week 3 is scheduled but not finished.
	for i, team := range teams {
		seedWeekStats(t, db, team, 2024, 3, i+1)
	}
	seedOpenMatchup(t, db, 2024, 3, 1, teams[0], teams[1])
	seedOpenMatchup(t, db, 2024, 3, 2, teams[2], teams[3])

	stats := NewStatsService(db, testLeagueID)

	weeks, err := stats.SeasonWeeks(2024)
	if err != nil {
		t.Fatalf("SeasonWeeks failed: %v", err)
	}
	if len(weeks) != 3 {
		t.Errorf("weeks available = %v, want 3 weeks", weeks)
	}

	completed, err := stats.CompletedWeeks(2024)
	if err != nil {
		t.Fatalf("CompletedWeeks failed: %v", err)
	}
	if len(completed) != 2 || completed[0] != 1 || completed[1] != 2 {
		t.Errorf("completed weeks = %v, want [1 2]", completed)
	}
}

func TestWeekRowsUsesProviderIDs(t *testing.T) {
	db := newTestDB(t)
	seedSeason(t, db, 2024, 1)

	stats := NewStatsService(db, testLeagueID)
	rows, err := stats.WeekRows(2024, 1)
	if err != nil {
		t.Fatalf("WeekRows failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	for i, r := range rows {
		if r.TeamID != i+1 {
			t.Errorf("row %d team id = %d, want %d", i, r.TeamID, i+1)
		}
		if len(r.Values) != 9 {
			t.Errorf("team %d has %d category values, want 9", r.TeamID, len(r.Values))
		}
	}
}

func TestWeekRowsEmptyWeek(t *testing.T) {
	db := newTestDB(t)
	seedTeams(t, db, 2024, 4)

	stats := NewStatsService(db, testLeagueID)
	rows, err := stats.WeekRows(2024, 1)
	if err != nil {
		t.Fatalf("WeekRows failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows for empty week, want 0", len(rows))
	}
}
