package services

import (
	"testing"

	"hooprank-api/models"
)

func TestMetaDefaultsToLatestSeason(t *testing.T) {
	db := newTestDB(t)
	seedSeason(t, db, 2023, 3)
	seedSeason(t, db, 2024, 2)

	stats := NewStatsService(db, testLeagueID)
	meta := NewMetaService(db, stats, testLeagueID, "Test League")

	payload, err := meta.Meta(0)
	if err != nil {
		t.Fatalf("Meta failed: %v", err)
	}
	if payload.Year != 2024 {
		t.Errorf("default year = %d, want latest 2024", payload.Year)
	}
	if len(payload.Years) != 2 || payload.Years[0] != 2023 {
		t.Errorf("years = %v, want [2023 2024]", payload.Years)
	}
	if payload.CurrentWeek != 2 || len(payload.Weeks) != 2 {
		t.Errorf("currentWeek/weeks = %d/%v, want 2/[1 2]", payload.CurrentWeek, payload.Weeks)
	}
	if payload.TeamCount != 4 || payload.LeagueName != "Test League" {
		t.Errorf("teamCount/leagueName = %d/%q", payload.TeamCount, payload.LeagueName)
	}
}

func TestMetaExplicitYear(t *testing.T) {
	db := newTestDB(t)
	seedSeason(t, db, 2023, 3)
	seedSeason(t, db, 2024, 2)

	stats := NewStatsService(db, testLeagueID)
	meta := NewMetaService(db, stats, testLeagueID, "Test League")

	payload, err := meta.Meta(2023)
	if err != nil {
		t.Fatalf("Meta failed: %v", err)
	}
	if payload.Year != 2023 || payload.CurrentWeek != 3 {
		t.Errorf("year/currentWeek = %d/%d, want 2023/3", payload.Year, payload.CurrentWeek)
	}
}

func TestLeagueHealthFlagsMissingStats(t *testing.T) {
	db := newTestDB(t)
	teams := seedSeason(t, db, 2024, 1)

	stats := NewStatsService(db, testLeagueID)
	meta := NewMetaService(db, stats, testLeagueID, "Test League")

	healthy, err := meta.LeagueHealth(2024)
	if err != nil {
		t.Fatalf("LeagueHealth failed: %v", err)
	}
	if !healthy.OK || healthy.Integrity.PresentCount != 4 || healthy.Integrity.ExpectedCount != 4 {
		t.Errorf("healthy report = %+v", healthy.Integrity)
	}
	if healthy.CompletedThroughWeek != 1 {
		t.Errorf("completedThroughWeek = %d, want 1", healthy.CompletedThroughWeek)
	}

	// Drop team 3's weekly line.
	if err := db.
		Where("team_id = ? AND season = ? AND week = ?", teams[2].ID, 2024, 1).
		Delete(&models.TeamWeeklyStat{}).Error; err != nil {
		t.Fatalf("failed to delete stats row: %v", err)
	}

	broken, err := meta.LeagueHealth(2024)
	if err != nil {
		t.Fatalf("LeagueHealth failed: %v", err)
	}
	if broken.OK {
		t.Errorf("report still OK with a missing stats row")
	}
	if broken.Integrity.PresentCount != 3 || broken.Integrity.ExpectedCount != 4 {
		t.Errorf("counts = %d/%d, want 3/4", broken.Integrity.PresentCount, broken.Integrity.ExpectedCount)
	}
	if len(broken.Integrity.Missing) != 1 {
		t.Fatalf("missing = %v, want one entry", broken.Integrity.Missing)
	}
	got := broken.Integrity.Missing[0]
	if got.Week != 1 || got.TeamID != 3 {
		t.Errorf("missing entry = %+v, want week 1 team 3", got)
	}
}
