package services

import (
	"math"
	"testing"

	"hooprank-api/models"
)

func TestWeekZScoresPayload(t *testing.T) {
	db := newTestDB(t)
	seedSeason(t, db, 2024, 1)

	stats := NewStatsService(db, testLeagueID)
	analysis := NewAnalysisService(db, stats, testLeagueID)

	payload, err := analysis.WeekZScores(2024, 1)
	if err != nil {
		t.Fatalf("WeekZScores failed: %v", err)
	}
	if payload.Year != 2024 || payload.Week != 1 {
		t.Errorf("payload year/week = %d/%d", payload.Year, payload.Week)
	}
	if len(payload.Teams) != 5 {
		t.Fatalf("got %d teams, want 4 + league average", len(payload.Teams))
	}

	last := payload.Teams[len(payload.Teams)-1]
	if !last.IsLeagueAverage || last.TeamID != 0 {
		t.Errorf("last entry should be the league average, got %+v", last)
	}
	for _, team := range payload.Teams {
		if len(team.ZScores) != 9 {
			t.Errorf("team %d has %d z-scores, want 9", team.TeamID, len(team.ZScores))
		}
		for key, z := range team.ZScores {
			if math.IsNaN(z) || math.IsInf(z, 0) {
				t.Errorf("team %d %s is non-finite", team.TeamID, key)
			}
		}
	}
}

func TestWeekPowerOrderingAndLuck(t *testing.T) {
	db := newTestDB(t)
	seedSeason(t, db, 2024, 1)

	stats := NewStatsService(db, testLeagueID)
	analysis := NewAnalysisService(db, stats, testLeagueID)

	payload, err := analysis.WeekPower(2024, 1, false)
	if err != nil {
		t.Fatalf("WeekPower failed: %v", err)
	}
	if len(payload.Teams) != 5 {
		t.Fatalf("got %d teams, want 4 + league average", len(payload.Teams))
	}

	// Strength equals team id, so the order is 4, 3, 2, 1.
	wantOrder := []int{4, 3, 2, 1}
	for i, want := range wantOrder {
		got := payload.Teams[i]
		if got.TeamID != want {
			t.Errorf("position %d team = %d, want %d", i, got.TeamID, want)
		}
		if got.Rank != i+1 {
			t.Errorf("team %d rank = %d, want %d", got.TeamID, got.Rank, i+1)
		}
	}

	avg := payload.Teams[4]
	if !avg.IsLeagueAverage || avg.Rank != 0 {
		t.Errorf("league average entry = %+v, want unranked average row", avg)
	}
	for cat, rank := range avg.PerCategoryRank {
		if rank != nil {
			t.Errorf("league average has a %s rank", cat)
		}
	}

	// Team 4 swept team 3 and beats everyone all-play: no luck either way.
	top := payload.Teams[0]
	if top.AllPlay.Wins != 3 || top.AllPlay.WinPct != 1 {
		t.Errorf("team 4 all-play = %+v, want 3-0 at 1.0", top.AllPlay)
	}
	if top.LuckIndex != 0 {
		t.Errorf("team 4 luck = %v, want 0", top.LuckIndex)
	}

	// Team 3 beats 1 and 2 all-play (2/3) but lost its real matchup (0).
	third := payload.Teams[1]
	if got, want := third.LuckIndex, 0.0-2.0/3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("team 3 luck = %v, want %v", got, want)
	}
}

func TestWeekPowerCacheServesStaleUntilRefresh(t *testing.T) {
	db := newTestDB(t)
	teams := seedSeason(t, db, 2024, 1)

	stats := NewStatsService(db, testLeagueID)
	analysis := NewAnalysisService(db, stats, testLeagueID)

	first, err := analysis.WeekPower(2024, 1, false)
	if err != nil {
		t.Fatalf("WeekPower failed: %v", err)
	}

	var cachedRows int64
	db.Model(&models.WeekTeamStat{}).
		Where("league_id = ? AND year = ? AND week = ?", testLeagueID, 2024, 1).
		Count(&cachedRows)
	if cachedRows != 5 {
		t.Fatalf("cache holds %d rows, want 5", cachedRows)
	}

	// Upstream correction: team 1 suddenly dominates.
	if err := db.Model(&models.TeamWeeklyStat{}).
		Where("team_id = ? AND season = ? AND week = ?", teams[0].ID, 2024, 1).
		Update("pts", 9000).Error; err != nil {
		t.Fatalf("failed to update stats: %v", err)
	}

	cached, err := analysis.WeekPower(2024, 1, false)
	if err != nil {
		t.Fatalf("WeekPower (cached) failed: %v", err)
	}
	if got, want := findWeekPower(t, cached, 1).TotalZ, findWeekPower(t, first, 1).TotalZ; got != want {
		t.Errorf("cached read recomputed team 1 totalZ: %v vs %v", got, want)
	}

	refreshed, err := analysis.WeekPower(2024, 1, true)
	if err != nil {
		t.Fatalf("WeekPower (refresh) failed: %v", err)
	}
	if got, stale := findWeekPower(t, refreshed, 1).TotalZ, findWeekPower(t, cached, 1).TotalZ; got == stale {
		t.Errorf("refresh did not pick up the stat correction, totalZ still %v", got)
	}
}

func findWeekPower(t *testing.T, payload *models.WeekPowerPayload, teamID int) models.TeamWeekPower {
	t.Helper()
	for _, team := range payload.Teams {
		if team.TeamID == teamID {
			return team
		}
	}
	t.Fatalf("team %d not in payload", teamID)
	return models.TeamWeekPower{}
}

func TestSeasonPowerAggregates(t *testing.T) {
	db := newTestDB(t)
	seedSeason(t, db, 2024, 2)

	stats := NewStatsService(db, testLeagueID)
	analysis := NewAnalysisService(db, stats, testLeagueID)

	payload, err := analysis.SeasonPower(2024, false)
	if err != nil {
		t.Fatalf("SeasonPower failed: %v", err)
	}
	if len(payload.Teams) != 4 {
		t.Fatalf("got %d teams, want 4", len(payload.Teams))
	}

	top := payload.Teams[0]
	if top.TeamID != 4 || top.Rank != 1 || top.Weeks != 2 {
		t.Errorf("leader = %+v, want team 4 rank 1 over 2 weeks", top)
	}
	if top.ActualWins != 2 || top.ExpectedWins != 2 || top.Luck != 0 {
		t.Errorf("team 4 wins/luck = %v/%v/%v, want 2/2/0", top.ActualWins, top.ExpectedWins, top.Luck)
	}
	if top.AvgZ != top.AvgTotalZ {
		t.Errorf("avgZ alias %v != avgTotalZ %v", top.AvgZ, top.AvgTotalZ)
	}

	var third models.TeamSeasonPower
	for _, team := range payload.Teams {
		if team.TeamID == 3 {
			third = team
		}
	}
	// Team 3: 0 actual wins, 2/3 expected per week.
	if got, want := third.Luck, 0.0-4.0/3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("team 3 luck = %v, want %v", got, want)
	}
	if got, want := third.FraudScore, (0.0-4.0/3.0)/2.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("team 3 fraudScore = %v, want %v", got, want)
	}

	// Metrics rows were persisted.
	var metricRows int64
	db.Model(&models.SeasonTeamMetric{}).
		Where("league_id = ? AND year = ?", testLeagueID, 2024).
		Count(&metricRows)
	if metricRows != 4 {
		t.Errorf("season metrics rows = %d, want 4", metricRows)
	}
}

func TestTeamHistoryCumulative(t *testing.T) {
	db := newTestDB(t)
	seedSeason(t, db, 2024, 2)

	stats := NewStatsService(db, testLeagueID)
	analysis := NewAnalysisService(db, stats, testLeagueID)

	payload, err := analysis.TeamHistory(2024, 4)
	if err != nil {
		t.Fatalf("TeamHistory failed: %v", err)
	}
	if payload.TeamID != 4 || len(payload.History) != 2 {
		t.Fatalf("payload = team %d with %d weeks, want team 4 with 2", payload.TeamID, len(payload.History))
	}

	w1, w2 := payload.History[0], payload.History[1]
	if w1.Rank != 1 || w2.Rank != 1 {
		t.Errorf("ranks = %d/%d, want 1/1", w1.Rank, w2.Rank)
	}
	if w1.TotalZ <= 0 {
		t.Errorf("team 4 weekly totalZ = %v, want positive", w1.TotalZ)
	}
	// Both weeks are identical, so the running total doubles.
	if got, want := w2.CumulativeTotalZ, 2*w1.TotalZ; math.Abs(got-want) > 1e-9 {
		t.Errorf("cumulative = %v, want %v", got, want)
	}
	// The league-average row is centered in its own basis.
	if math.Abs(w1.LeagueAverageTotalZ) > 1e-9 {
		t.Errorf("league average totalZ = %v, want 0", w1.LeagueAverageTotalZ)
	}
}

func TestRefreshWeekRebuildsDerivedData(t *testing.T) {
	db := newTestDB(t)
	teams := seedSeason(t, db, 2024, 1)

	stats := NewStatsService(db, testLeagueID)
	analysis := NewAnalysisService(db, stats, testLeagueID)
	opponent := NewOpponentService(db, stats, testLeagueID)
	cache := NewMemoryStandingsCache(testLeagueID)
	standings := NewStandingsService(db, stats, cache, testLeagueID, "Test League")
	refresh := NewRefreshService(stats, analysis, opponent, standings)

	// Prime the caches, then apply a stat correction.
	before, err := analysis.WeekPower(2024, 1, false)
	if err != nil {
		t.Fatalf("WeekPower failed: %v", err)
	}
	if err := db.Model(&models.TeamWeeklyStat{}).
		Where("team_id = ? AND season = ? AND week = ?", teams[0].ID, 2024, 1).
		Update("pts", 9000).Error; err != nil {
		t.Fatalf("failed to update stats: %v", err)
	}

	if err := refresh.RefreshWeek(2024, 1); err != nil {
		t.Fatalf("RefreshWeek failed: %v", err)
	}

	after, err := analysis.WeekPower(2024, 1, false)
	if err != nil {
		t.Fatalf("WeekPower failed: %v", err)
	}
	if got, stale := findWeekPower(t, after, 1).TotalZ, findWeekPower(t, before, 1).TotalZ; got == stale {
		t.Errorf("week cache still stale after refresh, team 1 totalZ %v", got)
	}

	var historyRows, opponentRows int64
	db.Model(&models.TeamHistoryAgg{}).Where("league_id = ? AND year = ?", testLeagueID, 2024).Count(&historyRows)
	db.Model(&models.OpponentMatrixAggYear{}).Where("league_id = ? AND year = ?", testLeagueID, 2024).Count(&opponentRows)
	if historyRows == 0 {
		t.Errorf("team history rows missing after refresh")
	}
	if opponentRows == 0 {
		t.Errorf("opponent aggregate rows missing after refresh")
	}
}
