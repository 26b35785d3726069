package services

import (
	"testing"

	"hooprank-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testLeagueID = 70600

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Team{},
		&models.TeamWeeklyStat{},
		&models.Matchup{},
		&models.MatchupCategoryResult{},
		&models.WeekTeamStat{},
		&models.SeasonTeamMetric{},
		&models.TeamHistoryAgg{},
		&models.OpponentMatrixAggYear{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedTeams(t *testing.T, db *gorm.DB, season, n int) []models.Team {
	t.Helper()

	names := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta"}
	teams := make([]models.Team, 0, n)
	for i := 0; i < n; i++ {
		teams = append(teams, models.Team{
			LeagueID:      testLeagueID,
			Season:        season,
			FantasyTeamID: i + 1,
			Name:          names[i],
		})
	}
	if err := db.Create(&teams).Error; err != nil {
		t.Fatalf("failed to seed teams: %v", err)
	}
	return teams
}

// seedWeekStats writes one team's weekly totals scaled by strength, so a
// higher strength wins every category.
func seedWeekStats(t *testing.T, db *gorm.DB, team models.Team, season, week, strength int) {
	t.Helper()

	row := models.TeamWeeklyStat{
		LeagueID:    testLeagueID,
		Season:      season,
		Week:        week,
		TeamID:      team.ID,
		GamesPlayed: 30,
		FGM:         40 + 10*strength,
		FGA:         120,
		FTM:         20 + 5*strength,
		FTA:         60,
		ThreePM:     10 * strength,
		Reb:         100 + 10*strength,
		Ast:         50 + 10*strength,
		Stl:         10 + 5*strength,
		Blk:         5 + 5*strength,
		DD:          strength,
		Pts:         200 + 50*strength,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed weekly stats: %v", err)
	}
}

// seedMatchup creates a completed matchup with per-category results derived
// from the winner sweeping every category. home and away are teams; winner
// must be one of them.
func seedMatchup(t *testing.T, db *gorm.DB, season, week, matchupID int, home, away, winner models.Team) {
	t.Helper()

	m := models.Matchup{
		LeagueID:     testLeagueID,
		Season:       season,
		Week:         week,
		MatchupID:    matchupID,
		HomeTeamID:   home.ID,
		AwayTeamID:   away.ID,
		WinnerTeamID: &winner.ID,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("failed to seed matchup: %v", err)
	}

	loser := home
	if winner.ID == home.ID {
		loser = away
	}
	var results []models.MatchupCategoryResult
	for _, cat := range models.Categories {
		results = append(results,
			models.MatchupCategoryResult{
				LeagueID: testLeagueID, Season: season, Week: week, MatchupID: matchupID,
				TeamID: winner.ID, OpponentTeamID: loser.ID, Category: cat, Result: "W",
			},
			models.MatchupCategoryResult{
				LeagueID: testLeagueID, Season: season, Week: week, MatchupID: matchupID,
				TeamID: loser.ID, OpponentTeamID: winner.ID, Category: cat, Result: "L",
			},
		)
	}
	if err := db.Create(&results).Error; err != nil {
		t.Fatalf("failed to seed category results: %v", err)
	}
}

// seedOpenMatchup creates a matchup with no outcome yet.
func seedOpenMatchup(t *testing.T, db *gorm.DB, season, week, matchupID int, home, away models.Team) {
	t.Helper()

	m := models.Matchup{
		LeagueID:   testLeagueID,
		Season:     season,
		Week:       week,
		MatchupID:  matchupID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("failed to seed open matchup: %v", err)
	}
}

// seedSeason writes `weeks` completed weeks for 4 teams where strength equals
// the fantasy team id: team 4 sweeps team 3, team 2 sweeps team 1.
func seedSeason(t *testing.T, db *gorm.DB, season, weeks int) []models.Team {
	t.Helper()

	teams := seedTeams(t, db, season, 4)
	for week := 1; week <= weeks; week++ {
		for i, team := range teams {
			seedWeekStats(t, db, team, season, week, i+1)
		}
		seedMatchup(t, db, season, week, 1, teams[0], teams[1], teams[1])
		seedMatchup(t, db, season, week, 2, teams[2], teams[3], teams[3])
	}
	return teams
}
