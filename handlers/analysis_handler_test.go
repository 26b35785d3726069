package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hooprank-api/models"
	"hooprank-api/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testLeagueID = 70600

// newTestRouter wires the analysis routes over an in-memory database seeded
// with one completed week for two teams.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
	seedWeek(t, db)

	stats := services.NewStatsService(db, testLeagueID)
	analysis := services.NewAnalysisService(db, stats, testLeagueID)
	opponent := services.NewOpponentService(db, stats, testLeagueID)

	analysisHandler := NewAnalysisHandler(analysis)
	opponentHandler := NewOpponentHandler(opponent)

	r := gin.New()
	api := r.Group("/api/analysis")
	api.GET("/week-zscores", analysisHandler.GetWeekZScores)
	api.GET("/week-power", analysisHandler.GetWeekPower)
	api.GET("/opponent-matrix", opponentHandler.GetOpponentMatrix)
	return r
}

func seedWeek(t *testing.T, db *gorm.DB) {
	t.Helper()

	teams := []models.Team{
		{LeagueID: testLeagueID, Season: 2024, FantasyTeamID: 1, Name: "Alpha"},
		{LeagueID: testLeagueID, Season: 2024, FantasyTeamID: 2, Name: "Beta"},
	}
	if err := db.Create(&teams).Error; err != nil {
		t.Fatalf("failed to seed teams: %v", err)
	}
	for i, team := range teams {
		row := models.TeamWeeklyStat{
			LeagueID: testLeagueID, Season: 2024, Week: 1, TeamID: team.ID,
			GamesPlayed: 30,
			FGM:         50 + 10*i, FGA: 120,
			FTM: 25 + 5*i, FTA: 60,
			ThreePM: 10 + 10*i, Reb: 110 + 10*i, Ast: 60 + 10*i,
			Stl: 15 + 5*i, Blk: 10 + 5*i, DD: 1 + i, Pts: 250 + 50*i,
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed to seed stats: %v", err)
		}
	}
	m := models.Matchup{
		LeagueID: testLeagueID, Season: 2024, Week: 1, MatchupID: 1,
		HomeTeamID: teams[0].ID, AwayTeamID: teams[1].ID, WinnerTeamID: &teams[1].ID,
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("failed to seed matchup: %v", err)
	}
	var results []models.MatchupCategoryResult
	for _, cat := range models.Categories {
		results = append(results,
			models.MatchupCategoryResult{
				LeagueID: testLeagueID, Season: 2024, Week: 1, MatchupID: 1,
				TeamID: teams[1].ID, OpponentTeamID: teams[0].ID, Category: cat, Result: "W",
			},
			models.MatchupCategoryResult{
				LeagueID: testLeagueID, Season: 2024, Week: 1, MatchupID: 1,
				TeamID: teams[0].ID, OpponentTeamID: teams[1].ID, Category: cat, Result: "L",
			},
		)
	}
	if err := db.Create(&results).Error; err != nil {
		t.Fatalf("failed to seed category results: %v", err)
	}
}

func doRequest(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetWeekZScores(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/analysis/week-zscores?year=2024&week=1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var payload models.WeekZScoresPayload
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Year != 2024 || payload.Week != 1 {
		t.Errorf("payload year/week = %d/%d", payload.Year, payload.Week)
	}
	if len(payload.Teams) != 3 {
		t.Errorf("got %d teams, want 2 + league average", len(payload.Teams))
	}
}

func TestGetWeekZScoresParamValidation(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		path string
	}{
		{"missing year", "/api/analysis/week-zscores?week=1"},
		{"missing week", "/api/analysis/week-zscores?year=2024"},
		{"bad year", "/api/analysis/week-zscores?year=banana&week=1"},
		{"bad week", "/api/analysis/week-zscores?year=2024&week=banana"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, tc.path)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestGetWeekPower(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/analysis/week-power?year=2024&week=1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var payload models.WeekPowerPayload
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Teams) != 3 {
		t.Fatalf("got %d teams, want 2 + league average", len(payload.Teams))
	}
	if payload.Teams[0].TeamID != 2 || payload.Teams[0].Rank != 1 {
		t.Errorf("leader = %+v, want team 2 at rank 1", payload.Teams[0])
	}
}

func TestGetOpponentMatrixParamValidation(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		path string
		want int
	}{
		{"missing startYear", "/api/analysis/opponent-matrix", http.StatusBadRequest},
		{"bad startYear", "/api/analysis/opponent-matrix?startYear=abc", http.StatusBadRequest},
		{"endYear before startYear", "/api/analysis/opponent-matrix?startYear=2024&endYear=2023", http.StatusBadRequest},
		{"happy path", "/api/analysis/opponent-matrix?startYear=2024", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, tc.path)
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
