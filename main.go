package main

import (
	"log"
	"os"

	"hooprank-api/config"
	"hooprank-api/cron"
	_ "hooprank-api/docs" // Swagger docs
	"hooprank-api/handlers"
	"hooprank-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           HoopRank API
// @version         1.0
// @description     Power rankings, z-scores and head-to-head analytics for a fantasy basketball league

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	settings := config.Load()
	config.ConnectDatabase()

	statsService := services.NewStatsService(config.DB, settings.LeagueID)
	analysisService := services.NewAnalysisService(config.DB, statsService, settings.LeagueID)
	opponentService := services.NewOpponentService(config.DB, statsService, settings.LeagueID)

	var standingsCache services.StandingsCache
	if settings.RedisAddr != "" {
		redisCache, err := services.NewRedisStandingsCache(settings.RedisAddr, settings.LeagueID)
		if err != nil {
			log.Printf("Redis unavailable, falling back to in-memory cache: %v", err)
			standingsCache = services.NewMemoryStandingsCache(settings.LeagueID)
		} else {
			standingsCache = redisCache
		}
	} else {
		standingsCache = services.NewMemoryStandingsCache(settings.LeagueID)
	}

	standingsService := services.NewStandingsService(config.DB, statsService, standingsCache, settings.LeagueID, settings.LeagueName)
	metaService := services.NewMetaService(config.DB, statsService, settings.LeagueID, settings.LeagueName)
	refreshService := services.NewRefreshService(statsService, analysisService, opponentService, standingsService)

	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	opponentHandler := handlers.NewOpponentHandler(opponentService)
	leagueHandler := handlers.NewLeagueHandler(standingsService, metaService, refreshService)
	metaHandler := handlers.NewMetaHandler(metaService)

	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/health", healthHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/meta", metaHandler.GetMeta)
		api.GET("/league", leagueHandler.GetLeague)
		api.GET("/league/health", leagueHandler.GetLeagueHealth)
		api.POST("/league/:season/weeks/:week/refresh", leagueHandler.RefreshWeek)

		analysis := api.Group("/analysis")
		{
			analysis.GET("/week-zscores", analysisHandler.GetWeekZScores)
			analysis.GET("/season-zscores", analysisHandler.GetSeasonZScores)
			analysis.GET("/week-power", analysisHandler.GetWeekPower)
			analysis.GET("/season-power", analysisHandler.GetSeasonPower)
			analysis.GET("/team-history", analysisHandler.GetTeamHistory)
			analysis.GET("/opponent-matrix", opponentHandler.GetOpponentMatrix)
		}
	}

	scheduler := cron.NewScheduler(statsService, refreshService)
	if err := scheduler.Start(); err != nil {
		log.Printf("Scheduler failed to start: %v", err)
	}
	defer scheduler.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Message  string `json:"message" example:"Server is running"`
	Database string `json:"database" example:"connected"`
}

// @Summary Health Check
// @Description Check if the server is running and the database is reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func healthHandler(c *gin.Context) {
	database := "connected"
	status := 200

	sqlDB, err := config.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		database = "unreachable"
		status = 503
	}

	c.JSON(status, HealthResponse{
		Message:  "Server is running",
		Database: database,
	})
}
