package handlers

import (
	"log"
	"net/http"
	"strconv"

	"hooprank-api/services"

	"github.com/gin-gonic/gin"
)

type LeagueHandler struct {
	standingsService *services.StandingsService
	metaService      *services.MetaService
	refreshService   *services.RefreshService
}

func NewLeagueHandler(standingsService *services.StandingsService, metaService *services.MetaService, refreshService *services.RefreshService) *LeagueHandler {
	return &LeagueHandler{
		standingsService: standingsService,
		metaService:      metaService,
		refreshService:   refreshService,
	}
}

// GetLeague retrieves the league overview
// @Summary Get the league overview
// @Description Get standings with matchup and category records, week availability and completion state
// @Tags league
// @Produce json
// @Param year query int true "Season"
// @Param refresh query bool false "Bypass the standings cache"
// @Success 200 {object} models.LeaguePayload
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/league [get]
func (h *LeagueHandler) GetLeague(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	refresh := c.DefaultQuery("refresh", "false") == "true"

	payload, err := h.standingsService.League(year, refresh)
	if err != nil {
		log.Printf("League overview failed for %d: %v", year, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build league overview",
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// GetLeagueHealth retrieves the data-integrity report
// @Summary Get league data health
// @Description Check that every completed week has weekly stats for every team
// @Tags league
// @Produce json
// @Param year query int true "Season"
// @Success 200 {object} models.LeagueHealthPayload
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/league/health [get]
func (h *LeagueHandler) GetLeagueHealth(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	payload, err := h.metaService.LeagueHealth(year)
	if err != nil {
		log.Printf("League health failed for %d: %v", year, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to check league health",
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// RefreshWeek force-recomputes one week and the season aggregates
// @Summary Refresh a week
// @Description Recompute a week's cached power rows and everything derived from them
// @Tags league
// @Produce json
// @Param season path int true "Season"
// @Param week path int true "Matchup week"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/league/{season}/weeks/{week}/refresh [post]
func (h *LeagueHandler) RefreshWeek(c *gin.Context) {
	season, err := strconv.Atoi(c.Param("season"))
	if err != nil || season <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid season",
		})
		return
	}
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid week",
		})
		return
	}

	if err := h.refreshService.RefreshWeek(season, week); err != nil {
		log.Printf("Week refresh failed for %d/%d: %v", season, week, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to refresh week",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "refreshed",
	})
}
