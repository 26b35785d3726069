package handlers

import (
	"log"
	"net/http"
	"strconv"

	"hooprank-api/services"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisService *services.AnalysisService
}

func NewAnalysisHandler(analysisService *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// GetWeekZScores retrieves raw stats and z-scores for one week
// @Summary Get weekly z-scores
// @Description Get raw category totals and z-scores for every team in one week, including the league-average row
// @Tags analysis
// @Produce json
// @Param year query int true "Season"
// @Param week query int true "Matchup week"
// @Success 200 {object} models.WeekZScoresPayload
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/analysis/week-zscores [get]
func (h *AnalysisHandler) GetWeekZScores(c *gin.Context) {
	year, week, ok := yearWeekParams(c)
	if !ok {
		return
	}

	payload, err := h.analysisService.WeekZScores(year, week)
	if err != nil {
		log.Printf("Week z-scores failed for %d/%d: %v", year, week, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute week z-scores",
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// GetSeasonZScores retrieves z-scores for every completed week of a season
// @Summary Get season z-scores
// @Description Get week-by-week z-scores for every completed week of a season
// @Tags analysis
// @Produce json
// @Param year query int true "Season"
// @Success 200 {object} models.SeasonZScoresPayload
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/analysis/season-zscores [get]
func (h *AnalysisHandler) GetSeasonZScores(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}

	payload, err := h.analysisService.SeasonZScores(year)
	if err != nil {
		log.Printf("Season z-scores failed for %d: %v", year, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute season z-scores",
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// GetWeekPower retrieves the weekly power rankings
// @Summary Get weekly power rankings
// @Description Get per-team z-scores, all-play record, luck index and ranks for one week
// @Tags analysis
// @Produce json
// @Param year query int true "Season"
// @Param week query int true "Matchup week"
// @Param refresh query bool false "Bypass the week cache and recompute"
// @Success 200 {object} models.WeekPowerPayload
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/analysis/week-power [get]
func (h *AnalysisHandler) GetWeekPower(c *gin.Context) {
	year, week, ok := yearWeekParams(c)
	if !ok {
		return
	}
	refresh := c.DefaultQuery("refresh", "false") == "true"

	payload, err := h.analysisService.WeekPower(year, week, refresh)
	if err != nil {
		log.Printf("Week power failed for %d/%d: %v", year, week, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute week power rankings",
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// GetSeasonPower retrieves the season power rankings
// @Summary Get season power rankings
// @Description Get season-aggregated power rankings: average z, luck, fraud score and per-category season ranks
// @Tags analysis
// @Produce json
// @Param year query int true "Season"
// @Param refresh query bool false "Recompute every week instead of using caches"
// @Success 200 {object} models.SeasonPowerPayload
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/analysis/season-power [get]
func (h *AnalysisHandler) GetSeasonPower(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	refresh := c.DefaultQuery("refresh", "false") == "true"

	payload, err := h.analysisService.SeasonPower(year, refresh)
	if err != nil {
		log.Printf("Season power failed for %d: %v", year, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute season power rankings",
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// GetTeamHistory retrieves one team's week-by-week trajectory
// @Summary Get team history
// @Description Get a team's weekly rank, total z and cumulative z, with the league-average mirror
// @Tags analysis
// @Produce json
// @Param year query int true "Season"
// @Param teamId query int true "Fantasy team ID"
// @Success 200 {object} models.TeamHistoryPayload
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/analysis/team-history [get]
func (h *AnalysisHandler) GetTeamHistory(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		return
	}
	teamID, err := strconv.Atoi(c.Query("teamId"))
	if err != nil || teamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid teamId",
		})
		return
	}

	payload, err := h.analysisService.TeamHistory(year, teamID)
	if err != nil {
		log.Printf("Team history failed for %d team %d: %v", year, teamID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute team history",
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}

func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid year",
		})
		return 0, false
	}
	return year, true
}

func yearWeekParams(c *gin.Context) (int, int, bool) {
	year, ok := yearParam(c)
	if !ok {
		return 0, 0, false
	}
	week, err := strconv.Atoi(c.Query("week"))
	if err != nil || week <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid week",
		})
		return 0, 0, false
	}
	return year, week, true
}
