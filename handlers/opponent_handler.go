package handlers

import (
	"log"
	"net/http"
	"strconv"

	"hooprank-api/services"

	"github.com/gin-gonic/gin"
)

type OpponentHandler struct {
	opponentService *services.OpponentService
}

func NewOpponentHandler(opponentService *services.OpponentService) *OpponentHandler {
	return &OpponentHandler{
		opponentService: opponentService,
	}
}

// GetOpponentMatrix retrieves head-to-head records over a year range
// @Summary Get the opponent matrix
// @Description Get merged head-to-head matchup and category records over a season or year range
// @Tags opponents
// @Produce json
// @Param startYear query int true "First season of the range"
// @Param endYear query int false "Last season of the range (defaults to startYear)"
// @Param teamId query int false "Restrict to one team's perspective"
// @Param ownerEraOnly query bool false "Exclude seasons before the current owner took over"
// @Success 200 {object} models.OpponentMatrixPayload
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/analysis/opponent-matrix [get]
func (h *OpponentHandler) GetOpponentMatrix(c *gin.Context) {
	startYear, err := strconv.Atoi(c.Query("startYear"))
	if err != nil || startYear <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid startYear",
		})
		return
	}

	endYear := startYear
	if raw := c.Query("endYear"); raw != "" {
		endYear, err = strconv.Atoi(raw)
		if err != nil || endYear < startYear {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid endYear",
			})
			return
		}
	}

	var teamID *int
	if raw := c.Query("teamId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid teamId",
			})
			return
		}
		teamID = &id
	}

	ownerEraOnly := c.DefaultQuery("ownerEraOnly", "false") == "true"

	payload, err := h.opponentService.Matrix(startYear, endYear, teamID, ownerEraOnly)
	if err != nil {
		log.Printf("Opponent matrix failed for %d-%d: %v", startYear, endYear, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute opponent matrix",
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}
