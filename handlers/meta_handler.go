package handlers

import (
	"log"
	"net/http"
	"strconv"

	"hooprank-api/services"

	"github.com/gin-gonic/gin"
)

type MetaHandler struct {
	metaService *services.MetaService
}

func NewMetaHandler(metaService *services.MetaService) *MetaHandler {
	return &MetaHandler{
		metaService: metaService,
	}
}

// GetMeta retrieves league metadata
// @Summary Get league metadata
// @Description Get the seasons and weeks with data, current week, league name and team count
// @Tags meta
// @Produce json
// @Param year query int false "Season (defaults to the latest with data)"
// @Success 200 {object} models.MetaPayload
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/meta [get]
func (h *MetaHandler) GetMeta(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid year",
			})
			return
		}
		year = parsed
	}

	payload, err := h.metaService.Meta(year)
	if err != nil {
		log.Printf("Meta failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load league metadata",
		})
		return
	}

	c.JSON(http.StatusOK, payload)
}
