package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"evhire_backend/internal/services"
)

type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  base,
		statsService: statsService,
	}
}

func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats/platform", h.PlatformStats)
}

func (h *StatsHandler) PlatformStats(c *gin.Context) {
	db := h.GetDB(c)

	stats, err := h.statsService.PlatformStats(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
