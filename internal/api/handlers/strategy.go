package handlers

import (
	"net/http"

	"microgrid-twin/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ListStrategies handles GET /api/v1/strategies
func ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "baseline",
			Description: "Battery idle. Solar serves load directly, the grid covers any deficit, surplus solar is wasted.",
		},
		{
			Name:        "smart",
			Description: "Peak shaving. Surplus solar charges the battery; during the configured peak window the battery discharges before the grid is used.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
