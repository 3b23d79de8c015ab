package handlers

import (
	"net/http"

	"microgrid-twin/internal/api/models"
	"microgrid-twin/internal/model"

	"github.com/gin-gonic/gin"
)

// GetDefaults handles GET /api/v1/config/defaults
func GetDefaults(c *gin.Context) {
	cfg := model.DefaultConfig()
	c.JSON(http.StatusOK, models.DefaultsResponse{
		BatteryCapacityKWh: cfg.BatteryCapacityKWh,
		BatteryEfficiency:  cfg.BatteryEfficiency,
		MinSOC:             cfg.MinSOC,
		MaxSOC:             cfg.MaxSOC,
		InitialSOC:         cfg.InitialSOC,
		SolarCapacityKW:    cfg.SolarCapacityKW,
		WeatherMode:        string(cfg.Weather),
		OffPeakPrice:       cfg.OffPeakPrice,
		StandardPrice:      cfg.StandardPrice,
		PeakPrice:          cfg.PeakPrice,
		PeakHours:          cfg.PeakHours,
	})
}
