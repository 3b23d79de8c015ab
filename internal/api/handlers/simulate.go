package handlers

import (
	"errors"
	"io"
	"net/http"

	"microgrid-twin/internal/analysis"
	"microgrid-twin/internal/api/models"
	"microgrid-twin/internal/model"
	"microgrid-twin/internal/sim"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SimulateHandler handles simulation requests
type SimulateHandler struct {
	engine *sim.Engine
	log    zerolog.Logger
}

// NewSimulateHandler creates a new simulation handler
func NewSimulateHandler(log zerolog.Logger) *SimulateHandler {
	return &SimulateHandler{
		engine: sim.New(),
		log:    log,
	}
}

// RunSimulation handles POST /api/v1/simulate.
// An empty body runs the stock scenario.
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg := buildConfig(req)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	h.respond(c, cfg, req.Options)
}

// RunDefaultSimulation handles GET /api/v1/simulate/default.
// Convenience endpoint for quick testing without a request body.
func (h *SimulateHandler) RunDefaultSimulation(c *gin.Context) {
	h.respond(c, model.DefaultConfig(), models.SimulateOptions{})
}

func (h *SimulateHandler) respond(c *gin.Context, cfg model.SimulationConfig, opts models.SimulateOptions) {
	result, err := h.engine.Compare(cfg)
	if err != nil {
		h.log.Error().Err(err).Msg("simulation failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.SimulateResponse{ComparisonResult: *result}
	if opts.IncludeAnalysis {
		resp.Analysis = analysis.CompareLedgers(result)
	}

	h.log.Info().
		Float64("battery_kwh", cfg.BatteryCapacityKWh).
		Str("weather", string(cfg.Weather)).
		Float64("cost_saved", result.Summary.CostSaved).
		Msg("simulation complete")
	c.JSON(http.StatusOK, resp)
}

// buildConfig overlays the request onto the stock defaults.
func buildConfig(req models.SimulateRequest) model.SimulationConfig {
	cfg := model.DefaultConfig()
	if req.BatteryCapacityKWh != nil {
		cfg.BatteryCapacityKWh = *req.BatteryCapacityKWh
	}
	if req.SolarCapacityKW != nil {
		cfg.SolarCapacityKW = *req.SolarCapacityKW
	}
	if req.WeatherMode != nil {
		cfg.Weather = model.WeatherMode(*req.WeatherMode)
	}
	if req.OffPeakPrice != nil {
		cfg.OffPeakPrice = *req.OffPeakPrice
	}
	if req.StandardPrice != nil {
		cfg.StandardPrice = *req.StandardPrice
	}
	if req.PeakPrice != nil {
		cfg.PeakPrice = *req.PeakPrice
	}
	if req.InitialSOC != nil {
		cfg.InitialSOC = *req.InitialSOC
	}
	return cfg
}
