package models

import (
	"microgrid-twin/internal/analysis"
	"microgrid-twin/internal/model"
)

// SimulateResponse wraps a comparison result, optionally carrying the
// per-strategy ledger metrics.
type SimulateResponse struct {
	model.ComparisonResult
	Analysis []analysis.LedgerMetrics `json:"analysis,omitempty"`
}

// DefaultsResponse lists the stock configuration values.
type DefaultsResponse struct {
	BatteryCapacityKWh float64          `json:"battery_capacity_kwh"`
	BatteryEfficiency  float64          `json:"battery_efficiency"`
	MinSOC             float64          `json:"min_soc"`
	MaxSOC             float64          `json:"max_soc"`
	InitialSOC         float64          `json:"initial_soc"`
	SolarCapacityKW    float64          `json:"solar_capacity_kw"`
	WeatherMode        string           `json:"weather_mode"`
	OffPeakPrice       float64          `json:"off_peak_price"`
	StandardPrice      float64          `json:"standard_price"`
	PeakPrice          float64          `json:"peak_price"`
	PeakHours          model.HourWindow `json:"peak_hours"`
}

// StrategyInfo represents information about a dispatch strategy.
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
