package models

// SimulateRequest represents the request body for running a simulation.
// Every field is optional; omitted fields take the stock defaults.
// Ranges mirror what the frontend exposes.
type SimulateRequest struct {
	BatteryCapacityKWh *float64 `json:"battery_capacity_kwh,omitempty" binding:"omitempty,gte=1,lte=100"`
	SolarCapacityKW    *float64 `json:"solar_capacity_kw,omitempty" binding:"omitempty,gte=3,lte=7"`
	WeatherMode        *string  `json:"weather_mode,omitempty" binding:"omitempty,oneof=sunny cloudy"`
	OffPeakPrice       *float64 `json:"off_peak_price,omitempty" binding:"omitempty,gte=2,lte=10"`
	StandardPrice      *float64 `json:"standard_price,omitempty" binding:"omitempty,gte=3,lte=12"`
	PeakPrice          *float64 `json:"peak_price,omitempty" binding:"omitempty,gte=5,lte=15"`
	InitialSOC         *float64 `json:"initial_soc,omitempty" binding:"omitempty,gte=0.2,lte=1"`

	Options SimulateOptions `json:"options,omitempty"`
}

// SimulateOptions contains optional output toggles.
type SimulateOptions struct {
	IncludeAnalysis bool `json:"include_analysis,omitempty"`
}
