package model

// Dispatch is a strategy's request for one hour. Both fields are
// magnitudes in kWh; the battery clips them to what is feasible.
type Dispatch struct {
	ChargeOfferKWh      float64
	DischargeRequestKWh float64
}

// HourRecord is one row of per-hour output for one strategy.
// This is the primary artifact for "what happened" during the day,
// and it is serialized as-is by the API layer.
type HourRecord struct {
	Hour             int     `json:"hour"`
	SolarGeneration  float64 `json:"solar_generation"`
	LoadDemand       float64 `json:"load_demand"`
	SolarUsed        float64 `json:"solar_used"`
	SolarExcess      float64 `json:"solar_excess"`
	GridUsage        float64 `json:"grid_usage"`
	BatteryCharge    float64 `json:"battery_charge"`
	BatteryDischarge float64 `json:"battery_discharge"`
	BatterySOC       float64 `json:"battery_soc"` // percentage 0-100
	GridPrice        float64 `json:"grid_price"`
	HourlyCost       float64 `json:"hourly_cost"`
	IsPeakHour       bool    `json:"is_peak_hour"`
}

// Summary aggregates both strategies' totals and the derived savings.
type Summary struct {
	BaselineTotalCost  float64 `json:"baseline_total_cost"`
	SmartTotalCost     float64 `json:"smart_total_cost"`
	CostSaved          float64 `json:"cost_saved"`
	CostSavedPercent   float64 `json:"cost_saved_percent"`
	BaselineGridUsage  float64 `json:"baseline_grid_usage"`
	SmartGridUsage     float64 `json:"smart_grid_usage"`
	GridReduced        float64 `json:"grid_reduced"`
	GridReducedPercent float64 `json:"grid_reduced_percent"`
	BatteryCapacityKWh float64 `json:"battery_capacity_kwh"`
	PeakPrice          float64 `json:"peak_price"`
	OffPeakPrice       float64 `json:"off_peak_price"`
}

// ComparisonResult is the full output of one simulation run:
// 24 records per strategy plus the aggregated summary.
type ComparisonResult struct {
	BaselineData []HourRecord `json:"baseline_data"`
	SmartData    []HourRecord `json:"smart_data"`
	Summary      Summary      `json:"summary"`
}
