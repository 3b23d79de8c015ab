// Package analysis computes secondary metrics over a finished dispatch
// ledger: how much of the day's solar was put to work, how hard the
// grid was leaned on, and how much energy moved through the battery.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"microgrid-twin/internal/model"
)

// LedgerMetrics is a strategy-level summary derived from 24 hour records.
// Ratios are fractions 0..1 (rounded to 3 decimals), energies in kWh.
type LedgerMetrics struct {
	Strategy string `json:"strategy"`

	// SelfConsumption is the share of generated solar that served load
	// or was banked, rather than wasted.
	SelfConsumption float64 `json:"self_consumption"`
	// SolarFraction is the share of load served by solar directly.
	SolarFraction float64 `json:"solar_fraction"`

	TotalSolarKWh  float64 `json:"total_solar_kwh"`
	TotalLoadKWh   float64 `json:"total_load_kwh"`
	PeakGridKWh    float64 `json:"peak_grid_kwh"`
	MeanGridDrawKW float64 `json:"mean_grid_draw_kw"`
	MaxGridDrawKW  float64 `json:"max_grid_draw_kw"`
	ThroughputKWh  float64 `json:"battery_throughput_kwh"`
	HoursOnBattery int     `json:"hours_on_battery"`
	WastedSolarKWh float64 `json:"wasted_solar_kwh"`
}

// Compute summarizes one strategy's ledger.
func Compute(name string, records []model.HourRecord) LedgerMetrics {
	m := LedgerMetrics{Strategy: name}
	if len(records) == 0 {
		return m
	}

	grid := make([]float64, 0, len(records))
	var solarUsed, stored float64
	for _, r := range records {
		grid = append(grid, r.GridUsage)
		m.TotalSolarKWh += r.SolarGeneration
		m.TotalLoadKWh += r.LoadDemand
		m.WastedSolarKWh += r.SolarExcess
		m.ThroughputKWh += r.BatteryCharge + r.BatteryDischarge
		solarUsed += r.SolarUsed
		stored += r.BatteryCharge
		if r.IsPeakHour {
			m.PeakGridKWh += r.GridUsage
		}
		if r.BatteryDischarge > 0 {
			m.HoursOnBattery++
		}
	}

	m.MeanGridDrawKW = round3(stat.Mean(grid, nil))
	m.MaxGridDrawKW = floats.Max(grid)
	m.TotalSolarKWh = round2(m.TotalSolarKWh)
	m.TotalLoadKWh = round2(m.TotalLoadKWh)
	m.PeakGridKWh = round2(m.PeakGridKWh)
	m.ThroughputKWh = round2(m.ThroughputKWh)
	m.WastedSolarKWh = round2(m.WastedSolarKWh)

	if m.TotalSolarKWh > 0 {
		m.SelfConsumption = round3((solarUsed + stored) / m.TotalSolarKWh)
	}
	if m.TotalLoadKWh > 0 {
		m.SolarFraction = round3(solarUsed / m.TotalLoadKWh)
	}
	return m
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }

// CompareLedgers computes metrics for both strategies of a comparison.
func CompareLedgers(res *model.ComparisonResult) []LedgerMetrics {
	if res == nil {
		return nil
	}
	return []LedgerMetrics{
		Compute("baseline", res.BaselineData),
		Compute("smart", res.SmartData),
	}
}
