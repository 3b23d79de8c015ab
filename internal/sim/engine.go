// Package sim runs the hour-by-hour dispatch simulation and the
// baseline-vs-smart comparison built on top of it.
package sim

import (
	"fmt"
	"math"

	"microgrid-twin/internal/model"
	"microgrid-twin/internal/profile"
	"microgrid-twin/internal/strategy"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes one strategy over a full day, hour 0 through 23, in a
// single forward pass. The battery carries its SOC across hours; each
// run owns its battery, so trajectories of different runs never interact.
func (e *Engine) Run(prof *profile.Profile, batt *model.Battery, strat strategy.Strategy, cfg model.SimulationConfig) ([]model.HourRecord, error) {
	if prof == nil {
		return nil, fmt.Errorf("profile is nil")
	}
	if batt == nil {
		return nil, fmt.Errorf("battery is nil")
	}
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}

	records := make([]model.HourRecord, 0, 24)

	for hour := 0; hour < 24; hour++ {
		solar := prof.SolarKW[hour]
		load := prof.LoadKW[hour]
		price := prof.PricePerKWh[hour]
		isPeak := cfg.PeakHours.Contains(hour)

		// Direct solar to load first.
		solarUsed := math.Min(solar, load)
		deficit := load - solarUsed
		excess := math.Max(0, solar-load)

		d := strat.Decide(strategy.Context{
			Hour:       hour,
			SolarKW:    solar,
			LoadKW:     load,
			Price:      price,
			IsPeak:     isPeak,
			ExcessKWh:  excess,
			DeficitKWh: deficit,
			Battery:    batt,
		})

		// Charge before discharge: surplus is banked first, then stored
		// energy can cover what solar could not.
		stored := batt.Store(d.ChargeOfferKWh)
		delivered := batt.Deliver(d.DischargeRequestKWh)
		deficit -= delivered

		gridUsage := math.Max(0, deficit)
		cost := gridUsage * price

		records = append(records, model.HourRecord{
			Hour:             hour,
			SolarGeneration:  round2(solar),
			LoadDemand:       round2(load),
			SolarUsed:        round2(solarUsed),
			SolarExcess:      round2(math.Max(0, solar-load-stored)),
			GridUsage:        round2(gridUsage),
			BatteryCharge:    round2(stored),
			BatteryDischarge: round2(delivered),
			BatterySOC:       round1(batt.State.SOC * 100),
			GridPrice:        round3(price),
			HourlyCost:       round3(cost),
			IsPeakHour:       isPeak,
		})
	}

	return records, nil
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
