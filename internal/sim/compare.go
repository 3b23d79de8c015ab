package sim

import (
	"fmt"

	"microgrid-twin/internal/model"
	"microgrid-twin/internal/profile"
	"microgrid-twin/internal/strategy"
)

// Compare derives the day profile once and runs both strategies over
// it, each with its own fresh battery at the configured initial SOC.
// The result is a pure function of the configuration.
func (e *Engine) Compare(cfg model.SimulationConfig) (*model.ComparisonResult, error) {
	prof := profile.Generate(cfg)

	baseline, err := e.runStrategy(prof, strategy.Baseline{}, cfg)
	if err != nil {
		return nil, fmt.Errorf("baseline run: %w", err)
	}
	smart, err := e.runStrategy(prof, strategy.Smart{}, cfg)
	if err != nil {
		return nil, fmt.Errorf("smart run: %w", err)
	}

	return &model.ComparisonResult{
		BaselineData: baseline,
		SmartData:    smart,
		Summary:      summarize(cfg, baseline, smart),
	}, nil
}

func (e *Engine) runStrategy(prof *profile.Profile, strat strategy.Strategy, cfg model.SimulationConfig) ([]model.HourRecord, error) {
	batt, err := model.NewBattery(cfg.BatteryParams(), cfg.InitialSOC)
	if err != nil {
		return nil, fmt.Errorf("battery: %w", err)
	}
	return e.Run(prof, batt, strat, cfg)
}

func summarize(cfg model.SimulationConfig, baseline, smart []model.HourRecord) model.Summary {
	var baseCost, smartCost, baseGrid, smartGrid float64
	for _, r := range baseline {
		baseCost += r.HourlyCost
		baseGrid += r.GridUsage
	}
	for _, r := range smart {
		smartCost += r.HourlyCost
		smartGrid += r.GridUsage
	}

	costSaved := baseCost - smartCost
	gridReduced := baseGrid - smartGrid

	return model.Summary{
		BaselineTotalCost:  round2(baseCost),
		SmartTotalCost:     round2(smartCost),
		CostSaved:          round2(costSaved),
		CostSavedPercent:   round1(percentOf(costSaved, baseCost)),
		BaselineGridUsage:  round2(baseGrid),
		SmartGridUsage:     round2(smartGrid),
		GridReduced:        round2(gridReduced),
		GridReducedPercent: round1(percentOf(gridReduced, baseGrid)),
		BatteryCapacityKWh: cfg.BatteryCapacityKWh,
		PeakPrice:          cfg.PeakPrice,
		OffPeakPrice:       cfg.OffPeakPrice,
	}
}

// percentOf guards the zero-total case so summaries never carry NaN.
func percentOf(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}
