package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microgrid-twin/internal/model"
	"microgrid-twin/internal/profile"
	"microgrid-twin/internal/strategy"
)

func runStrategyT(t *testing.T, cfg model.SimulationConfig, strat strategy.Strategy) []model.HourRecord {
	t.Helper()
	batt, err := model.NewBattery(cfg.BatteryParams(), cfg.InitialSOC)
	require.NoError(t, err)
	records, err := New().Run(profile.Generate(cfg), batt, strat, cfg)
	require.NoError(t, err)
	return records
}

func TestRunProducesOrderedDay(t *testing.T) {
	cfg := model.DefaultConfig()
	records := runStrategyT(t, cfg, strategy.Smart{})
	require.Len(t, records, 24)
	for h, r := range records {
		assert.Equal(t, h, r.Hour)
		assert.Equal(t, cfg.PeakHours.Contains(h), r.IsPeakHour)
	}
}

func TestRunRejectsNilInputs(t *testing.T) {
	cfg := model.DefaultConfig()
	prof := profile.Generate(cfg)
	batt, err := model.NewBattery(cfg.BatteryParams(), cfg.InitialSOC)
	require.NoError(t, err)

	_, err = New().Run(nil, batt, strategy.Smart{}, cfg)
	assert.Error(t, err)
	_, err = New().Run(prof, nil, strategy.Smart{}, cfg)
	assert.Error(t, err)
	_, err = New().Run(prof, batt, nil, cfg)
	assert.Error(t, err)
}

func TestBaselineSOCStatic(t *testing.T) {
	cfg := model.DefaultConfig()
	records := runStrategyT(t, cfg, strategy.Baseline{})
	for _, r := range records {
		assert.Equal(t, cfg.InitialSOC*100, r.BatterySOC, "hour %d", r.Hour)
		assert.Zero(t, r.BatteryCharge)
		assert.Zero(t, r.BatteryDischarge)
	}
}

func TestBaselineEnergyAccounting(t *testing.T) {
	records := runStrategyT(t, model.DefaultConfig(), strategy.Baseline{})
	for _, r := range records {
		assert.LessOrEqual(t, r.SolarUsed+r.SolarExcess, r.SolarGeneration+0.02, "hour %d", r.Hour)
		assert.InDelta(t, r.LoadDemand, r.SolarUsed+r.GridUsage, 0.03, "hour %d", r.Hour)
	}
}

func TestSmartSOCWithinBounds(t *testing.T) {
	cfg := model.DefaultConfig()
	records := runStrategyT(t, cfg, strategy.Smart{})
	for _, r := range records {
		assert.GreaterOrEqual(t, r.BatterySOC, cfg.MinSOC*100-0.05, "hour %d", r.Hour)
		assert.LessOrEqual(t, r.BatterySOC, cfg.MaxSOC*100+0.05, "hour %d", r.Hour)
	}
}

func TestSmartEnergyConservation(t *testing.T) {
	records := runStrategyT(t, model.DefaultConfig(), strategy.Smart{})
	for _, r := range records {
		// Load is covered by direct solar, grid and battery discharge.
		assert.InDelta(t, r.LoadDemand, r.SolarUsed+r.GridUsage+r.BatteryDischarge, 0.03, "hour %d", r.Hour)
		assert.GreaterOrEqual(t, r.GridUsage, 0.0)
		assert.GreaterOrEqual(t, r.SolarExcess, 0.0)
	}
}

func TestSmartExcessNetOfCapture(t *testing.T) {
	records := runStrategyT(t, model.DefaultConfig(), strategy.Smart{})
	for _, r := range records {
		if r.BatteryCharge > 0 {
			gross := r.SolarGeneration - r.LoadDemand
			assert.InDelta(t, gross-r.BatteryCharge, r.SolarExcess, 0.03,
				"hour %d reported excess must be net of banked energy", r.Hour)
		}
	}
}

func TestSmartDischargesOnlyInPeakWindow(t *testing.T) {
	cfg := model.DefaultConfig()
	records := runStrategyT(t, cfg, strategy.Smart{})
	for _, r := range records {
		if !r.IsPeakHour {
			assert.Zero(t, r.BatteryDischarge, "hour %d", r.Hour)
		}
	}
}
