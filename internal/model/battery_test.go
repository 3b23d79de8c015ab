package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() BatteryParams {
	return BatteryParams{
		CapacityKWh: 10,
		Efficiency:  0.95,
		MinSOC:      0.20,
		MaxSOC:      1.00,
	}
}

func TestNewBatteryValidation(t *testing.T) {
	_, err := NewBattery(validParams(), 0.5)
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*BatteryParams)
		soc    float64
	}{
		{"zero capacity", func(p *BatteryParams) { p.CapacityKWh = 0 }, 0.5},
		{"negative capacity", func(p *BatteryParams) { p.CapacityKWh = -1 }, 0.5},
		{"zero efficiency", func(p *BatteryParams) { p.Efficiency = 0 }, 0.5},
		{"efficiency above one", func(p *BatteryParams) { p.Efficiency = 1.1 }, 0.5},
		{"min above max", func(p *BatteryParams) { p.MinSOC = 0.9; p.MaxSOC = 0.3 }, 0.5},
		{"initial below min", nil, 0.1},
		{"initial above max", nil, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			if tc.mutate != nil {
				tc.mutate(&p)
			}
			_, err := NewBattery(p, tc.soc)
			assert.Error(t, err)
		})
	}
}

func TestStoreAppliesChargeEfficiency(t *testing.T) {
	b, err := NewBattery(validParams(), 0.5)
	require.NoError(t, err)

	stored := b.Store(2.0)
	assert.InDelta(t, 2.0*0.95, stored, 1e-9)
	assert.InDelta(t, 0.5+stored/10, b.State.SOC, 1e-9)
}

func TestStoreClipsAtMaxSOC(t *testing.T) {
	b, err := NewBattery(validParams(), 0.95)
	require.NoError(t, err)

	// Headroom is 0.5 kWh; a large offer only fills that.
	stored := b.Store(100)
	assert.InDelta(t, 0.5, stored, 1e-9)
	assert.InDelta(t, 1.0, b.State.SOC, 1e-9)

	assert.Zero(t, b.Store(1.0), "full battery accepts nothing")
}

func TestDeliverAppliesDischargeEfficiency(t *testing.T) {
	b, err := NewBattery(validParams(), 0.5)
	require.NoError(t, err)

	delivered := b.Deliver(1.0)
	assert.InDelta(t, 1.0, delivered, 1e-9)
	// Delivering 1 kWh withdraws 1/0.95 kWh of stored energy.
	assert.InDelta(t, 0.5-(1.0/0.95)/10, b.State.SOC, 1e-9)
}

func TestDeliverClipsAtMinSOC(t *testing.T) {
	b, err := NewBattery(validParams(), 0.25)
	require.NoError(t, err)

	// Only 0.5 kWh above the floor; at the terminals that is 0.5*0.95.
	delivered := b.Deliver(100)
	assert.InDelta(t, 0.5*0.95, delivered, 1e-9)
	assert.InDelta(t, 0.20, b.State.SOC, 1e-9)

	assert.Zero(t, b.Deliver(1.0), "empty battery delivers nothing")
}

func TestRoundTripLoss(t *testing.T) {
	b, err := NewBattery(validParams(), 0.5)
	require.NoError(t, err)

	stored := b.Store(1.0)
	delivered := b.Deliver(stored * b.Params.Efficiency)
	// One full cycle retains Efficiency^2 of the input.
	assert.InDelta(t, 0.95*0.95, delivered, 1e-9)
	assert.InDelta(t, 0.5, b.State.SOC, 1e-9)
}

func TestDegenerateParamsAreNoOps(t *testing.T) {
	// Construct directly: such configs are rejected by NewBattery but the
	// flows must still be defined, not faulting.
	for _, b := range []*Battery{
		{Params: BatteryParams{CapacityKWh: 0, Efficiency: 0.95, MaxSOC: 1}, State: BatteryState{SOC: 0.5}},
		{Params: BatteryParams{CapacityKWh: 10, Efficiency: 0, MaxSOC: 1}, State: BatteryState{SOC: 0.5}},
	} {
		assert.Zero(t, b.Store(5))
		assert.Zero(t, b.Deliver(5))
		assert.Equal(t, 0.5, b.State.SOC, "SOC must be untouched")
	}
}

func TestNegativeRequestsIgnored(t *testing.T) {
	b, err := NewBattery(validParams(), 0.5)
	require.NoError(t, err)
	assert.Zero(t, b.Store(-1))
	assert.Zero(t, b.Deliver(-1))
	assert.Equal(t, 0.5, b.State.SOC)
}
