package model

import "errors"

// BatteryParams defines the physical parameters of the battery.
// Units:
// - CapacityKWh: kWh
// - Efficiency: 0..1, applied once on charge and once on discharge
//   (round-trip retention = Efficiency^2)
// - SOC bounds: fraction 0..1
type BatteryParams struct {
	CapacityKWh float64
	Efficiency  float64
	MinSOC      float64
	MaxSOC      float64
}

// BatteryState captures mutable state.
type BatteryState struct {
	// SOC is the state of charge as a fraction [0,1].
	SOC float64
}

// Battery is a convenience wrapper bundling params + state.
type Battery struct {
	Params BatteryParams
	State  BatteryState
}

func NewBattery(params BatteryParams, initialSOC float64) (*Battery, error) {
	b := &Battery{
		Params: params,
		State:  BatteryState{SOC: initialSOC},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Battery) Validate() error {
	p := b.Params
	if p.CapacityKWh <= 0 {
		return errors.New("CapacityKWh must be > 0")
	}
	if p.Efficiency <= 0 || p.Efficiency > 1 {
		return errors.New("Efficiency must be in (0, 1]")
	}
	if p.MinSOC < 0 || p.MaxSOC > 1 || p.MinSOC >= p.MaxSOC {
		return errors.New("MinSOC/MaxSOC must satisfy 0<=MinSOC<MaxSOC<=1")
	}
	if b.State.SOC < p.MinSOC || b.State.SOC > p.MaxSOC {
		return errors.New("initial SOC must be within [MinSOC, MaxSOC]")
	}
	return nil
}

// Store offers surplus energy to the battery and returns the amount
// actually banked (after the charge-side efficiency loss). SOC rises by
// the banked energy and is clamped to MaxSOC.
//
// Degenerate parameters (non-positive capacity or efficiency) make this
// a no-op rather than a fault.
func (b *Battery) Store(offeredKWh float64) float64 {
	p := b.Params
	if offeredKWh <= 0 || p.CapacityKWh <= 0 || p.Efficiency <= 0 {
		return 0
	}
	if b.State.SOC >= p.MaxSOC {
		return 0
	}
	headroomKWh := (p.MaxSOC - b.State.SOC) * p.CapacityKWh
	storedKWh := offeredKWh * p.Efficiency
	if storedKWh > headroomKWh {
		storedKWh = headroomKWh
	}
	b.State.SOC += storedKWh / p.CapacityKWh
	if b.State.SOC > p.MaxSOC {
		b.State.SOC = p.MaxSOC
	}
	return storedKWh
}

// Deliver requests energy from the battery and returns the amount
// actually delivered to the load. Delivering d kWh withdraws d/Efficiency
// from storage; SOC is clamped to MinSOC.
//
// Same degenerate-parameter guarantee as Store.
func (b *Battery) Deliver(requestedKWh float64) float64 {
	p := b.Params
	if requestedKWh <= 0 || p.CapacityKWh <= 0 || p.Efficiency <= 0 {
		return 0
	}
	if b.State.SOC <= p.MinSOC {
		return 0
	}
	availableKWh := (b.State.SOC - p.MinSOC) * p.CapacityKWh
	deliveredKWh := requestedKWh
	if deliveredKWh > availableKWh*p.Efficiency {
		deliveredKWh = availableKWh * p.Efficiency
	}
	withdrawnKWh := deliveredKWh / p.Efficiency
	b.State.SOC -= withdrawnKWh / p.CapacityKWh
	if b.State.SOC < p.MinSOC {
		b.State.SOC = p.MinSOC
	}
	return deliveredKWh
}
