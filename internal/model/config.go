package model

import (
	"errors"
	"fmt"
)

// WeatherMode selects the irradiance scaling for the simulated day.
type WeatherMode string

const (
	WeatherSunny  WeatherMode = "sunny"
	WeatherCloudy WeatherMode = "cloudy"
)

// EfficiencyFactor returns the solar output multiplier for the mode.
// Cloudy days produce half the irradiance of sunny days.
func (m WeatherMode) EfficiencyFactor() float64 {
	if m == WeatherCloudy {
		return 0.5
	}
	return 1.0
}

func (m WeatherMode) Valid() bool {
	return m == WeatherSunny || m == WeatherCloudy
}

// HourWindow is a half-open [Start, End) hour-of-day interval.
type HourWindow struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

func (w HourWindow) Contains(hour int) bool {
	return hour >= w.Start && hour < w.End
}

func (w HourWindow) Validate() error {
	if w.Start < 0 || w.Start > 23 || w.End < 1 || w.End > 24 || w.Start >= w.End {
		return fmt.Errorf("hour window must satisfy 0<=start<end<=24, got [%d,%d)", w.Start, w.End)
	}
	return nil
}

// SimulationConfig holds every parameter of a 24-hour microgrid run.
// Units:
// - BatteryCapacityKWh: kWh
// - SolarCapacityKW: kW (panel nameplate)
// - Efficiency: 0..1 (applied on charge and on discharge)
// - SOC fields: fraction 0..1
// - Prices: currency per kWh
type SimulationConfig struct {
	BatteryCapacityKWh float64
	BatteryEfficiency  float64
	MinSOC             float64
	MaxSOC             float64
	InitialSOC         float64

	SolarCapacityKW float64
	Weather         WeatherMode

	OffPeakPrice  float64
	StandardPrice float64
	PeakPrice     float64

	// PeakHours controls when the smart strategy is willing to discharge.
	// It does not move the pricing tier boundaries, which are fixed.
	PeakHours HourWindow
}

// DefaultConfig returns the stock residential scenario: 10 kWh battery,
// 5 kW solar array, sunny day, 3-tier time-of-use tariff.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		BatteryCapacityKWh: 10.0,
		BatteryEfficiency:  0.95,
		MinSOC:             0.20,
		MaxSOC:             1.00,
		InitialSOC:         0.50,
		SolarCapacityKW:    5.0,
		Weather:            WeatherSunny,
		OffPeakPrice:       4.00,
		StandardPrice:      6.50,
		PeakPrice:          8.50,
		PeakHours:          HourWindow{Start: 18, End: 22},
	}
}

func (c SimulationConfig) Validate() error {
	if c.SolarCapacityKW <= 0 {
		return errors.New("SolarCapacityKW must be > 0")
	}
	if !c.Weather.Valid() {
		return fmt.Errorf("Weather must be %q or %q", WeatherSunny, WeatherCloudy)
	}
	if c.OffPeakPrice <= 0 || c.StandardPrice <= 0 || c.PeakPrice <= 0 {
		return errors.New("all prices must be > 0")
	}
	if err := c.PeakHours.Validate(); err != nil {
		return err
	}
	// Battery bounds are validated by constructing the battery itself.
	_, err := NewBattery(c.BatteryParams(), c.InitialSOC)
	if err != nil {
		return fmt.Errorf("battery config invalid: %w", err)
	}
	return nil
}

func (c SimulationConfig) BatteryParams() BatteryParams {
	return BatteryParams{
		CapacityKWh: c.BatteryCapacityKWh,
		Efficiency:  c.BatteryEfficiency,
		MinSOC:      c.MinSOC,
		MaxSOC:      c.MaxSOC,
	}
}
