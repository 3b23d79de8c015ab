package config

import (
	"errors"
	"fmt"
	"os"

	"microgrid-twin/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML). Zero-valued fields fall
// back to the stock defaults, so scenario files only need to name what
// they change.
type Config struct {
	Battery BatteryConfig `yaml:"battery"`
	Solar   SolarConfig   `yaml:"solar"`
	Tariff  TariffConfig  `yaml:"tariff"`
}

type BatteryConfig struct {
	CapacityKWh float64 `yaml:"capacity_kwh"`
	Efficiency  float64 `yaml:"efficiency"`
	MinSOC      float64 `yaml:"min_soc"`
	MaxSOC      float64 `yaml:"max_soc"`
	InitialSOC  float64 `yaml:"initial_soc"`
}

type SolarConfig struct {
	CapacityKW float64 `yaml:"capacity_kw"`
	Weather    string  `yaml:"weather"`
}

type TariffConfig struct {
	OffPeakPrice  float64           `yaml:"off_peak_price"`
	StandardPrice float64           `yaml:"standard_price"`
	PeakPrice     float64           `yaml:"peak_price"`
	PeakHours     *model.HourWindow `yaml:"peak_hours"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads a scenario file without validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate by constructing the simulation config.
	if err := c.ToSimulation().Validate(); err != nil {
		return fmt.Errorf("scenario invalid: %w", err)
	}
	return nil
}

// ToSimulation overlays the scenario onto the stock defaults.
func (c *Config) ToSimulation() model.SimulationConfig {
	sim := model.DefaultConfig()
	if c == nil {
		return sim
	}
	if c.Battery.CapacityKWh != 0 {
		sim.BatteryCapacityKWh = c.Battery.CapacityKWh
	}
	if c.Battery.Efficiency != 0 {
		sim.BatteryEfficiency = c.Battery.Efficiency
	}
	if c.Battery.MinSOC != 0 {
		sim.MinSOC = c.Battery.MinSOC
	}
	if c.Battery.MaxSOC != 0 {
		sim.MaxSOC = c.Battery.MaxSOC
	}
	if c.Battery.InitialSOC != 0 {
		sim.InitialSOC = c.Battery.InitialSOC
	}
	if c.Solar.CapacityKW != 0 {
		sim.SolarCapacityKW = c.Solar.CapacityKW
	}
	if c.Solar.Weather != "" {
		sim.Weather = model.WeatherMode(c.Solar.Weather)
	}
	if c.Tariff.OffPeakPrice != 0 {
		sim.OffPeakPrice = c.Tariff.OffPeakPrice
	}
	if c.Tariff.StandardPrice != 0 {
		sim.StandardPrice = c.Tariff.StandardPrice
	}
	if c.Tariff.PeakPrice != 0 {
		sim.PeakPrice = c.Tariff.PeakPrice
	}
	if c.Tariff.PeakHours != nil {
		sim.PeakHours = *c.Tariff.PeakHours
	}
	return sim
}
