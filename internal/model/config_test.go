package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsBadFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SimulationConfig)
	}{
		{"zero solar", func(c *SimulationConfig) { c.SolarCapacityKW = 0 }},
		{"bad weather", func(c *SimulationConfig) { c.Weather = "stormy" }},
		{"zero price", func(c *SimulationConfig) { c.StandardPrice = 0 }},
		{"inverted peak window", func(c *SimulationConfig) { c.PeakHours = HourWindow{Start: 22, End: 18} }},
		{"peak window out of range", func(c *SimulationConfig) { c.PeakHours = HourWindow{Start: -1, End: 5} }},
		{"zero battery", func(c *SimulationConfig) { c.BatteryCapacityKWh = 0 }},
		{"initial soc below floor", func(c *SimulationConfig) { c.InitialSOC = 0.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestHourWindowContains(t *testing.T) {
	w := HourWindow{Start: 18, End: 22}
	assert.False(t, w.Contains(17))
	assert.True(t, w.Contains(18))
	assert.True(t, w.Contains(21))
	assert.False(t, w.Contains(22), "window is half-open")
}

func TestWeatherEfficiencyFactor(t *testing.T) {
	assert.Equal(t, 1.0, WeatherSunny.EfficiencyFactor())
	assert.Equal(t, 0.5, WeatherCloudy.EfficiencyFactor())
}
