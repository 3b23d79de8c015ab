package main

import (
	"fmt"
	"os"

	"microgrid-twin/internal/analysis"
	"microgrid-twin/internal/config"
	"microgrid-twin/internal/model"
	"microgrid-twin/internal/sim"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	weather     string
	batteryKWh  float64
	solarKW     float64
	initialSOC  float64
	outBaseline string
	outSmart    string
	showMetrics bool
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "microgrid-twin",
		Short: "Simulate a 24-hour microgrid day and compare dispatch strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig()
			if err != nil {
				return err
			}

			engine := sim.New()
			result, err := engine.Compare(cfg)
			if err != nil {
				return fmt.Errorf("run comparison: %w", err)
			}

			printSummary(result.Summary)
			if showMetrics {
				printMetrics(analysis.CompareLedgers(result))
			}

			if outBaseline != "" {
				if err := sim.WriteLedgerCSV(outBaseline, result.BaselineData); err != nil {
					return fmt.Errorf("write baseline ledger: %w", err)
				}
				log.Info().Str("path", outBaseline).Msg("wrote baseline ledger")
			}
			if outSmart != "" {
				if err := sim.WriteLedgerCSV(outSmart, result.SmartData); err != nil {
					return fmt.Errorf("write smart ledger: %w", err)
				}
				log.Info().Str("path", outSmart).Msg("wrote smart ledger")
			}
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to YAML scenario (optional)")
	root.Flags().StringVar(&weather, "weather", "", "weather override: sunny or cloudy")
	root.Flags().Float64Var(&batteryKWh, "battery-kwh", 0, "battery capacity override (kWh)")
	root.Flags().Float64Var(&solarKW, "solar-kw", 0, "solar capacity override (kW)")
	root.Flags().Float64Var(&initialSOC, "initial-soc", 0, "initial state of charge override (0-1)")
	root.Flags().StringVar(&outBaseline, "out-baseline", "", "write baseline ledger CSV to path")
	root.Flags().StringVar(&outSmart, "out-smart", "", "write smart ledger CSV to path")
	root.Flags().BoolVar(&showMetrics, "metrics", false, "print per-strategy ledger metrics")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func resolveConfig() (model.SimulationConfig, error) {
	cfg := model.DefaultConfig()
	if cfgPath != "" {
		scenario, err := config.Load(cfgPath)
		if err != nil {
			return cfg, fmt.Errorf("load scenario: %w", err)
		}
		cfg = scenario.ToSimulation()
	}
	if weather != "" {
		cfg.Weather = model.WeatherMode(weather)
	}
	if batteryKWh != 0 {
		cfg.BatteryCapacityKWh = batteryKWh
	}
	if solarKW != 0 {
		cfg.SolarCapacityKW = solarKW
	}
	if initialSOC != 0 {
		cfg.InitialSOC = initialSOC
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func printSummary(s model.Summary) {
	fmt.Println("=== 24h Microgrid Comparison ===")
	fmt.Printf("Battery capacity:   %.1f kWh\n", s.BatteryCapacityKWh)
	fmt.Printf("Baseline cost:      %.2f\n", s.BaselineTotalCost)
	fmt.Printf("Smart cost:         %.2f\n", s.SmartTotalCost)
	fmt.Printf("Cost saved:         %.2f (%.1f%%)\n", s.CostSaved, s.CostSavedPercent)
	fmt.Printf("Baseline grid use:  %.2f kWh\n", s.BaselineGridUsage)
	fmt.Printf("Smart grid use:     %.2f kWh\n", s.SmartGridUsage)
	fmt.Printf("Grid reduced:       %.2f kWh (%.1f%%)\n", s.GridReduced, s.GridReducedPercent)
}

func printMetrics(metrics []analysis.LedgerMetrics) {
	for _, m := range metrics {
		fmt.Printf("\n--- %s ---\n", m.Strategy)
		fmt.Printf("Self-consumption:   %.1f%%\n", m.SelfConsumption*100)
		fmt.Printf("Solar share of load: %.1f%%\n", m.SolarFraction*100)
		fmt.Printf("Peak-window grid:   %.2f kWh\n", m.PeakGridKWh)
		fmt.Printf("Mean grid draw:     %.3f kW (max %.2f)\n", m.MeanGridDrawKW, m.MaxGridDrawKW)
		fmt.Printf("Battery throughput: %.2f kWh over %d discharge hours\n", m.ThroughputKWh, m.HoursOnBattery)
		fmt.Printf("Wasted solar:       %.2f kWh\n", m.WastedSolarKWh)
	}
}
