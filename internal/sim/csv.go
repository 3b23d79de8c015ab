package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"microgrid-twin/internal/model"
)

func WriteLedgerCSV(path string, records []model.HourRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"solar_generation_kw",
		"load_demand_kw",
		"solar_used_kwh",
		"solar_excess_kwh",
		"grid_usage_kwh",
		"battery_charge_kwh",
		"battery_discharge_kwh",
		"battery_soc_pct",
		"action",
		"grid_price",
		"hourly_cost",
		"is_peak_hour",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Hour),
			fmtFloat(r.SolarGeneration),
			fmtFloat(r.LoadDemand),
			fmtFloat(r.SolarUsed),
			fmtFloat(r.SolarExcess),
			fmtFloat(r.GridUsage),
			fmtFloat(r.BatteryCharge),
			fmtFloat(r.BatteryDischarge),
			fmtFloat(r.BatterySOC),
			string(model.ActionFromFlows(r.BatteryCharge, r.BatteryDischarge)),
			fmtFloat(r.GridPrice),
			fmtFloat(r.HourlyCost),
			strconv.FormatBool(r.IsPeakHour),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
