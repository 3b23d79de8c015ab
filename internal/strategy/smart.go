package strategy

import "microgrid-twin/internal/model"

// Smart implements peak shaving: bank all surplus solar, and discharge
// against unmet load only during the configured peak window, where grid
// energy is most expensive.
type Smart struct{}

func (Smart) Name() string { return "smart" }

func (Smart) Decide(ctx Context) model.Dispatch {
	d := model.Dispatch{ChargeOfferKWh: ctx.ExcessKWh}
	if ctx.IsPeak && ctx.DeficitKWh > 0 {
		d.DischargeRequestKWh = ctx.DeficitKWh
	}
	return d
}
