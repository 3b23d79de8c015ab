package strategy

import "microgrid-twin/internal/model"

// Baseline leaves the battery inert: solar serves load directly, the
// grid covers any deficit, surplus solar is wasted.
type Baseline struct{}

func (Baseline) Name() string { return "baseline" }

func (Baseline) Decide(ctx Context) model.Dispatch {
	return model.Dispatch{}
}
