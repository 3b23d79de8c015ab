package strategy

import "microgrid-twin/internal/model"

// Context is everything a strategy may look at for one hour.
// ExcessKWh and DeficitKWh are the post-direct-use solar surplus and
// unmet load for the hour.
type Context struct {
	Hour    int
	SolarKW float64
	LoadKW  float64
	Price   float64
	IsPeak  bool

	ExcessKWh  float64
	DeficitKWh float64

	Battery *model.Battery
}

type Strategy interface {
	Name() string
	Decide(ctx Context) model.Dispatch
}
