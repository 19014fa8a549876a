package status

import "sync/atomic"

// Registry is the central metrics facade for the simulation.
// The scheduler and step engine cache pointers during init and write
// to the atomics directly from the tick path
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}
