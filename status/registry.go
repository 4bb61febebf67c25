// Package status holds live counters published by the simulation and read by the HUD and the host
package status

import (
	"math"
	"sync/atomic"
)

// Registry groups counters by value type
// Systems cache pointers at construction and write the atomics directly
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot flattens every counter into log fields
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any)
	for _, k := range r.Bools.Keys() {
		out[k] = r.Bools.Get(k).Load()
	}
	for _, k := range r.Ints.Keys() {
		out[k] = r.Ints.Get(k).Load()
	}
	for _, k := range r.Floats.Keys() {
		out[k] = r.Floats.Get(k).Get()
	}
	return out
}

// AtomicFloat is a float64 gauge kept as IEEE-754 bits, the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *AtomicFloat) Get() float64  { return math.Float64frombits(f.bits.Load()) }
