package engine

// System is one step of the per-tick pipeline
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(run *Run, dt float64)
}

// Finalizer is a System that still runs in the tick the run ended
type Finalizer interface {
	System
	Finalizes()
}
