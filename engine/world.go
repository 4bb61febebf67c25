package engine

// World owns the ordered system pipeline that advances a Run
type World struct {
	systems []System
}

func NewWorld() *World {
	return &World{systems: make([]System, 0)}
}

// AddSystem adds a system and keeps the pipeline sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion keeps registration order stable among equal priorities
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of the pipeline in execution order
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs every system once
// Once the run ends mid-tick only Finalizers run for the rest of the tick
func (w *World) Update(run *Run, dt float64) {
	for _, system := range w.systems {
		if !run.Active {
			if _, ok := system.(Finalizer); !ok {
				continue
			}
		}
		system.Update(run, dt)
	}
}
