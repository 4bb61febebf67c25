package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/status"
)

// CullSystem removes dead enemies and those drifting beyond the cull distance
type CullSystem struct {
	statLive *atomic.Int64
}

func NewCullSystem(reg *status.Registry) *CullSystem {
	return &CullSystem{statLive: reg.Ints.Get("enemy.live")}
}

func (s *CullSystem) Name() string  { return "cull" }
func (s *CullSystem) Priority() int { return parameter.PriorityCull }

// Finalizes keeps the cull running in the tick that ended the run
func (s *CullSystem) Finalizes() {}

func (s *CullSystem) Update(run *engine.Run, dt float64) {
	var removed map[*component.Enemy]bool
	run.Enemies = compact(run.Enemies, func(e *component.Enemy) bool {
		if e.Alive() && e.Pos.Dist(run.Player.Pos) < parameter.EnemyCullDistance {
			return true
		}
		if removed == nil {
			removed = make(map[*component.Enemy]bool)
		}
		removed[e] = true
		return false
	})

	// Drones diving at a removed enemy fall back to idle
	if removed != nil {
		for _, w := range run.Weapons {
			for _, d := range w.Drones {
				if d.Target != nil && removed[d.Target] {
					d.Target = nil
					d.State = component.DroneIdle
				}
			}
		}
	}
	s.statLive.Store(int64(len(run.Enemies)))
}
