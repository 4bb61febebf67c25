package system

import (
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
)

// EffectSystem ages visual effects; vacuum effects drag every orb toward the player
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem { return &EffectSystem{} }

func (s *EffectSystem) Name() string  { return "effect" }
func (s *EffectSystem) Priority() int { return parameter.PriorityEffect }

func (s *EffectSystem) Update(run *engine.Run, dt float64) {
	for _, fx := range run.Effects {
		fx.Life -= dt
		if fx.Kind != component.EffectVacuum {
			continue
		}
		for _, o := range run.Orbs {
			o.Pos = o.Pos.MoveToward(run.Player.Pos, parameter.VacuumPullSpeed*dt)
		}
	}

	run.Effects = compact(run.Effects, func(fx *component.Effect) bool { return fx.Life > 0 })
}
