package system

import (
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
)

// PlayerSystem advances run time and applies movement, regen, shield and plate timers
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem { return &PlayerSystem{} }

func (s *PlayerSystem) Name() string  { return "player" }
func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerSystem) Update(run *engine.Run, dt float64) {
	if run.Shake.Time > 0 {
		run.Shake.Time = max(0, run.Shake.Time-dt)
	}
	run.Time += dt

	p := &run.Player
	move := run.Move.ClampLen(1)
	p.Vel = move.Scale(p.MoveSpeed)
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	if !move.IsZero() {
		p.Dir = move.Normalize()
	}

	p.Heal(p.Regen * dt)

	if p.ShieldDelay > 0 {
		p.ShieldDelay -= dt
	}
	if p.ShieldDelay <= 0 && p.ShieldMax > 0 {
		p.Shield = min(p.ShieldMax, p.Shield+dt*p.ShieldMax*parameter.ShieldRechargeRate)
	}

	if ov := &run.Overlock; ov.PlateArmed && ov.PlateTimer > 0 {
		ov.PlateTimer -= dt
		if ov.PlateTimer <= 0 {
			ov.PlateReady = true
		}
	}
}

// PlateRadius is the Mirror Plate ring radius for the run's area aggregate
func PlateRadius(run *engine.Run) float64 {
	return parameter.PlateRadiusBase + run.Totals.AreaPct*parameter.PlateRadiusPerArea
}
