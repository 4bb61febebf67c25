package system

import (
	"github.com/lixenwraith/stardrift/combat"
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
)

// pulseBehavior emits a damage ring or, under Med Fields, a heal zone
type pulseBehavior struct{}

func (pulseBehavior) Update(run *engine.Run, w *component.Weapon, p Power, dt float64) {
	if w.Cooldown > 0 {
		return
	}

	radius := p.Base.Radius * p.AreaMult
	if w.Has(component.FlagMedField) {
		run.Pulses = append(run.Pulses, &component.Pulse{
			Kind:   component.PulseHeal,
			Pos:    run.Player.Pos,
			Radius: radius * parameter.MedFieldScale,
			Life:   parameter.MedFieldLife,
			Source: w,
		})
	} else {
		damage := p.Scaled(p.Base.Damage) * p.DamageMult
		if w.Has(component.FlagWeak) {
			damage *= parameter.PulseWeakMult
		}
		var slow float64
		if w.Has(component.FlagFrost) {
			slow = parameter.SlowDuration
		}
		run.Pulses = append(run.Pulses, &component.Pulse{
			Kind:   component.PulseDamage,
			Pos:    run.Player.Pos,
			Radius: radius,
			Damage: damage,
			Slow:   slow,
			Life:   parameter.PulseLife,
			Source: w,
		})
	}

	w.Cooldown = p.Base.Cooldown * p.CooldownMult
}

// PulseSystem resolves damage pulses once and ticks heal zones
type PulseSystem struct{}

func NewPulseSystem() *PulseSystem { return &PulseSystem{} }

func (s *PulseSystem) Name() string  { return "pulse" }
func (s *PulseSystem) Priority() int { return parameter.PriorityPulse }

func (s *PulseSystem) Update(run *engine.Run, dt float64) {
	for _, pl := range run.Pulses {
		pl.Life -= dt

		switch pl.Kind {
		case component.PulseHeal:
			if run.Player.Pos.Dist(pl.Pos) < pl.Radius {
				run.Player.Heal(dt * parameter.MedFieldHealHPS)
			}
		case component.PulseDamage:
			if pl.Fired {
				continue
			}
			pl.Fired = true
			run.EnemiesWithin(pl.Pos, pl.Radius, func(e *component.Enemy) {
				combat.ApplyDamage(run, e, pl.Damage, pl.Source, combat.Extras{})
				if pl.Slow > 0 {
					e.Slow = max(e.Slow, pl.Slow)
				}
			})
		}
	}

	run.Pulses = compact(run.Pulses, func(pl *component.Pulse) bool { return pl.Life > 0 })
}
