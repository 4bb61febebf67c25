package system

import (
	"github.com/lixenwraith/stardrift/combat"
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/physics"
	"github.com/lixenwraith/stardrift/vmath"
)

// wellBehavior spawns gravity wells, or vacuum pulses under the prospector variant
type wellBehavior struct{}

func (wellBehavior) Update(run *engine.Run, w *component.Weapon, p Power, dt float64) {
	if w.Cooldown > 0 {
		return
	}

	cd := p.Base.Cooldown
	if cd <= 0 {
		cd = parameter.WellCooldownBase
	}
	cd *= p.CooldownMult

	if w.Has(component.FlagVacuum) {
		run.Effects = append(run.Effects, &component.Effect{
			Kind: component.EffectVacuum,
			Life: parameter.VacuumLife,
			From: run.Player.Pos,
		})
		w.Cooldown = cd * parameter.VacuumCooldownMult
		return
	}

	offset := vmath.Vec2{
		X: run.Rand.Range(-parameter.WellScatter, parameter.WellScatter),
		Y: run.Rand.Range(-parameter.WellScatter, parameter.WellScatter),
	}
	run.Wells = append(run.Wells, &component.Well{
		Pos:    run.Player.Pos.Add(offset),
		Radius: p.Base.Radius * p.AreaMult,
		Life:   p.Base.Duration,
		DPS:    p.Scaled(p.Base.DPS) * p.DamageMult,
		Burst:  w.Has(component.FlagBurst),
		Source: w,
	})
	w.Cooldown = cd
}

// WellSystem pulls and damages enemies inside wells, bursting on expiry
type WellSystem struct{}

func NewWellSystem() *WellSystem { return &WellSystem{} }

func (s *WellSystem) Name() string  { return "well" }
func (s *WellSystem) Priority() int { return parameter.PriorityWell }

func (s *WellSystem) Update(run *engine.Run, dt float64) {
	extras := combat.Extras{InDrainZone: run.Overlock.DrainBoost > 0}

	for _, wl := range run.Wells {
		wl.Life -= dt

		run.EnemiesWithin(wl.Pos, wl.Radius, func(e *component.Enemy) {
			e.Pos = e.Pos.Add(physics.Pull(e.Pos, wl.Pos, wl.Radius, parameter.WellPullStrength, dt))
			combat.ApplyDamage(run, e, wl.DPS*dt, wl.Source, extras)
		})

		if wl.Life <= 0 && wl.Burst {
			run.EnemiesWithin(wl.Pos, wl.Radius, func(e *component.Enemy) {
				combat.ApplyDamage(run, e, wl.DPS*parameter.WellBurstMult, wl.Source, combat.Extras{})
			})
		}
	}

	run.Wells = compact(run.Wells, func(wl *component.Well) bool { return wl.Life > 0 })
}
