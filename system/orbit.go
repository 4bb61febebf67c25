package system

import (
	"github.com/lixenwraith/stardrift/combat"
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/physics"
)

// orbitBehavior recomputes body count, radius and speed every tick
type orbitBehavior struct{}

func (orbitBehavior) Update(run *engine.Run, w *component.Weapon, p Power, dt float64) {
	base := p.Base.Orbs + p.ProjBonus
	speed := p.Base.OrbitSpeed
	if w.Has(component.FlagTriple) {
		w.OrbCount = base * parameter.OrbTripleMult
		speed *= parameter.OrbTripleMult
	} else {
		w.OrbCount = base + p.Level/parameter.OrbLevelDivisor
	}
	w.OrbitRadius = p.Base.OrbitRadius * p.AreaMult
	w.OrbitSpeed = speed
}

// OrbitSystem spins orbit bodies and applies their contact damage
// Weapons carrying the plate variant do not orbit
type OrbitSystem struct{}

func NewOrbitSystem() *OrbitSystem { return &OrbitSystem{} }

func (s *OrbitSystem) Name() string  { return "orbit" }
func (s *OrbitSystem) Priority() int { return parameter.PriorityOrbit }

func (s *OrbitSystem) Update(run *engine.Run, dt float64) {
	for _, w := range run.Weapons {
		if w.ID != content.OrbitOrbs || w.Has(component.FlagPlate) {
			continue
		}
		p, ok := ResolvePower(run, w)
		if !ok {
			continue
		}

		count := w.OrbCount
		if count == 0 {
			count = p.Base.Orbs
		}
		radius := w.OrbitRadius
		if radius == 0 {
			radius = p.Base.OrbitRadius
		}
		speed := w.OrbitSpeed
		if speed == 0 {
			speed = 1
		}
		w.OrbitAngle += dt * speed * parameter.OrbSpinFactor

		dmg := p.Base.DPSPerOrb * p.DamageMult * dt
		for i := 0; i < count; i++ {
			body := physics.OrbitPoint(run.Player.Pos, radius, physics.SpreadAngle(w.OrbitAngle, i, count))
			for _, e := range run.Enemies {
				if !e.Alive() {
					continue
				}
				if e.Pos.Dist(body) < e.Radius+parameter.OrbContactPadding {
					combat.ApplyDamage(run, e, dmg, w, combat.Extras{})
				}
			}
		}
	}
}
