package system

import (
	"math"

	"github.com/lixenwraith/stardrift/combat"
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
)

// beamBehavior refreshes the beam descriptor from levels and aggregates
type beamBehavior struct{}

func (beamBehavior) Update(run *engine.Run, w *component.Weapon, p Power, dt float64) {
	w.Beam = &component.Beam{
		Range: p.Base.Range * p.AreaMult,
		DPS:   p.Scaled(p.Base.DPS) * p.DamageMult,
		Ring:  w.Has(component.FlagRing),
	}
	if w.Beam.Ring {
		w.RingSpeed = parameter.RingSpeedBase + run.Totals.MoveSpeed*parameter.RingSpeedPerMove
	}
}

// BeamSystem applies continuous beam damage in a forward cone or along the plasma ring
type BeamSystem struct{}

func NewBeamSystem() *BeamSystem { return &BeamSystem{} }

func (s *BeamSystem) Name() string  { return "beam" }
func (s *BeamSystem) Priority() int { return parameter.PriorityBeam }

func (s *BeamSystem) Update(run *engine.Run, dt float64) {
	for _, w := range run.Weapons {
		if w.ID != content.CuttingBeam || w.Beam == nil {
			continue
		}
		if w.Beam.Ring {
			s.ring(run, w, dt)
		} else {
			s.cone(run, w, dt)
		}
	}
}

func (s *BeamSystem) ring(run *engine.Run, w *component.Weapon, dt float64) {
	w.RingAngle += dt * w.RingSpeed
	radius := RingRadius(run)
	for _, e := range run.Enemies {
		if !e.Alive() {
			continue
		}
		d := e.Pos.Dist(run.Player.Pos)
		if math.Abs(d-radius) < e.Radius+parameter.RingContactPadding {
			combat.ApplyDamage(run, e, w.Beam.DPS*dt, w, combat.Extras{})
		}
	}
}

func (s *BeamSystem) cone(run *engine.Run, w *component.Weapon, dt float64) {
	forward := run.Player.Dir
	width := BeamWidth(run)
	var extras combat.Extras
	if w.Has(component.FlagTag) {
		extras.Mark = parameter.MarkValue
	}
	for _, e := range run.Enemies {
		if !e.Alive() {
			continue
		}
		rel := e.Pos.Sub(run.Player.Pos)
		proj := rel.Dot(forward)
		perp := math.Abs(rel.Cross(forward))
		if proj > 0 && proj < w.Beam.Range && perp < width {
			combat.ApplyDamage(run, e, w.Beam.DPS*dt, w, extras)
		}
	}
}

// RingRadius is the plasma ring radius for the run's area aggregate
func RingRadius(run *engine.Run) float64 {
	return parameter.RingRadiusBase + run.Totals.AreaPct*parameter.RingRadiusPerArea
}

// BeamWidth is the cone half-width for the run's area aggregate
func BeamWidth(run *engine.Run) float64 {
	return parameter.BeamWidthBase + run.Totals.AreaPct*parameter.BeamWidthPerArea
}
