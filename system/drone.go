package system

import (
	"github.com/lixenwraith/stardrift/combat"
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/physics"
)

// droneBehavior sizes the escort pool and runs variant side duties
type droneBehavior struct{}

func (droneBehavior) Update(run *engine.Run, w *component.Weapon, p Power, dt float64) {
	count := p.Base.Drones + p.ProjBonus + p.LevelBonus(parameter.DroneBonusLevel)
	for len(w.Drones) < count {
		w.Drones = append(w.Drones, &component.Drone{
			Pos:   run.Player.Pos,
			State: component.DroneIdle,
			Angle: physics.SpreadAngle(0, len(w.Drones), count),
			HP:    parameter.DroneHP,
		})
	}
	if len(w.Drones) > count {
		clear(w.Drones[count:])
		w.Drones = w.Drones[:count]
	}

	for _, d := range w.Drones {
		d.Cooldown = max(0, d.Cooldown-dt)

		if w.Has(component.FlagHealBeam) {
			run.Player.Heal(dt * parameter.DroneHealRate)
		}

		if w.Has(component.FlagGun) && d.Cooldown <= 0 {
			target := run.NearestEnemy(d.Pos, parameter.DroneGunRange, false, nil)
			if target == nil {
				continue
			}
			dir := physics.Seek(d.Pos, target.Pos, 1)
			run.Bullets = append(run.Bullets, &component.Bullet{
				Pos:    d.Pos,
				Vel:    dir.Scale(parameter.DroneBulletSpeed),
				Radius: parameter.LaserBulletRadius,
				Life:   parameter.LaserBulletLife,
				Damage: parameter.DroneGunDamage * p.DamageMult,
				Source: w,
			})
			d.Cooldown = parameter.DroneGunCooldown
		}
	}
}

// DroneSystem runs the idle → dive → explode state machine of each escort
type DroneSystem struct{}

func NewDroneSystem() *DroneSystem { return &DroneSystem{} }

func (s *DroneSystem) Name() string  { return "drone" }
func (s *DroneSystem) Priority() int { return parameter.PriorityDrone }

func (s *DroneSystem) Update(run *engine.Run, dt float64) {
	for _, w := range run.Weapons {
		if w.ID != content.KamikazeDrones || len(w.Drones) == 0 {
			continue
		}
		p, ok := ResolvePower(run, w)
		if !ok {
			continue
		}
		for _, d := range w.Drones {
			switch d.State {
			case component.DroneIdle:
				s.idle(run, w, p, d, dt)
			case component.DroneDive:
				s.dive(run, w, p, d, dt)
			}
		}
	}
}

func (s *DroneSystem) idle(run *engine.Run, w *component.Weapon, p Power, d *component.Drone, dt float64) {
	d.Angle += dt * parameter.DroneSpin
	d.Pos = physics.OrbitPoint(run.Player.Pos, parameter.DroneOrbitRadius, d.Angle)
	if w.Has(component.FlagGun) {
		return
	}
	if target := run.NearestEnemy(d.Pos, p.Base.DetectRange, false, nil); target != nil {
		d.State = component.DroneDive
		d.Target = target
	}
}

func (s *DroneSystem) dive(run *engine.Run, w *component.Weapon, p Power, d *component.Drone, dt float64) {
	// Target died or left the arena before impact
	if d.Target == nil || !d.Target.Alive() {
		d.State = component.DroneIdle
		d.Target = nil
		return
	}

	d.Pos = d.Pos.Add(physics.Seek(d.Pos, d.Target.Pos, parameter.DroneDiveSpeed*dt))
	if d.Pos.Dist(d.Target.Pos) >= d.Target.Radius+parameter.DroneImpactPadding {
		return
	}

	blast := p.Base.BlastRadius * (1 + run.Totals.AreaPct/100)
	damage := p.Base.ExplosionDamage * p.DamageMult
	for _, e := range run.Enemies {
		if !e.Alive() {
			continue
		}
		if e.Pos.Dist(d.Pos) < blast {
			combat.ApplyDamage(run, e, damage, w, combat.Extras{})
		}
	}
	d.State = component.DroneIdle
	d.Target = nil
}
