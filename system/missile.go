package system

import (
	"math"

	"github.com/lixenwraith/stardrift/combat"
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/physics"
	"github.com/lixenwraith/stardrift/vmath"
)

// missileBehavior launches seeking missiles on cooldown
type missileBehavior struct{}

func (missileBehavior) Update(run *engine.Run, w *component.Weapon, p Power, dt float64) {
	if w.Cooldown > 0 {
		return
	}

	count := p.Base.Missiles + p.ProjBonus + p.LevelBonus(parameter.MissileBonusLevel)
	damage := p.Scaled(p.Base.Damage) * p.DamageMult
	for i := 0; i < count; i++ {
		run.Missiles = append(run.Missiles, &component.Missile{
			Pos: run.Player.Pos,
			Vel: vmath.Vec2{
				X: run.Rand.Range(-parameter.MissileLaunchJitter, parameter.MissileLaunchJitter),
				Y: run.Rand.Range(-parameter.MissileLaunchJitter, parameter.MissileLaunchJitter),
			},
			Speed:  parameter.MissileSpeed,
			Damage: damage,
			Life:   parameter.MissileLife,
			Source: w,
			Phase:  physics.SpreadAngle(0, i, count),
		})
	}

	w.Cooldown = p.Base.Cooldown * p.CooldownMult
	run.Emit(event.EventShot, &event.ShotPayload{Weapon: w.ID})
}

// MissileSystem steers missiles and resolves impacts
type MissileSystem struct{}

func NewMissileSystem() *MissileSystem { return &MissileSystem{} }

func (s *MissileSystem) Name() string  { return "missile" }
func (s *MissileSystem) Priority() int { return parameter.PriorityMissile }

func (s *MissileSystem) Update(run *engine.Run, dt float64) {
	for _, m := range run.Missiles {
		m.Life -= dt

		if m.Source.Has(component.FlagGuardian) {
			angle := run.Time*parameter.GuardianSpin + m.Phase
			m.Pos = physics.OrbitPoint(run.Player.Pos, parameter.GuardianOrbitRadius, angle)
		} else {
			if target := run.NearestEnemy(m.Pos, parameter.MissileSeekRange, false, nil); target != nil {
				m.Vel = physics.Seek(m.Pos, target.Pos, m.Speed)
			}
			m.Pos = m.Pos.Add(m.Vel.Scale(dt))
		}

		for _, e := range run.Enemies {
			if !e.Alive() {
				continue
			}
			if m.Pos.Dist(e.Pos) >= e.Radius+parameter.MissileImpactPadding {
				continue
			}

			combat.ApplyDamage(run, e, m.Damage, m.Source, combat.Extras{})
			if m.Source.Has(component.FlagCluster) {
				s.fragment(run, m, e.Pos)
			}
			m.Life = 0
			break
		}
	}

	run.Missiles = compact(run.Missiles, func(m *component.Missile) bool { return m.Life > 0 })
}

// fragment emits the cluster ring of sub-projectiles at the impact point
func (s *MissileSystem) fragment(run *engine.Run, m *component.Missile, at vmath.Vec2) {
	for i := 0; i < parameter.ClusterFragments; i++ {
		dir := vmath.FromAngle(float64(i) * 2 * math.Pi / parameter.ClusterFragments)
		run.Bullets = append(run.Bullets, &component.Bullet{
			Pos:    at,
			Vel:    dir.Scale(parameter.ClusterFragmentSpeed),
			Radius: parameter.LaserBulletRadius,
			Life:   parameter.ClusterFragmentLife,
			Damage: m.Damage * parameter.ClusterFragmentShare,
			Source: m.Source,
		})
	}
}
