package system

import (
	"github.com/lixenwraith/stardrift/combat"
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
)

// BulletSystem moves bullets and resolves the first enemy each one touches
type BulletSystem struct{}

func NewBulletSystem() *BulletSystem { return &BulletSystem{} }

func (s *BulletSystem) Name() string  { return "bullet" }
func (s *BulletSystem) Priority() int { return parameter.PriorityBullet }

func (s *BulletSystem) Update(run *engine.Run, dt float64) {
	for _, b := range run.Bullets {
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		b.Life -= dt

		for _, e := range run.Enemies {
			if !e.Alive() {
				continue
			}
			if b.Pos.Dist(e.Pos) >= e.Radius+b.Radius {
				continue
			}

			combat.ApplyDamage(run, e, b.Damage, b.Source, combat.Extras{})
			if b.Splash {
				for _, other := range run.Enemies {
					if other == e || !other.Alive() {
						continue
					}
					if e.Pos.Dist(other.Pos) < parameter.SplashRadius {
						combat.ApplyDamage(run, other, b.Damage*parameter.SplashFraction, b.Source, combat.Extras{})
					}
				}
			}
			b.Life = 0
			break
		}
	}

	run.Bullets = compact(run.Bullets, func(b *component.Bullet) bool { return b.Life > 0 })
}
