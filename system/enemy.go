package system

import (
	"github.com/lixenwraith/stardrift/combat"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/physics"
)

// EnemySystem homes enemies on the player, decays status and applies contact damage
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem { return &EnemySystem{} }

func (s *EnemySystem) Name() string  { return "enemy" }
func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

func (s *EnemySystem) Update(run *engine.Run, dt float64) {
	for _, e := range run.Enemies {
		if !e.Alive() {
			continue
		}

		speed := e.Speed
		if e.Slow > 0 {
			speed *= parameter.EnemySlowFactor
		}
		if e.Stun > 0 {
			e.Stun -= dt
		} else {
			e.Pos = e.Pos.Add(physics.Seek(e.Pos, run.Player.Pos, speed*dt))
		}
		if e.Slow > 0 {
			e.Slow = max(0, e.Slow-dt)
		}

		e.HitCooldown -= dt
		if e.Pos.Dist(run.Player.Pos) < e.Radius+run.Player.Radius && e.HitCooldown <= 0 {
			combat.DamagePlayer(run, e.Damage)
			e.HitCooldown = parameter.EnemyContactCooldown
			if !run.Active {
				return
			}
		}
	}
}
