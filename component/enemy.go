package component

import (
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/vmath"
)

// Enemy is a live hostile, HP changes only through the combat resolver
type Enemy struct {
	Kind   content.EnemyKind
	Pos    vmath.Vec2
	HP     float64
	MaxHP  float64
	Speed  float64
	Radius float64
	Damage float64
	Color  string

	// Status durations in seconds
	Slow float64
	Stun float64

	// Mark is non-zero once tagged by a prospector variant
	Mark int

	HitCooldown float64
	LastHit     *Weapon
}

// Alive reports whether the enemy can still be damaged
func (e *Enemy) Alive() bool {
	return e.HP > 0
}
