package engine

import (
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// NearestEnemy returns the closest live enemy strictly within rng of pos
// nearOnly additionally rejects enemies beyond the chain near radius
// Enemies present in exclude are skipped
func (r *Run) NearestEnemy(pos vmath.Vec2, rng float64, nearOnly bool, exclude map[*component.Enemy]bool) *component.Enemy {
	var best *component.Enemy
	bestD := rng
	for _, e := range r.Enemies {
		if !e.Alive() || exclude[e] {
			continue
		}
		d := e.Pos.Dist(pos)
		if nearOnly && d > parameter.ChainNearRadius {
			continue
		}
		if d < bestD {
			bestD = d
			best = e
		}
	}
	return best
}

// EnemiesWithin calls fn for each live enemy whose center is strictly within radius of pos
func (r *Run) EnemiesWithin(pos vmath.Vec2, radius float64, fn func(e *component.Enemy)) {
	for _, e := range r.Enemies {
		if !e.Alive() {
			continue
		}
		if e.Pos.Dist(pos) < radius {
			fn(e)
		}
	}
}
