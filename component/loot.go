package component

import "github.com/lixenwraith/stardrift/vmath"

// LootOrb carries XP and bonus currency dropped by a kill
type LootOrb struct {
	Pos       vmath.Vec2
	XP        float64
	Currency  int
	Pulled    bool
	Collected bool
}
