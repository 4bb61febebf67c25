package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/vmath"
)

func newRun(t *testing.T) *engine.Run {
	t.Helper()
	cat := content.Default()
	zone, ok := cat.Zone("apollo_nebula")
	require.True(t, ok)
	return engine.NewRun(cat, zone, engine.RunOptions{Seed: 99})
}

func enemyAt(x, y, hp float64) *component.Enemy {
	return &component.Enemy{Kind: "drifter", Pos: vmath.Vec2{X: x, Y: y}, HP: hp, MaxHP: hp, Radius: 10, Speed: 28, Damage: 10}
}

func overlocked(id content.WeaponID, flags component.OverlockFlag) *component.Weapon {
	w := component.NewWeapon(id)
	w.Overlock = &component.OverlockAssignment{Flags: flags}
	return w
}

func power(t *testing.T, run *engine.Run, w *component.Weapon) Power {
	t.Helper()
	p, ok := ResolvePower(run, w)
	require.True(t, ok)
	return p
}
