package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/vmath"
)

func newRun(t *testing.T) *engine.Run {
	t.Helper()
	cat := content.Default()
	zone, ok := cat.Zone("apollo_nebula")
	require.True(t, ok)
	return engine.NewRun(cat, zone, engine.RunOptions{Seed: 3, Settings: engine.Settings{ScreenShake: true}})
}

func drifter() *component.Enemy {
	return &component.Enemy{Kind: "drifter", Pos: vmath.Vec2{X: 5, Y: 7}, HP: 32, MaxHP: 32, Radius: 10}
}

func TestApplyDamageKillsOnce(t *testing.T) {
	for _, level := range []int{1, 2, 5, 9, 13} {
		run := newRun(t)
		run.Level = level
		e := drifter()

		killed := ApplyDamage(run, e, 40, nil, Extras{})
		assert.True(t, killed)
		assert.LessOrEqual(t, e.HP, 0.0)
		assert.Equal(t, 1, run.Kills)
		require.Len(t, run.Orbs, 1)
		assert.Equal(t, float64(6+level/2), run.Orbs[0].XP, "level %d", level)
		assert.Equal(t, 0, run.Orbs[0].Currency)
		assert.Equal(t, e.Pos, run.Orbs[0].Pos)

		// Already dead, no second reward
		assert.False(t, ApplyDamage(run, e, 40, nil, Extras{}))
		assert.Equal(t, 1, run.Kills)
		assert.Len(t, run.Orbs, 1)
	}
}

func TestApplyDamageMarkedKill(t *testing.T) {
	run := newRun(t)
	run.Level = 4
	e := drifter()

	ApplyDamage(run, e, 40, nil, Extras{Mark: 4})
	require.Len(t, run.Orbs, 1)
	assert.Equal(t, float64(6+2+4), run.Orbs[0].XP)
	assert.Equal(t, 1, run.Orbs[0].Currency)
}

func TestApplyDamageLootBonusSource(t *testing.T) {
	run := newRun(t)
	w := component.NewWeapon(content.ShockwavePulse)
	w.LootBonus = true

	ApplyDamage(run, drifter(), 40, w, Extras{})
	require.Len(t, run.Orbs, 1)
	assert.Equal(t, 1, run.Orbs[0].Currency)

	evs := run.Events.Consume()
	require.Len(t, evs, 1)
	p := evs[0].Payload.(*event.EnemyKilledPayload)
	assert.Equal(t, content.ShockwavePulse, p.Source)
}

func TestApplyDamageNonLethal(t *testing.T) {
	run := newRun(t)
	e := drifter()
	assert.False(t, ApplyDamage(run, e, 10, nil, Extras{}))
	assert.Equal(t, 22.0, e.HP)
	assert.Equal(t, 0, run.Kills)
	assert.Empty(t, run.Orbs)
}

func TestLifeStealNeverExceedsMax(t *testing.T) {
	run := newRun(t)
	run.Passives[content.LifeSteal] = 50
	run.Recompute()
	run.Player.HP = run.Player.MaxHP - 1
	run.Overlock.DrainBoost = 1.5

	e := &component.Enemy{HP: 1e6}
	ApplyDamage(run, e, 10000, nil, Extras{InDrainZone: true})
	assert.Equal(t, run.Player.MaxHP, run.Player.HP)
}

func TestLifeStealDrainBoost(t *testing.T) {
	run := newRun(t)
	run.Passives[content.LifeSteal] = 1
	run.Recompute()
	run.Player.HP = 50
	run.Overlock.DrainBoost = 1.5

	ApplyDamage(run, &component.Enemy{HP: 1000}, 100, nil, Extras{})
	assert.InDelta(t, 50.6, run.Player.HP, 1e-9)

	ApplyDamage(run, &component.Enemy{HP: 1000}, 100, nil, Extras{InDrainZone: true})
	assert.InDelta(t, 50.6+0.9, run.Player.HP, 1e-9)
}

func TestDamagePlayerShieldFirst(t *testing.T) {
	run := newRun(t)
	run.Player.ShieldMax = 36
	run.Player.Shield = 36

	DamagePlayer(run, 10)
	assert.Equal(t, 26.0, run.Player.Shield)
	assert.Equal(t, 120.0, run.Player.HP)
	assert.Equal(t, 7.0, run.Player.ShieldDelay)
}

func TestDamagePlayerPlateNegates(t *testing.T) {
	run := newRun(t)
	run.Overlock.PlateArmed = true
	run.Overlock.PlateReady = true

	DamagePlayer(run, 14)
	assert.Equal(t, 120.0, run.Player.HP)
	assert.False(t, run.Overlock.PlateReady)
	assert.Equal(t, 4.0, run.Overlock.PlateTimer)

	DamagePlayer(run, 14)
	assert.Equal(t, 106.0, run.Player.HP)
	assert.Equal(t, 4.0, run.Shake.Magnitude)
}

func TestDamagePlayerDeathEndsRun(t *testing.T) {
	run := newRun(t)
	run.Player.HP = 5

	DamagePlayer(run, 14)
	assert.Equal(t, 0.0, run.Player.HP)
	assert.False(t, run.Active)
	assert.True(t, run.Died)
	require.NotNil(t, run.Overlay)
	assert.Equal(t, engine.OverlaySummary, run.Overlay.Kind)
}
