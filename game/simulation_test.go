package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/status"
	"github.com/lixenwraith/stardrift/store"
	"github.com/lixenwraith/stardrift/vmath"
)

func newSim(t *testing.T, zone content.ZoneID) (*Simulation, *status.Registry) {
	t.Helper()
	cat := content.Default()
	z, ok := cat.Zone(zone)
	require.True(t, ok)
	reg := status.NewRegistry()
	return New(cat, z, store.DefaultState(cat), Options{Seed: 42, Status: reg}), reg
}

func TestTickClampsStep(t *testing.T) {
	sim, reg := newSim(t, "apollo_nebula")
	sim.Tick(1.0, vmath.Vec2{})
	assert.InDelta(t, 0.05, sim.Run().Time, 1e-9)
	assert.Equal(t, int64(1), reg.Ints.Get("engine.ticks").Load())
	assert.InDelta(t, 0.05, reg.Floats.Get("run.time").Get(), 1e-9)
}

func TestTickPausedByOverlay(t *testing.T) {
	sim, _ := newSim(t, "apollo_nebula")
	run := sim.Run()
	run.Overlay = &engine.Overlay{Kind: engine.OverlayLevelUp}

	sim.Tick(0.016, vmath.Vec2{X: 1})
	assert.Equal(t, 0.0, run.Time)
	assert.Equal(t, vmath.Vec2{}, run.Player.Pos)
}

func TestTickNormalizesMove(t *testing.T) {
	sim, _ := newSim(t, "apollo_nebula")
	sim.Tick(0.01, vmath.Vec2{X: 10})
	assert.InDelta(t, 1, sim.Run().Move.Len(), 1e-9)
	assert.InDelta(t, 0.78, sim.Run().Player.Pos.X, 1e-9)
}

func TestChooseErrors(t *testing.T) {
	sim, _ := newSim(t, "apollo_nebula")
	assert.ErrorIs(t, sim.Choose(0), ErrNoOverlay)

	sim.Run().Overlay = &engine.Overlay{
		Kind:    engine.OverlayLevelUp,
		Choices: []engine.Choice{{Label: "Passive: Damage %", Action: engine.Passive{Stat: content.DamagePct}}},
	}
	assert.ErrorIs(t, sim.Choose(1), ErrChoiceOutOfRange)
	assert.ErrorIs(t, sim.Choose(-1), ErrChoiceOutOfRange)

	require.NoError(t, sim.Choose(0))
	assert.Nil(t, sim.Run().Overlay)
	assert.Equal(t, 1, sim.Run().Passives[content.DamagePct])
	assert.Equal(t, 8.0, sim.Run().Totals.DamagePct)
}

func TestLevelUpFlow(t *testing.T) {
	sim, _ := newSim(t, "apollo_nebula")
	run := sim.Run()
	run.XP = 28

	sim.Tick(0.016, vmath.Vec2{})
	require.NotNil(t, run.Overlay)
	assert.Equal(t, engine.OverlayLevelUp, run.Overlay.Kind)
	assert.Equal(t, 2, run.Level)
	require.Len(t, run.Overlay.Choices, 3)

	before := run.Time
	sim.Tick(0.016, vmath.Vec2{})
	assert.Equal(t, before, run.Time, "paused while choosing")

	require.NoError(t, sim.Choose(0))
	assert.Nil(t, run.Overlay)
	sim.Tick(0.016, vmath.Vec2{})
	assert.Greater(t, run.Time, before)
}

func TestOverlockFlow(t *testing.T) {
	sim, _ := newSim(t, "apollo_nebula")
	run := sim.Run()
	run.Level = 9
	run.XPToNext = 10
	run.XP = 10
	run.Passives[content.MaxHP] = 1
	run.Recompute()

	sim.Tick(0.016, vmath.Vec2{})
	require.NotNil(t, run.Overlay)
	require.Equal(t, engine.OverlayOverlockWeapon, run.Overlay.Kind)
	require.Len(t, run.Overlay.Choices, 1)

	require.NoError(t, sim.Choose(0))
	require.Equal(t, engine.OverlayOverlockVariant, run.Overlay.Kind)
	require.Len(t, run.Overlay.Choices, 1)
	assert.Equal(t, "Leech Lance", run.Overlay.Choices[0].Label)

	require.NoError(t, sim.Choose(0))
	assert.Nil(t, run.Overlay)
	w := run.Weapon(content.FrontLaser)
	assert.True(t, w.Has(component.FlagHeavy))
	assert.Equal(t, content.Aegis, w.Overlock.Variant)

	var types []event.EventType
	for _, ev := range run.Events.Consume() {
		types = append(types, ev.Type)
	}
	assert.Contains(t, types, event.EventLevelUp)
	assert.Contains(t, types, event.EventOverlockApplied)
	assert.Contains(t, types, event.EventChoiceResolved)
}

func TestSettleExample(t *testing.T) {
	sim, _ := newSim(t, "ares_quasar")
	run := sim.Run()
	run.Time = 136
	run.Kills = 40
	run.Level = 10

	rec := sim.Settle()
	assert.Equal(t, 518, rec.Earned)
	assert.Equal(t, 518, run.CurrencyEarned)
	assert.False(t, rec.Died)
	assert.Equal(t, run.ID, rec.ID)
	assert.Equal(t, content.ZoneID("ares_quasar"), rec.Zone)
	require.Len(t, rec.Loadout, 1)
	assert.Equal(t, content.FrontLaser, rec.Loadout[0].Weapon)

	// Settling twice does not pay twice
	assert.Equal(t, 518, sim.Settle().Earned)
}

func TestSummaryReturnsToTitle(t *testing.T) {
	sim, _ := newSim(t, "apollo_nebula")
	sim.Abandon()
	run := sim.Run()
	assert.False(t, run.Active)
	require.NotNil(t, run.Overlay)
	assert.Equal(t, engine.OverlaySummary, run.Overlay.Kind)

	require.NoError(t, sim.Choose(0))
	assert.True(t, sim.Done())
}

func TestRunToDeath(t *testing.T) {
	sim, reg := newSim(t, "hades_rift")
	run := sim.Run()

	// A drifter straight ahead in the laser's path guarantees at least one kill
	run.Enemies = append(run.Enemies, &component.Enemy{
		Kind: "drifter", Pos: run.Player.Pos.Add(vmath.Vec2{Y: -60}),
		HP: 32, MaxHP: 32, Speed: 28, Radius: 10, Damage: 10,
	})

	// Stand still and resolve every overlay with its first choice until the ship falls
	for i := 0; i < 200000 && run.Active; i++ {
		if run.Overlay != nil {
			require.NoError(t, sim.Choose(0))
			continue
		}
		sim.Tick(0.05, vmath.Vec2{})
	}
	require.False(t, run.Active, "enemies eventually overwhelm a stationary ship")
	assert.True(t, run.Died)
	assert.Equal(t, 0.0, run.Player.HP)
	assert.Greater(t, run.Kills, 0)
	assert.Greater(t, run.CurrencyEarned, 0)
	assert.Greater(t, reg.Ints.Get("spawn.count").Load(), int64(0))

	rec := sim.Settle()
	assert.True(t, rec.Died)
	assert.Equal(t, run.CurrencyEarned, rec.Earned)
}
