package overlock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
)

func newRun(t *testing.T) *engine.Run {
	t.Helper()
	cat := content.Default()
	zone, ok := cat.Zone("apollo_nebula")
	require.True(t, ok)
	run := engine.NewRun(cat, zone, engine.RunOptions{Seed: 11})
	run.Level = 10
	return run
}

func TestOfferListsEligibleWeapons(t *testing.T) {
	run := newRun(t)
	run.Weapons = append(run.Weapons, component.NewWeapon(content.CuttingBeam))
	run.Weapons[0].Overlock = &component.OverlockAssignment{Flags: component.FlagFast}

	require.True(t, Offer(run))
	require.NotNil(t, run.Overlay)
	assert.Equal(t, engine.OverlayOverlockWeapon, run.Overlay.Kind)
	assert.Equal(t, "Overlock Level 10", run.Overlay.Title)
	require.Len(t, run.Overlay.Choices, 1)
	assert.Equal(t, "Cutting Beam", run.Overlay.Choices[0].Label)
	assert.Equal(t, engine.OverlockWeapon{Weapon: content.CuttingBeam}, run.Overlay.Choices[0].Action)
}

func TestOfferRefusesWhenAllOverlocked(t *testing.T) {
	run := newRun(t)
	run.Weapons[0].Overlock = &component.OverlockAssignment{}

	assert.False(t, Offer(run))
	assert.Nil(t, run.Overlay)
}

func TestVariantsFallbackToAssault(t *testing.T) {
	run := newRun(t)
	assert.Equal(t, []content.Category{content.Assault}, Variants(run))

	require.NoError(t, SelectWeapon(run, content.FrontLaser))
	require.Len(t, run.Overlay.Choices, 1)
	assert.Equal(t, "Prism Barrage", run.Overlay.Choices[0].Label)
	assert.Equal(t, content.FrontLaser, run.Overlock.PendingWeapon)
}

func TestVariantsFollowOwnedCategories(t *testing.T) {
	tests := []struct {
		name     string
		passives map[content.StatID]int
		want     []content.Category
	}{
		{"aegis only", map[content.StatID]int{content.MaxHP: 1}, []content.Category{content.Aegis}},
		{"assault and prospector", map[content.StatID]int{content.DamagePct: 2, content.XPPct: 1}, []content.Category{content.Assault, content.Prospector}},
		{"all", map[content.StatID]int{content.AreaPct: 1, content.Regen: 1, content.StarbitsPct: 1}, []content.Category{content.Assault, content.Aegis, content.Prospector}},
		{"zero level ignored", map[content.StatID]int{content.LifeSteal: 0}, []content.Category{content.Assault}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := newRun(t)
			run.Passives = tt.passives
			assert.Equal(t, tt.want, Variants(run))
		})
	}
}

func TestSelectWeaponErrors(t *testing.T) {
	run := newRun(t)
	assert.ErrorIs(t, SelectWeapon(run, content.GravityWell), ErrNotOwned)

	run.Weapons[0].Overlock = &component.OverlockAssignment{}
	assert.ErrorIs(t, SelectWeapon(run, content.FrontLaser), ErrAlreadyOverlocked)
}

func TestApplyIsWriteOnce(t *testing.T) {
	run := newRun(t)
	require.NoError(t, Apply(run, content.FrontLaser, content.Assault))
	w := run.Weapons[0]
	require.NotNil(t, w.Overlock)
	assert.Equal(t, "Prism Barrage", w.Overlock.Name)
	assert.True(t, w.Has(component.FlagFast|component.FlagSplash))

	err := Apply(run, content.FrontLaser, content.Aegis)
	assert.ErrorIs(t, err, ErrAlreadyOverlocked)
	assert.Equal(t, content.Assault, w.Overlock.Variant)

	evs := run.Events.Consume()
	require.Len(t, evs, 1)
	assert.Equal(t, event.EventOverlockApplied, evs[0].Type)
}

func TestApplyLootBonusVariants(t *testing.T) {
	for _, id := range []content.WeaponID{content.FrontLaser, content.HomingMissiles, content.ShockwavePulse} {
		run := newRun(t)
		run.Weapons = []*component.Weapon{component.NewWeapon(id)}
		require.NoError(t, Apply(run, id, content.Prospector))
		assert.True(t, run.Weapons[0].LootBonus, "%s", id)
	}
}

func TestApplyRunMutations(t *testing.T) {
	t.Run("plate", func(t *testing.T) {
		run := newRun(t)
		run.Weapons = []*component.Weapon{component.NewWeapon(content.OrbitOrbs)}
		require.NoError(t, Apply(run, content.OrbitOrbs, content.Aegis))
		assert.True(t, run.Overlock.PlateArmed)
		assert.True(t, run.Overlock.PlateReady)
	})
	t.Run("tractor", func(t *testing.T) {
		run := newRun(t)
		run.Weapons = []*component.Weapon{component.NewWeapon(content.OrbitOrbs)}
		require.NoError(t, Apply(run, content.OrbitOrbs, content.Prospector))
		assert.Equal(t, 16.0, run.Totals.PickupRadius)

		// Survives later recomputes
		run.Passives[content.PickupRadius] = 1
		run.Recompute()
		assert.Equal(t, 22.0, run.Totals.PickupRadius)
	})
	t.Run("shield core", func(t *testing.T) {
		run := newRun(t)
		run.Weapons = []*component.Weapon{component.NewWeapon(content.CuttingBeam)}
		require.NoError(t, Apply(run, content.CuttingBeam, content.Aegis))
		assert.InDelta(t, 36, run.Player.ShieldMax, 1e-9)
		assert.InDelta(t, 36, run.Player.Shield, 1e-9)
	})
	t.Run("drain", func(t *testing.T) {
		run := newRun(t)
		run.Weapons = []*component.Weapon{component.NewWeapon(content.GravityWell)}
		require.NoError(t, Apply(run, content.GravityWell, content.Aegis))
		assert.Equal(t, 1.5, run.Overlock.DrainBoost)
	})
}

func TestFlagsTable(t *testing.T) {
	for _, def := range content.Default().Weapons() {
		seen := map[component.OverlockFlag]bool{}
		for _, c := range content.Categories {
			f := Flags(def.ID, c)
			assert.NotZero(t, f, "%s/%s", def.ID, c)
			assert.False(t, seen[f], "%s variants must differ", def.ID)
			seen[f] = true
		}
	}
	assert.Zero(t, Flags("plasma_cannon", content.Assault))
	assert.Equal(t, component.FlagNearOnly|component.FlagHealOnKill|component.FlagSlow, Flags(content.ChainLightning, content.Aegis))
}
