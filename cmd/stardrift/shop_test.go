package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/store"
)

func actions(choices []engine.Choice) []engine.Action {
	out := make([]engine.Action, len(choices))
	for i, c := range choices {
		out[i] = c.Action
	}
	return out
}

func TestShopChoicesAffordable(t *testing.T) {
	cat := content.Default()
	save := store.DefaultState(cat)

	assert.Equal(t, []engine.Action{engine.ReturnToTitle{}}, actions(shopChoices(cat, save, 0)))

	save.Starbits = 1000
	assert.Equal(t, []engine.Action{
		engine.ReturnToTitle{},
		engine.BuySlot{Passive: false},
		engine.BuySlot{Passive: true},
		engine.UnlockZone{Zone: "ares_quasar"},
		engine.UnlockZone{Zone: "hephaestus_belt"},
	}, actions(shopChoices(cat, save, 0)))

	save.UnlockedZones["ares_quasar"] = true
	save.WeaponSlots = 6
	got := actions(shopChoices(cat, save, 0))
	assert.Contains(t, got, engine.SelectZone{Zone: "ares_quasar"})
	assert.NotContains(t, got, engine.BuySlot{Passive: false}, "maxed slots are not offered")
}

func TestPurchaseRejectsRunActions(t *testing.T) {
	cat := content.Default()
	save := store.DefaultState(cat)
	assert.ErrorIs(t, purchase(cat, &save, engine.ReturnToTitle{}), errNotPurchase)
	assert.ErrorIs(t, purchase(cat, &save, engine.BuySlot{}), store.ErrInsufficient)
}

func indexOf(t *testing.T, h *Host, a engine.Action) rune {
	t.Helper()
	for i, c := range h.Simulation().Run().Overlay.Choices {
		if c.Action == a {
			return rune('1' + i)
		}
	}
	require.Failf(t, "choice not offered", "%#v", a)
	return 0
}

func TestSummarySpendsStarbits(t *testing.T) {
	f := newFixture(t, "", nil)
	ctx := context.Background()
	f.host.save.Starbits = 1000

	f.host.HandleEvent(ctx, special(tcell.KeyEscape), time.Now())
	run := f.host.Simulation().Run()
	require.NotNil(t, run.Overlay)
	balance := f.host.Save().Starbits
	require.Equal(t, 1000+run.CurrencyEarned, balance)

	f.host.HandleEvent(ctx, runeKey(indexOf(t, f.host, engine.BuySlot{})), time.Now())
	assert.Equal(t, 4, f.host.Save().WeaponSlots)
	assert.Equal(t, balance-300, f.host.Save().Starbits)
	assert.Same(t, run, f.host.Simulation().Run(), "purchases keep the summary open")

	f.host.HandleEvent(ctx, runeKey(indexOf(t, f.host, engine.UnlockZone{Zone: "ares_quasar"})), time.Now())
	assert.Equal(t, balance-550, f.host.Save().Starbits)
	assert.Equal(t, content.ZoneID("ares_quasar"), f.host.Save().SelectedZone)

	saved := f.store.Load(ctx)
	assert.Equal(t, 4, saved.WeaponSlots)
	assert.True(t, saved.UnlockedZones["ares_quasar"])

	f.host.HandleEvent(ctx, runeKey('1'), time.Now())
	next := f.host.Simulation().Run()
	require.NotSame(t, run, next)
	assert.Equal(t, content.ZoneID("ares_quasar"), next.Zone.ID)
	assert.Equal(t, 4, next.WeaponSlots)
}
