package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/lixenwraith/stardrift/audio"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/store"
)

// historyDepth bounds the run history scanned for the best result
const historyDepth = 20

var errNotPurchase = errors.New("not a summary purchase")

// shopChoices lists what the save can do next: return first, then affordable purchases and zone switches
func shopChoices(cat *content.Catalog, save store.SaveState, best int) []engine.Choice {
	back := engine.Choice{
		Label:  "Return to Title",
		Desc:   fmt.Sprintf("Balance %d ✦", save.Starbits),
		Action: engine.ReturnToTitle{},
	}
	if best > 0 {
		back.Desc += fmt.Sprintf("  Best run %d ✦", best)
	}
	choices := []engine.Choice{back}

	slots := []struct {
		name    string
		current int
		passive bool
	}{
		{"Weapon", save.WeaponSlots, false},
		{"Passive", save.PassiveSlots, true},
	}
	for _, s := range slots {
		if cost, ok := store.SlotCost(s.current); ok && cost <= save.Starbits {
			choices = append(choices, engine.Choice{
				Label:  fmt.Sprintf("Buy %s Slot", s.name),
				Desc:   fmt.Sprintf("%d → %d slots for %d ✦", s.current, s.current+1, cost),
				Action: engine.BuySlot{Passive: s.passive},
			})
		}
	}

	for _, z := range cat.Zones() {
		switch {
		case save.UnlockedZones[z.ID] && z.ID != save.Zone(cat).ID:
			choices = append(choices, engine.Choice{
				Label:  "Select Zone: " + z.Name,
				Desc:   fmt.Sprintf("Difficulty %d, rewards ×%.1f", z.Difficulty, z.RewardMult),
				Action: engine.SelectZone{Zone: z.ID},
			})
		case !save.UnlockedZones[z.ID] && z.UnlockCost > 0 && z.UnlockCost <= save.Starbits:
			choices = append(choices, engine.Choice{
				Label:  "Unlock Zone: " + z.Name,
				Desc:   fmt.Sprintf("%d ✦, rewards ×%.1f", z.UnlockCost, z.RewardMult),
				Action: engine.UnlockZone{Zone: z.ID},
			})
		}
	}
	return choices
}

// purchase applies a summary purchase to the save
func purchase(cat *content.Catalog, save *store.SaveState, a engine.Action) error {
	switch a := a.(type) {
	case engine.BuySlot:
		kind := store.WeaponSlot
		if a.Passive {
			kind = store.PassiveSlot
		}
		return save.BuySlot(kind)
	case engine.UnlockZone:
		if err := save.UnlockZone(cat, a.Zone); err != nil {
			return err
		}
		return save.SelectZone(cat, a.Zone)
	case engine.SelectZone:
		return save.SelectZone(cat, a.Zone)
	}
	return errNotPurchase
}

// openShop replaces the summary choices once the run is settled
func (h *Host) openShop(ctx context.Context) {
	ov := h.sim.Run().Overlay
	if ov == nil || ov.Kind != engine.OverlaySummary {
		return
	}
	best := 0
	runs, err := h.store.Runs(ctx, historyDepth)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to read run history")
	}
	for _, r := range runs {
		best = max(best, r.Earned)
	}
	h.best = best
	ov.Choices = shopChoices(h.cat, h.save, h.best)
}

// tryPurchase resolves choice index as a purchase, false when it is not one
func (h *Host) tryPurchase(ctx context.Context, index int) bool {
	ov := h.sim.Run().Overlay
	if ov == nil || ov.Kind != engine.OverlaySummary || index < 0 || index >= len(ov.Choices) {
		return false
	}
	choice := ov.Choices[index]
	err := purchase(h.cat, &h.save, choice.Action)
	if errors.Is(err, errNotPurchase) {
		return false
	}
	if err != nil {
		h.log.Debug().Err(err).Str("choice", choice.Label).Msg("Purchase refused")
		return true
	}

	h.persist(ctx)
	if h.player != nil {
		h.player.Play(audio.CueClick)
	}
	h.log.Info().Str("choice", choice.Label).Int("balance", h.save.Starbits).Msg("Purchased")
	ov.Choices = shopChoices(h.cat, h.save, h.best)
	return true
}
