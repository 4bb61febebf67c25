// Package overlock runs the milestone weapon transformation: weapon offer, variant offer, application
package overlock

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
)

var (
	ErrAlreadyOverlocked = errors.New("weapon already overlocked")
	ErrNotOwned          = errors.New("weapon not owned")
	ErrUnknownVariant    = errors.New("unknown overlock variant")
)

// Eligible returns owned weapons without an Overlock, in loadout order
func Eligible(run *engine.Run) []*component.Weapon {
	var out []*component.Weapon
	for _, w := range run.Weapons {
		if w.Overlock == nil {
			out = append(out, w)
		}
	}
	return out
}

// Offer opens the weapon-choice overlay
// Returns false without touching the run when every owned weapon is already Overlocked
func Offer(run *engine.Run) bool {
	eligible := Eligible(run)
	if len(eligible) == 0 {
		return false
	}

	choices := make([]engine.Choice, 0, len(eligible))
	for _, w := range eligible {
		label := string(w.ID)
		if def, ok := run.Catalog.Weapon(w.ID); ok {
			label = def.Name
		}
		choices = append(choices, engine.Choice{
			Label:  label,
			Desc:   "Select a weapon to Overlock.",
			Action: engine.OverlockWeapon{Weapon: w.ID},
		})
	}

	run.Overlay = &engine.Overlay{
		Kind:    engine.OverlayOverlockWeapon,
		Title:   fmt.Sprintf("Overlock Level %d", run.Level),
		Choices: choices,
	}
	return true
}

// Variants returns the categories offered for a weapon
// Only categories with at least one owned passive qualify, Assault alone when none do
func Variants(run *engine.Run) []content.Category {
	owned := run.OwnedCategories()
	if owned.Empty() {
		return []content.Category{content.Assault}
	}
	var out []content.Category
	for _, c := range content.Categories {
		if owned.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// SelectWeapon records the pending weapon and opens the variant overlay
func SelectWeapon(run *engine.Run, id content.WeaponID) error {
	w := run.Weapon(id)
	if w == nil {
		return fmt.Errorf("select %s: %w", id, ErrNotOwned)
	}
	if w.Overlock != nil {
		return fmt.Errorf("select %s: %w", id, ErrAlreadyOverlocked)
	}

	var choices []engine.Choice
	for _, c := range Variants(run) {
		v, ok := run.Catalog.Variant(id, c)
		if !ok {
			return fmt.Errorf("select %s/%s: %w", id, c, ErrUnknownVariant)
		}
		choices = append(choices, engine.Choice{
			Label:  v.Name,
			Desc:   v.Desc,
			Action: engine.OverlockVariant{Weapon: id, Variant: c},
		})
	}

	run.Overlock.PendingWeapon = id
	run.Overlay = &engine.Overlay{
		Kind:    engine.OverlayOverlockVariant,
		Title:   "Choose Overlock Variant",
		Choices: choices,
	}
	return nil
}

// Apply grants variant c to the weapon, derives its flags and runs one-shot run mutations
// The assignment is write-once
func Apply(run *engine.Run, id content.WeaponID, c content.Category) error {
	w := run.Weapon(id)
	if w == nil {
		return fmt.Errorf("apply %s: %w", id, ErrNotOwned)
	}
	if w.Overlock != nil {
		return fmt.Errorf("apply %s: %w", id, ErrAlreadyOverlocked)
	}
	v, ok := run.Catalog.Variant(id, c)
	if !ok {
		return fmt.Errorf("apply %s/%s: %w", id, c, ErrUnknownVariant)
	}

	flags := Flags(id, c)
	w.Overlock = &component.OverlockAssignment{Variant: c, Name: v.Name, Flags: flags}
	w.LootBonus = flags.Has(component.FlagLootBonus)
	mutateRun(run, flags)

	run.Overlock.PendingWeapon = ""
	run.Emit(event.EventOverlockApplied, &event.OverlockAppliedPayload{
		Weapon:  id,
		Variant: c,
		Name:    v.Name,
	})
	return nil
}

// mutateRun applies the run-wide effects some variants carry beyond their weapon
func mutateRun(run *engine.Run, flags component.OverlockFlag) {
	if flags.Has(component.FlagPlate) {
		run.Overlock.PlateArmed = true
		run.Overlock.PlateReady = true
		run.Overlock.PlateTimer = 0
	}
	if flags.Has(component.FlagTractor) {
		run.Overlock.PickupBonus += parameter.TractorPickupBonus
		run.Recompute()
	}
	if flags.Has(component.FlagShieldCore) {
		p := &run.Player
		p.ShieldMax = p.MaxHP * parameter.ShieldCoreFraction
		p.Shield = p.ShieldMax
	}
	if flags.Has(component.FlagDrain) {
		run.Overlock.DrainBoost = parameter.DrainZoneBoost
	}
}
