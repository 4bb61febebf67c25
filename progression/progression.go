// Package progression turns collected XP into levels and builds level-up offers
package progression

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/overlock"
	"github.com/lixenwraith/stardrift/parameter"
)

var (
	ErrWeaponOwned    = errors.New("weapon already owned")
	ErrWeaponNotOwned = errors.New("weapon not owned")
	ErrSlotsFull      = errors.New("no free slot")
	ErrUnknownUpgrade = errors.New("unknown upgrade")
)

// Threshold is the XP needed to leave level
func Threshold(level int) int {
	return parameter.XPThresholdBase + level*parameter.XPThresholdPerLevel
}

// CheckLevel consumes one threshold when XP suffices and opens the matching overlay
// At most one level resolves per call, excess XP carries to the next tick
func CheckLevel(run *engine.Run) bool {
	if !run.Active || run.Overlay != nil {
		return false
	}
	if run.XP < float64(run.XPToNext) {
		return false
	}

	run.XP -= float64(run.XPToNext)
	run.Level++
	run.XPToNext = Threshold(run.Level)

	milestone := run.Level%parameter.OverlockMilestone == 0
	offered := milestone && overlock.Offer(run)
	if !offered {
		openLevelUp(run)
	}
	run.Emit(event.EventLevelUp, &event.LevelUpPayload{Level: run.Level, Overlock: offered})
	return true
}

func openLevelUp(run *engine.Run) {
	run.Overlay = &engine.Overlay{
		Kind:    engine.OverlayLevelUp,
		Title:   "Level Up",
		Choices: BuildChoices(run, run.Rand),
	}
}

// Apply grants an upgrade and refreshes aggregates
func Apply(run *engine.Run, up engine.Upgrade) error {
	switch u := up.(type) {
	case engine.NewWeapon:
		if run.Weapon(u.Weapon) != nil {
			return fmt.Errorf("grant %s: %w", u.Weapon, ErrWeaponOwned)
		}
		if len(run.Weapons) >= run.WeaponSlots {
			return fmt.Errorf("grant %s: %w", u.Weapon, ErrSlotsFull)
		}
		run.Weapons = append(run.Weapons, component.NewWeapon(u.Weapon))
	case engine.WeaponLevel:
		w := run.Weapon(u.Weapon)
		if w == nil {
			return fmt.Errorf("level %s: %w", u.Weapon, ErrWeaponNotOwned)
		}
		w.Level = min(parameter.WeaponMaxLevel, w.Level+1)
	case engine.Passive:
		run.Passives[u.Stat]++
	default:
		return fmt.Errorf("%T: %w", up, ErrUnknownUpgrade)
	}
	run.Recompute()
	return nil
}
