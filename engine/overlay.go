package engine

import "github.com/lixenwraith/stardrift/content"

// OverlayKind is the pending decision type
type OverlayKind uint8

const (
	OverlayLevelUp OverlayKind = iota
	OverlayOverlockWeapon
	OverlayOverlockVariant
	OverlaySummary
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayLevelUp:
		return "level_up"
	case OverlayOverlockWeapon:
		return "overlock_weapon"
	case OverlayOverlockVariant:
		return "overlock_variant"
	case OverlaySummary:
		return "summary"
	}
	return "unknown"
}

// Overlay is a pending player decision, the simulation is paused while one is open
type Overlay struct {
	Kind    OverlayKind
	Title   string
	Choices []Choice
}

// Choice is one selectable overlay entry
type Choice struct {
	Label  string
	Desc   string
	Action Action
}

// Action is the typed payload of a choice
// Implementations are comparable so they can key distinctness sets
type Action interface {
	action()
}

// Upgrade is the subset of actions offered by a level-up overlay
type Upgrade interface {
	Action
	upgrade()
}

// NewWeapon grants an unowned weapon at level 1
type NewWeapon struct{ Weapon content.WeaponID }

// WeaponLevel raises an owned weapon by one level
type WeaponLevel struct{ Weapon content.WeaponID }

// Passive raises a passive stat by one level
type Passive struct{ Stat content.StatID }

// OverlockWeapon selects the weapon to transform
type OverlockWeapon struct{ Weapon content.WeaponID }

// OverlockVariant selects the variant for the pending weapon
type OverlockVariant struct {
	Weapon  content.WeaponID
	Variant content.Category
}

// ReturnToTitle dismisses the run summary
type ReturnToTitle struct{}

// Summary purchases, resolved by the host against the save rather than the run

// BuySlot spends starbits on one more weapon or passive slot
type BuySlot struct{ Passive bool }

// UnlockZone purchases a locked zone and selects it
type UnlockZone struct{ Zone content.ZoneID }

// SelectZone picks an unlocked zone for the next run
type SelectZone struct{ Zone content.ZoneID }

func (NewWeapon) action()       {}
func (WeaponLevel) action()     {}
func (Passive) action()         {}
func (OverlockWeapon) action()  {}
func (OverlockVariant) action() {}
func (ReturnToTitle) action()   {}
func (BuySlot) action()         {}
func (UnlockZone) action()      {}
func (SelectZone) action()      {}

func (NewWeapon) upgrade()   {}
func (WeaponLevel) upgrade() {}
func (Passive) upgrade()     {}
