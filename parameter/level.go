package parameter

// Leveling
const (
	// XPThresholdBase and XPThresholdPerLevel define xpToNext = base + level*perLevel
	XPThresholdBase     = 28
	XPThresholdPerLevel = 10

	// OverlockMilestone is the level interval that replaces a level-up with an Overlock
	OverlockMilestone = 10

	// WeaponMaxLevel caps weapon levels
	WeaponMaxLevel = 8
)

// WeaponLevelScale is the per-level multiplier, index = level-1
var WeaponLevelScale = [WeaponMaxLevel]float64{1, 1.12, 1.24, 1.38, 1.54, 1.72, 1.92, 2.15}

// Upgrade choices
const (
	// BaseChoiceCount is the number of choices before the extra_choice passive
	BaseChoiceCount = 3

	// ExtraChoiceCap caps the applied extra_choice bonus
	ExtraChoiceCap = 2

	// NewWeaponWeight is the pool weight of a new weapon offer
	NewWeaponWeight = 45

	// WeaponLevelWeight is the pool weight of a weapon level-up offer
	WeaponLevelWeight = 35

	// DefaultRarityWeight applies to stats whose rarity is unknown
	DefaultRarityWeight = 10
)

// Run-end settlement
const (
	SettleTimeWeight  = 2
	SettleKillWeight  = 2
	SettleLevelWeight = 8
)

// Meta progression (hangar)
const (
	SlotBase = 3
	SlotMax  = 6
)

// SlotCosts is the price of the next slot, index = current slots - SlotBase
var SlotCosts = [SlotMax - SlotBase]int{300, 800, 1600}
