package parameter

// Kill rewards
const (
	// KillXPBase is the XP of a kill orb at level 0
	KillXPBase = 6

	// KillXPPerLevel is added per run level, floored
	KillXPPerLevel = 0.5

	// MarkXPBonus is extra XP on a marked kill
	MarkXPBonus = 4

	// MarkCurrencyBonus is extra currency on a marked kill
	MarkCurrencyBonus = 1

	// LootBonusCurrency is extra currency when the killing source carries a loot bonus
	LootBonusCurrency = 1

	// MarkValue is the mark counter stored on tagged enemies
	MarkValue = 4
)

// Overlock run-wide effects
const (
	// DrainZoneBoost multiplies life steal for hits landed inside gravity wells
	DrainZoneBoost = 1.5

	// TractorPickupBonus is flat pickup radius granted by Tractor Satellites
	TractorPickupBonus = 16.0

	// ChainHealOnKill is HP restored per chain kill under Static Ward
	ChainHealOnKill = 4.0
)
