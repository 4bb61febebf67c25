package parameter

// Player base attributes, passives add on top
const (
	// PlayerBaseMaxHP is max HP before the max_hp passive
	PlayerBaseMaxHP = 120.0

	// PlayerBaseMoveSpeed is world units per second before the move_speed passive
	PlayerBaseMoveSpeed = 78.0

	// PlayerBasePickupRadius is loot pull radius before the pickup_radius passive
	PlayerBasePickupRadius = 34.0

	// PlayerRadius is the contact radius of the ship
	PlayerRadius = 10.0
)

// Shields
const (
	// ShieldRechargeDelay is seconds without damage before the shield refills
	ShieldRechargeDelay = 7.0

	// ShieldRechargeRate is the fraction of ShieldMax restored per second
	ShieldRechargeRate = 0.2

	// ShieldCoreFraction sizes the Aegis Shield Core from max HP
	ShieldCoreFraction = 0.3

	// PlateRearmDelay is seconds before Mirror Plate negates another hit
	PlateRearmDelay = 4.0
)

// Screen shake (cosmetic only)
const (
	ShakeDuration  = 0.2
	ShakeMagnitude = 4.0
)
