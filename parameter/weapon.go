package parameter

// Front laser
const (
	LaserSpawnOffset   = 8.0
	LaserBulletSpeed   = 180.0
	LaserBulletRadius  = 3.0
	LaserBulletLife    = 1.2
	LaserSpreadBase    = 0.22
	LaserSpreadPerShot = 0.02
	LaserBonusLevel    = 4

	// LaserFastCooldown and LaserHeavyMult are Overlock modifiers
	LaserFastCooldown = 0.6
	LaserHeavyMult    = 1.4

	// SplashRadius and SplashFraction apply to Prism Barrage hits
	SplashRadius   = 26.0
	SplashFraction = 0.4
)

// Orbit orbs
const (
	OrbContactPadding  = 6.0
	OrbSpinFactor      = 2.0
	OrbLevelDivisor    = 3
	OrbTripleMult      = 3
	PlateRadiusBase    = 22.0
	PlateRadiusPerArea = 0.2
)

// Homing missiles
const (
	MissileSeekRange     = 240.0
	MissileSpeed         = 140.0
	MissileLife          = 3.2
	MissileLaunchJitter  = 20.0
	MissileImpactPadding = 6.0
	MissileBonusLevel    = 4

	// GuardianOrbitRadius and GuardianSpin lock Guardian Interceptors around the ship
	GuardianOrbitRadius = 22.0
	GuardianSpin        = 2.0

	// Cluster Hounds fragments
	ClusterFragments     = 5
	ClusterFragmentSpeed = 140.0
	ClusterFragmentLife  = 0.8
	ClusterFragmentShare = 0.35
)

// Cutting beam
const (
	BeamWidthBase      = 10.0
	BeamWidthPerArea   = 0.08
	RingRadiusBase     = 26.0
	RingRadiusPerArea  = 0.2
	RingSpeedBase      = 1.1
	RingSpeedPerMove   = 1.0 / 120.0
	RingContactPadding = 6.0
)

// Chain lightning
const (
	ChainLongRangeMult = 1.4
	ChainNearRadius    = 120.0
	ChainBonusLevel    = 5
	LightningFlashTime = 0.12
)

// Kamikaze drones
const (
	DroneOrbitRadius   = 24.0
	DroneSpin          = 1.8
	DroneDiveSpeed     = 170.0
	DroneImpactPadding = 6.0
	DroneBonusLevel    = 4
	DroneHP            = 1

	// Gun Drones
	DroneGunRange    = 140.0
	DroneGunCooldown = 0.6
	DroneGunDamage   = 12.0
	DroneBulletSpeed = 200.0

	// DroneHealRate is HP per second per Repair Drone
	DroneHealRate = 0.8
)

// Shockwave pulse
const (
	PulseLife       = 0.2
	PulseWeakMult   = 0.7
	MedFieldScale   = 0.6
	MedFieldLife    = 5.0
	MedFieldHealHPS = 2.2
)

// Gravity well
const (
	WellScatter        = 40.0
	WellPullStrength   = 40.0
	WellBurstMult      = 2.2
	WellCooldownBase   = 2.5
	VacuumCooldownMult = 2.4
	VacuumLife         = 1.0
)
