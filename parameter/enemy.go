package parameter

// Enemy scaling over elapsed run time
const (
	// EnemyHPPerSecond is added to spawn hp per second of run time
	EnemyHPPerSecond = 0.2

	// EnemySpeedPerSecond is added to spawn speed per second of run time
	EnemySpeedPerSecond = 0.02

	// ZoneDifficultyHPStep scales hp per difficulty tier above 1
	ZoneDifficultyHPStep = 0.25
)

// Enemy behavior
const (
	// EnemyContactCooldown paces contact damage per enemy (seconds)
	EnemyContactCooldown = 0.8

	// EnemySlowFactor multiplies speed while slowed
	EnemySlowFactor = 0.5

	// EnemyCullDistance removes enemies that drift too far from the player
	EnemyCullDistance = 900.0

	// StunDuration is seconds of stun from Stun Conduit
	StunDuration = 0.5

	// SlowDuration is seconds of slow from frost and Static Ward
	SlowDuration = 0.6
)

// Spawn director
const (
	SpawnInitialRate = 1.2
	SpawnMinRate     = 0.3
	SpawnRateStep    = 0.01

	// SpawnDistanceMin is the closest ring a new enemy appears on
	SpawnDistanceMin = 220.0

	// SpawnDistanceSpread is added uniformly on top of SpawnDistanceMin
	SpawnDistanceSpread = 120.0
)
