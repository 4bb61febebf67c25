package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host render/tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickStep is the largest simulated step in seconds, bounds catch-up work after a stall
	MaxTickStep = 0.05
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)

// Priorities define system update order within a tick, lower runs first
const (
	PriorityPlayer  = 10
	PrioritySpawn   = 20
	PriorityWeapon  = 30
	PriorityBullet  = 40
	PriorityMissile = 50
	PriorityOrbit   = 60
	PriorityEnemy   = 70
	PriorityBeam    = 80
	PriorityLoot    = 90
	PriorityDrone   = 100
	PriorityPulse   = 110
	PriorityWell    = 120
	PriorityEffect  = 130
	PriorityCull    = 200
)
