package event

// EventType represents the type of run event
type EventType int

const (
	// EventShot signals a weapon discharge
	// Trigger: direct-fire and seeking weapon behaviors
	// Consumer: audio (throttled shot cue) | Payload: *ShotPayload
	EventShot EventType = iota + 1

	// EventEnemyKilled signals an enemy crossing hp ≤ 0
	// Trigger: combat resolver
	// Consumer: telemetry | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventXPCollected signals a loot orb reaching the player
	// Trigger: loot system
	// Consumer: audio | Payload: *XPCollectedPayload
	EventXPCollected

	// EventPlayerHit signals contact damage reaching hull or being absorbed
	// Trigger: combat player damage
	// Consumer: audio, render shake | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventLevelUp signals a level threshold crossed
	// Trigger: progression check
	// Consumer: audio, telemetry | Payload: *LevelUpPayload
	EventLevelUp

	// EventChoiceResolved signals an overlay choice being applied
	// Trigger: simulation Choose
	// Consumer: audio (click) | Payload: *ChoiceResolvedPayload
	EventChoiceResolved

	// EventOverlockApplied signals a weapon receiving its variant
	// Trigger: overlock protocol
	// Consumer: telemetry, log | Payload: *OverlockAppliedPayload
	EventOverlockApplied

	// EventRunEnded signals the run reaching a terminal state and its settlement
	// Trigger: player death or abandon
	// Consumer: store, telemetry, audio | Payload: *RunEndedPayload
	EventRunEnded
)

// GameEvent represents a single run event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Time    float64 // Run time at emission
}
