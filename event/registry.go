package event

var typeNames = map[EventType]string{
	EventShot:            "shot",
	EventEnemyKilled:     "enemy_killed",
	EventXPCollected:     "xp_collected",
	EventPlayerHit:       "player_hit",
	EventLevelUp:         "level_up",
	EventChoiceResolved:  "choice_resolved",
	EventOverlockApplied: "overlock_applied",
	EventRunEnded:        "run_ended",
}

// String returns the log name of the event type
func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}
