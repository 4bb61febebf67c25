package event

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/vmath"
)

// ShotPayload identifies the firing weapon
type ShotPayload struct {
	Weapon content.WeaponID
}

// EnemyKilledPayload carries the kill reward
type EnemyKilledPayload struct {
	Kind     content.EnemyKind
	Pos      vmath.Vec2
	XP       float64
	Currency int
	Marked   bool
	Source   content.WeaponID // Empty for sourceless damage
}

// XPCollectedPayload carries the applied orb value
type XPCollectedPayload struct {
	XP       float64
	Currency int
}

// PlayerHitPayload describes incoming damage
type PlayerHitPayload struct {
	Amount   float64
	HP       float64
	Absorbed bool // Shield or plate took the hit
}

// LevelUpPayload carries the new level
type LevelUpPayload struct {
	Level    int
	Overlock bool
}

// ChoiceResolvedPayload identifies the chosen overlay entry
type ChoiceResolvedPayload struct {
	Overlay string
	Label   string
}

// OverlockAppliedPayload identifies the granted variant
type OverlockAppliedPayload struct {
	Weapon  content.WeaponID
	Variant content.Category
	Name    string
}

// RunEndedPayload carries the settled run
type RunEndedPayload struct {
	RunID  uuid.UUID
	Zone   content.ZoneID
	Time   float64
	Kills  int
	Level  int
	Earned int
	Died   bool
}
