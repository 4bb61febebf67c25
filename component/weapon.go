package component

import (
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/vmath"
)

// Weapon is an owned weapon instance and its kind-specific runtime state
type Weapon struct {
	ID       content.WeaponID
	Level    int
	Cooldown float64

	// Orbit bodies, recomputed each tick
	OrbCount    int
	OrbitRadius float64
	OrbitSpeed  float64
	OrbitAngle  float64

	// Beam descriptor, nil until the first update
	Beam      *Beam
	RingAngle float64
	RingSpeed float64

	Drones []*Drone

	// Overlock is nil until granted and never reassigned
	Overlock *OverlockAssignment

	// LootBonus adds currency to kills credited to this weapon
	LootBonus bool
}

// NewWeapon returns a level 1 weapon ready to fire
func NewWeapon(id content.WeaponID) *Weapon {
	return &Weapon{ID: id, Level: 1}
}

// Has reports whether the weapon's Overlock carries flag
func (w *Weapon) Has(flag OverlockFlag) bool {
	return w != nil && w.Overlock != nil && w.Overlock.Flags.Has(flag)
}

// Beam is the recomputed cutting beam state
type Beam struct {
	Range float64
	DPS   float64
	Ring  bool
}

// DroneState is the escort state machine phase
type DroneState uint8

const (
	DroneIdle DroneState = iota
	DroneDive
)

// Drone is one escort unit of a drone weapon
type Drone struct {
	Pos      vmath.Vec2
	State    DroneState
	Angle    float64
	Cooldown float64
	HP       int
	Target   *Enemy
}
