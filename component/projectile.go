package component

import "github.com/lixenwraith/stardrift/vmath"

// Bullet is a straight-line projectile, expires on first hit or when Life runs out
type Bullet struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
	Life   float64
	Damage float64
	Splash bool
	Source *Weapon
}

// Missile is a seeking projectile
type Missile struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Speed  float64
	Damage float64
	Life   float64
	Source *Weapon

	// Phase offsets guardian missiles on their shared orbit
	Phase float64
}

// PulseKind distinguishes damage rings from heal zones
type PulseKind uint8

const (
	PulseDamage PulseKind = iota
	PulseHeal
)

// Pulse is an area burst; damage pulses resolve once, heal zones tick
type Pulse struct {
	Kind   PulseKind
	Pos    vmath.Vec2
	Radius float64
	Damage float64
	Slow   float64
	Life   float64
	Fired  bool
	Source *Weapon
}

// Well is a gravity zone
type Well struct {
	Pos    vmath.Vec2
	Radius float64
	Life   float64
	DPS    float64
	Burst  bool
	Source *Weapon
}

// EffectKind selects effect semantics
type EffectKind uint8

const (
	EffectLightning EffectKind = iota
	EffectVacuum
)

// Effect is a visual record; vacuum effects also drive loot toward the player
type Effect struct {
	Kind    EffectKind
	Life    float64
	From    vmath.Vec2
	Targets []vmath.Vec2
}
