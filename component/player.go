package component

import (
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Player is the controlled ship
type Player struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Dir    vmath.Vec2 // Unit facing, never zero
	Radius float64

	HP        float64
	MaxHP     float64
	Regen     float64 // HP per second
	MoveSpeed float64

	// Shield absorbs hits before HP, recharges after ShieldDelay reaches zero
	Shield      float64
	ShieldMax   float64
	ShieldDelay float64
}

// NewPlayer returns a ship at the origin facing up with base attributes
func NewPlayer() Player {
	return Player{
		Dir:       vmath.Vec2{X: 0, Y: -1},
		Radius:    parameter.PlayerRadius,
		HP:        parameter.PlayerBaseMaxHP,
		MaxHP:     parameter.PlayerBaseMaxHP,
		MoveSpeed: parameter.PlayerBaseMoveSpeed,
	}
}

// SetDerived applies aggregated attributes, HP stays within the new max
func (p *Player) SetDerived(maxHP, regen, moveSpeed float64) {
	p.MaxHP = maxHP
	p.Regen = regen
	p.MoveSpeed = moveSpeed
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
}

// Heal adds HP clamped to MaxHP
func (p *Player) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	p.HP = min(p.MaxHP, p.HP+amount)
}

// Shake is cosmetic camera shake state
type Shake struct {
	Time      float64
	Magnitude float64
}
