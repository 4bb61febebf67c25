// Package stat folds owned passive levels into flat totals and player attributes
package stat

import (
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/parameter"
)

// Totals is the aggregate of every owned passive, one field per stat id
type Totals struct {
	DamagePct       float64
	CooldownPct     float64
	ProjectileCount float64
	AreaPct         float64
	MaxHP           float64
	Regen           float64
	MoveSpeed       float64
	LifeSteal       float64
	PickupRadius    float64
	XPPct           float64
	StarbitsPct     float64
	ExtraChoice     float64
}

// Attributes receives the derived player values
type Attributes interface {
	SetDerived(maxHP, regen, moveSpeed float64)
}

// Aggregate sums perLevel × level across owned passives
// Unknown stat ids contribute nothing
func Aggregate(cat *content.Catalog, passives map[content.StatID]int) Totals {
	var t Totals
	for id, lvl := range passives {
		def, ok := cat.Stat(id)
		if !ok || lvl <= 0 {
			continue
		}
		if p := t.field(id); p != nil {
			*p += def.PerLevel * float64(lvl)
		}
	}
	if t.ExtraChoice > parameter.ExtraChoiceCap {
		t.ExtraChoice = parameter.ExtraChoiceCap
	}
	return t
}

func (t *Totals) field(id content.StatID) *float64 {
	switch id {
	case content.DamagePct:
		return &t.DamagePct
	case content.CooldownPct:
		return &t.CooldownPct
	case content.ProjectileCount:
		return &t.ProjectileCount
	case content.AreaPct:
		return &t.AreaPct
	case content.MaxHP:
		return &t.MaxHP
	case content.Regen:
		return &t.Regen
	case content.MoveSpeed:
		return &t.MoveSpeed
	case content.LifeSteal:
		return &t.LifeSteal
	case content.PickupRadius:
		return &t.PickupRadius
	case content.XPPct:
		return &t.XPPct
	case content.StarbitsPct:
		return &t.StarbitsPct
	case content.ExtraChoice:
		return &t.ExtraChoice
	}
	return nil
}

// Apply re-derives max HP, regen and move speed from base constants
func (t Totals) Apply(a Attributes) {
	a.SetDerived(
		parameter.PlayerBaseMaxHP+t.MaxHP,
		t.Regen,
		parameter.PlayerBaseMoveSpeed*(1+t.MoveSpeed/100),
	)
}

// DamageMult is the outgoing damage multiplier
func (t Totals) DamageMult() float64 { return 1 + t.DamagePct/100 }

// AreaMult is the radius/range multiplier
func (t Totals) AreaMult() float64 { return 1 + t.AreaPct/100 }

// CooldownMult shortens cooldowns, 1/(1+cd%)
func (t Totals) CooldownMult() float64 { return 1 / (1 + t.CooldownPct/100) }

// ProjectileBonus is the whole number of extra projectiles
func (t Totals) ProjectileBonus() int { return int(t.ProjectileCount) }

// ChoiceBonus is the applied extra_choice bonus, already clamped
func (t Totals) ChoiceBonus() int { return int(t.ExtraChoice) }

// LevelScale returns the weapon level multiplier
// Levels below 1 use the first entry, levels above the table reuse the last
func LevelScale(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > len(parameter.WeaponLevelScale) {
		level = len(parameter.WeaponLevelScale)
	}
	return parameter.WeaponLevelScale[level-1]
}

// Scale applies LevelScale to a base value
func Scale(base float64, level int) float64 {
	return base * LevelScale(level)
}
