package system

import (
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/stat"
)

// Power is the per-tick scaling context of one weapon
type Power struct {
	Def          content.WeaponDef
	Base         content.WeaponBase
	Level        int
	DamageMult   float64
	AreaMult     float64
	CooldownMult float64
	ProjBonus    int
}

// ResolvePower builds the scaling context, false when the weapon is not in the catalog
func ResolvePower(run *engine.Run, w *component.Weapon) (Power, bool) {
	def, ok := run.Catalog.Weapon(w.ID)
	if !ok {
		return Power{}, false
	}
	t := run.Totals
	return Power{
		Def:          def,
		Base:         def.Base,
		Level:        w.Level,
		DamageMult:   t.DamageMult(),
		AreaMult:     t.AreaMult(),
		CooldownMult: t.CooldownMult(),
		ProjBonus:    t.ProjectileBonus(),
	}, true
}

// Scaled applies the level table to a base value
func (p Power) Scaled(base float64) float64 {
	return stat.Scale(base, p.Level)
}

// LevelBonus returns 1 when the weapon has reached threshold
func (p Power) LevelBonus(threshold int) int {
	if p.Level >= threshold {
		return 1
	}
	return 0
}
