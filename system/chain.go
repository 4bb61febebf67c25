package system

import (
	"github.com/lixenwraith/stardrift/combat"
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// chainBehavior resolves a lightning chain on cooldown
type chainBehavior struct{}

func (chainBehavior) Update(run *engine.Run, w *component.Weapon, p Power, dt float64) {
	if w.Cooldown > 0 {
		return
	}

	rng := p.Base.Range
	if w.Has(component.FlagLongRange) {
		rng *= parameter.ChainLongRangeMult
	}
	links := p.Base.Chains + p.ProjBonus + p.LevelBonus(parameter.ChainBonusLevel)
	damage := p.Scaled(p.Base.Damage) * p.DamageMult

	targets := ChainTargets(run, run.Player.Pos, rng, links, w.Has(component.FlagNearOnly))

	var extras combat.Extras
	if w.Has(component.FlagTag) {
		extras.Mark = parameter.MarkValue
	}
	for _, t := range targets {
		killed := combat.ApplyDamage(run, t, damage, w, extras)
		if w.Has(component.FlagStun) {
			t.Stun = max(t.Stun, parameter.StunDuration)
		}
		if w.Has(component.FlagSlow) {
			t.Slow = max(t.Slow, parameter.SlowDuration)
		}
		if killed && w.Has(component.FlagHealOnKill) {
			run.Player.Heal(parameter.ChainHealOnKill)
		}
	}

	if len(targets) > 0 {
		points := make([]vmath.Vec2, len(targets))
		for i, t := range targets {
			points[i] = t.Pos
		}
		run.Effects = append(run.Effects, &component.Effect{
			Kind:    component.EffectLightning,
			Life:    parameter.LightningFlashTime,
			From:    run.Player.Pos,
			Targets: points,
		})
	}

	w.Cooldown = p.Base.Cooldown * p.CooldownMult
}

// ChainTargets walks nearest unvisited enemies starting from origin
// The first link may be restricted to the near radius, later links are not
func ChainTargets(run *engine.Run, origin vmath.Vec2, rng float64, links int, nearOnly bool) []*component.Enemy {
	var targets []*component.Enemy
	visited := make(map[*component.Enemy]bool, links)

	current := run.NearestEnemy(origin, rng, nearOnly, nil)
	for current != nil && len(targets) < links {
		targets = append(targets, current)
		visited[current] = true
		current = run.NearestEnemy(current.Pos, rng, false, visited)
	}
	return targets
}
