// Package combat resolves damage between weapons, enemies and the player
package combat

import (
	"math"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
)

// Extras are hit modifiers applied to the enemy before the kill check
type Extras struct {
	Mark        int
	InDrainZone bool
}

// ApplyDamage subtracts amount from enemy HP and resolves life steal and kill rewards
// Returns true when this hit killed the enemy
func ApplyDamage(run *engine.Run, enemy *component.Enemy, amount float64, source *component.Weapon, extras Extras) bool {
	if enemy.HP <= 0 {
		return false
	}

	enemy.HP -= amount
	enemy.LastHit = source
	if extras.Mark > 0 {
		enemy.Mark = extras.Mark
	}

	if lifeSteal := run.Totals.LifeSteal / 100; lifeSteal > 0 && amount > 0 {
		boost := 1.0
		if extras.InDrainZone && run.Overlock.DrainBoost > 0 {
			boost = run.Overlock.DrainBoost
		}
		run.Player.Heal(amount * lifeSteal * boost)
	}

	if enemy.HP > 0 {
		return false
	}

	run.Kills++
	xp := float64(parameter.KillXPBase) + math.Floor(float64(run.Level)*parameter.KillXPPerLevel)
	currency := 0
	marked := enemy.Mark > 0
	if marked {
		xp += parameter.MarkXPBonus
		currency += parameter.MarkCurrencyBonus
	}
	if source != nil && source.LootBonus {
		currency += parameter.LootBonusCurrency
	}

	run.Orbs = append(run.Orbs, &component.LootOrb{
		Pos:      enemy.Pos,
		XP:       xp,
		Currency: currency,
	})

	payload := &event.EnemyKilledPayload{
		Kind:     enemy.Kind,
		Pos:      enemy.Pos,
		XP:       xp,
		Currency: currency,
		Marked:   marked,
	}
	if source != nil {
		payload.Source = source.ID
	}
	run.Emit(event.EventEnemyKilled, payload)
	return true
}

// DamagePlayer routes contact damage through shield, plate and hull
// Hull reaching zero ends the run
func DamagePlayer(run *engine.Run, amount float64) {
	p := &run.Player

	if p.Shield > 0 {
		p.Shield = max(0, p.Shield-amount)
		p.ShieldDelay = parameter.ShieldRechargeDelay
		run.Emit(event.EventPlayerHit, &event.PlayerHitPayload{Amount: amount, HP: p.HP, Absorbed: true})
		return
	}

	if run.Overlock.PlateReady {
		run.Overlock.PlateReady = false
		run.Overlock.PlateTimer = parameter.PlateRearmDelay
		run.Emit(event.EventPlayerHit, &event.PlayerHitPayload{Amount: amount, HP: p.HP, Absorbed: true})
		return
	}

	p.HP -= amount
	p.ShieldDelay = parameter.ShieldRechargeDelay
	if run.Settings.ScreenShake {
		run.Shake = component.Shake{Time: parameter.ShakeDuration, Magnitude: parameter.ShakeMagnitude}
	}
	if p.HP <= 0 {
		p.HP = 0
	}
	run.Emit(event.EventPlayerHit, &event.PlayerHitPayload{Amount: amount, HP: p.HP})

	if p.HP == 0 {
		run.Finish(true)
	}
}
