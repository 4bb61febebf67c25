package system

import (
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
)

// LootSystem pulls orbs inside the pickup field and collects those that reach the ship
type LootSystem struct{}

func NewLootSystem() *LootSystem { return &LootSystem{} }

func (s *LootSystem) Name() string  { return "loot" }
func (s *LootSystem) Priority() int { return parameter.PriorityLoot }

func (s *LootSystem) Update(run *engine.Run, dt float64) {
	field := PickupField(run)
	pullSpeed := parameter.PullSpeedBase + run.Totals.PickupRadius*parameter.PullSpeedPerPickup
	xpMult := 1 + run.Totals.XPPct/100

	for _, o := range run.Orbs {
		d := o.Pos.Dist(run.Player.Pos)
		if d < field+parameter.PickupPadding {
			o.Pulled = true
		}
		if o.Pulled {
			o.Pos = o.Pos.MoveToward(run.Player.Pos, pullSpeed*dt)
		}
		if d < parameter.CollectRadius {
			gain := o.XP * xpMult
			run.XP += gain
			run.CurrencyEarned += o.Currency
			o.Collected = true
			run.Emit(event.EventXPCollected, &event.XPCollectedPayload{XP: gain, Currency: o.Currency})
		}
	}

	run.Orbs = compact(run.Orbs, func(o *component.LootOrb) bool { return !o.Collected })
}

// PickupField is the pickup radius including passives and the collector variant
func PickupField(run *engine.Run) float64 {
	r := parameter.PlayerBasePickupRadius + run.Totals.PickupRadius
	if run.AnyWeaponHas(component.FlagCollect) {
		r *= parameter.CollectorPickupMult
	}
	return r
}
