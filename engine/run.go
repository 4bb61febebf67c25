package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/stat"
	"github.com/lixenwraith/stardrift/vmath"
)

// OverlockState is run-wide state mutated by variant application
type OverlockState struct {
	// PendingWeapon is set between weapon and variant selection
	PendingWeapon content.WeaponID

	// DrainBoost multiplies life steal inside gravity wells, 0 when inactive
	DrainBoost float64

	// Mirror Plate negation
	PlateArmed bool
	PlateReady bool
	PlateTimer float64

	// PickupBonus is flat pickup radius re-added on every recompute
	PickupBonus float64
}

// Settings are per-run copies of persisted preferences
type Settings struct {
	ScreenShake bool
}

// RunOptions configures a new run
type RunOptions struct {
	WeaponSlots  int
	PassiveSlots int
	Settings     Settings
	Seed         uint64
	Events       *event.Queue
}

// Run is one playthrough, owned by a single goroutine
type Run struct {
	ID      uuid.UUID
	Catalog *content.Catalog
	Zone    content.Zone

	Time     float64
	Kills    int
	Level    int
	XP       float64
	XPToNext int

	Player component.Player

	// Move is the latest input vector, magnitude ≤ 1
	Move vmath.Vec2

	Enemies  []*component.Enemy
	Bullets  []*component.Bullet
	Missiles []*component.Missile
	Orbs     []*component.LootOrb
	Pulses   []*component.Pulse
	Wells    []*component.Well
	Effects  []*component.Effect

	Passives     map[content.StatID]int
	Weapons      []*component.Weapon
	WeaponSlots  int
	PassiveSlots int
	Totals       stat.Totals

	Overlay  *Overlay
	Overlock OverlockState

	// CurrencyEarned accumulates loot currency, replaced by the settled total at run end
	CurrencyEarned int
	Active         bool
	Died           bool

	Settings Settings
	Shake    component.Shake

	SpawnTimer float64
	SpawnRate  float64

	// Rand drives gameplay draws
	Rand *vmath.FastRand

	Events *event.Queue
}

// NewRun starts a run in zone with the starting loadout
func NewRun(cat *content.Catalog, zone content.Zone, opts RunOptions) *Run {
	if opts.WeaponSlots <= 0 {
		opts.WeaponSlots = parameter.SlotBase
	}
	if opts.PassiveSlots <= 0 {
		opts.PassiveSlots = parameter.SlotBase
	}
	if opts.Events == nil {
		opts.Events = event.NewQueue()
	}
	rng := vmath.NewFastRand(opts.Seed)

	r := &Run{
		ID:           uuid.New(),
		Catalog:      cat,
		Zone:         zone,
		Level:        1,
		XPToNext:     parameter.XPThresholdBase,
		Player:       component.NewPlayer(),
		Passives:     make(map[content.StatID]int),
		Weapons:      []*component.Weapon{component.NewWeapon(content.FrontLaser)},
		WeaponSlots:  opts.WeaponSlots,
		PassiveSlots: opts.PassiveSlots,
		Active:       true,
		Settings:     opts.Settings,
		SpawnRate:    parameter.SpawnInitialRate,
		Rand:         rng,
		Events:       opts.Events,
	}
	r.Recompute()
	return r
}

// Recompute refreshes aggregated totals and derived player attributes
func (r *Run) Recompute() {
	r.Totals = stat.Aggregate(r.Catalog, r.Passives)
	r.Totals.PickupRadius += r.Overlock.PickupBonus
	r.Totals.Apply(&r.Player)
}

// Emit pushes an event stamped with run time
func (r *Run) Emit(t event.EventType, payload any) {
	if r.Events == nil {
		return
	}
	r.Events.Emit(t, payload, r.Time)
}

// Weapon returns the owned weapon with id
func (r *Run) Weapon(id content.WeaponID) *component.Weapon {
	for _, w := range r.Weapons {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// AnyWeaponHas reports whether an owned weapon carries flag
func (r *Run) AnyWeaponHas(flag component.OverlockFlag) bool {
	for _, w := range r.Weapons {
		if w.Has(flag) {
			return true
		}
	}
	return false
}

// OwnedCategories returns the categories of owned passives
func (r *Run) OwnedCategories() content.CategorySet {
	var set content.CategorySet
	for id, lvl := range r.Passives {
		if lvl <= 0 {
			continue
		}
		if def, ok := r.Catalog.Stat(id); ok {
			set = set.With(def.Category)
		}
	}
	return set
}

// Paused reports whether ticks are currently ignored
func (r *Run) Paused() bool {
	return r.Overlay != nil || !r.Active
}
