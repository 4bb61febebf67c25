package progression

import (
	"fmt"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

type entryKind uint8

const (
	entryNewWeapon entryKind = iota
	entryWeaponLevel
	entryStat
)

type entry struct {
	kind   entryKind
	weight int
	stat   int // index into the eligible stat list
}

// candidates holds the not-yet-offered material of one draw session
type candidates struct {
	fresh      []content.WeaponDef
	upgradable []*component.Weapon
	stats      []content.StatDef
	canAdd     bool
}

// BuildChoices draws distinct upgrades by weight without replacement
// The count is 3 plus the extra choice bonus, fewer when candidates run out
func BuildChoices(run *engine.Run, rng *vmath.FastRand) []engine.Choice {
	cat := run.Catalog
	c := gather(run)
	want := parameter.BaseChoiceCount + run.Totals.ChoiceBonus()

	choices := make([]engine.Choice, 0, want)
	pool := make([]entry, 0, len(c.stats)+2)
	for len(choices) < want {
		pool = pool[:0]
		if c.canAdd && len(c.fresh) > 0 {
			pool = append(pool, entry{kind: entryNewWeapon, weight: parameter.NewWeaponWeight})
		}
		if len(c.upgradable) > 0 {
			pool = append(pool, entry{kind: entryWeaponLevel, weight: parameter.WeaponLevelWeight})
		}
		for i, s := range c.stats {
			pool = append(pool, entry{kind: entryStat, weight: cat.RarityWeight(s.Rarity), stat: i})
		}
		if len(pool) == 0 {
			break
		}

		switch e := draw(pool, rng); e.kind {
		case entryNewWeapon:
			i := rng.Intn(len(c.fresh))
			def := c.fresh[i]
			c.fresh = removeAt(c.fresh, i)
			choices = append(choices, engine.Choice{
				Label:  "New Weapon: " + def.Name,
				Desc:   def.Notes,
				Action: engine.NewWeapon{Weapon: def.ID},
			})
		case entryWeaponLevel:
			i := rng.Intn(len(c.upgradable))
			w := c.upgradable[i]
			c.upgradable = removeAt(c.upgradable, i)
			name := string(w.ID)
			if def, ok := cat.Weapon(w.ID); ok {
				name = def.Name
			}
			choices = append(choices, engine.Choice{
				Label:  "Upgrade Weapon: " + name,
				Desc:   fmt.Sprintf("Level %d → %d", w.Level, w.Level+1),
				Action: engine.WeaponLevel{Weapon: w.ID},
			})
		case entryStat:
			s := c.stats[e.stat]
			c.stats = removeAt(c.stats, e.stat)
			choices = append(choices, engine.Choice{
				Label:  "Passive: " + s.Name,
				Desc:   s.Category.String(),
				Action: engine.Passive{Stat: s.ID},
			})
		}
	}
	return choices
}

func gather(run *engine.Run) candidates {
	var c candidates
	c.canAdd = len(run.Weapons) < run.WeaponSlots
	for _, def := range run.Catalog.Weapons() {
		if run.Weapon(def.ID) == nil {
			c.fresh = append(c.fresh, def)
		}
	}
	for _, w := range run.Weapons {
		if w.Level < parameter.WeaponMaxLevel {
			c.upgradable = append(c.upgradable, w)
		}
	}

	owned := 0
	for _, lvl := range run.Passives {
		if lvl > 0 {
			owned++
		}
	}
	slotsFull := owned >= run.PassiveSlots
	for _, s := range run.Catalog.Stats() {
		lvl := run.Passives[s.ID]
		if s.Max > 0 && lvl >= s.Max {
			continue
		}
		if slotsFull && lvl == 0 {
			continue
		}
		c.stats = append(c.stats, s)
	}
	return c
}

func draw(pool []entry, rng *vmath.FastRand) entry {
	total := 0
	for _, e := range pool {
		total += e.weight
	}
	roll := rng.Intn(total)
	for _, e := range pool {
		if roll < e.weight {
			return e
		}
		roll -= e.weight
	}
	return pool[len(pool)-1]
}

func removeAt[T any](s []T, i int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
