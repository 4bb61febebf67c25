package content

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/stardrift/parameter"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// ErrIncomplete reports a catalog that fails content completeness checks
var ErrIncomplete = errors.New("catalog incomplete")

// Catalog is the immutable set of content tables shared by all runs
type Catalog struct {
	weapons []WeaponDef
	stats   []StatDef
	zones   []Zone
	enemies []EnemyDef
	rarity  map[Rarity]int

	weaponIndex map[WeaponID]int
	statIndex   map[StatID]int
	zoneIndex   map[ZoneID]int
}

type document struct {
	Rarity  map[Rarity]int `yaml:"rarity"`
	Stats   []StatDef      `yaml:"stats"`
	Weapons []WeaponDef    `yaml:"weapons"`
	Zones   []Zone         `yaml:"zones"`
	Enemies []EnemyDef     `yaml:"enemies"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog, panics if the embedded document is invalid
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	c := &Catalog{
		weapons:     doc.Weapons,
		stats:       doc.Stats,
		zones:       doc.Zones,
		enemies:     doc.Enemies,
		rarity:      doc.Rarity,
		weaponIndex: make(map[WeaponID]int, len(doc.Weapons)),
		statIndex:   make(map[StatID]int, len(doc.Stats)),
		zoneIndex:   make(map[ZoneID]int, len(doc.Zones)),
	}
	if c.rarity == nil {
		c.rarity = map[Rarity]int{}
	}

	for i, s := range c.stats {
		if _, dup := c.statIndex[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate stat %q", ErrIncomplete, s.ID)
		}
		c.statIndex[s.ID] = i
	}

	for i := range c.weapons {
		w := &c.weapons[i]
		if _, dup := c.weaponIndex[w.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate weapon %q", ErrIncomplete, w.ID)
		}
		// Every weapon must carry all three variants, the Overlock protocol depends on it
		for _, cat := range Categories {
			v, ok := w.Overlock[cat.String()]
			if !ok || v.Name == "" {
				return nil, fmt.Errorf("%w: weapon %q missing %s variant", ErrIncomplete, w.ID, cat)
			}
			w.variants[cat] = v
		}
		for _, sid := range w.ScalesWith {
			if _, ok := c.statIndex[sid]; !ok {
				return nil, fmt.Errorf("%w: weapon %q scales with unknown stat %q", ErrIncomplete, w.ID, sid)
			}
		}
		c.weaponIndex[w.ID] = i
	}

	for i, z := range c.zones {
		if _, dup := c.zoneIndex[z.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate zone %q", ErrIncomplete, z.ID)
		}
		c.zoneIndex[z.ID] = i
	}

	if len(c.weapons) == 0 || len(c.zones) == 0 || len(c.enemies) == 0 {
		return nil, fmt.Errorf("%w: weapons, zones and enemies must be non-empty", ErrIncomplete)
	}

	return c, nil
}

// Weapon resolves a weapon definition
func (c *Catalog) Weapon(id WeaponID) (WeaponDef, bool) {
	i, ok := c.weaponIndex[id]
	if !ok {
		return WeaponDef{}, false
	}
	return c.weapons[i], true
}

// Weapons returns weapon definitions in catalog order
func (c *Catalog) Weapons() []WeaponDef {
	return c.weapons
}

// Stat resolves a stat definition
func (c *Catalog) Stat(id StatID) (StatDef, bool) {
	i, ok := c.statIndex[id]
	if !ok {
		return StatDef{}, false
	}
	return c.stats[i], true
}

// Stats returns stat definitions in catalog order
func (c *Catalog) Stats() []StatDef {
	return c.stats
}

// Variant resolves an Overlock variant of a weapon
func (c *Catalog) Variant(weapon WeaponID, cat Category) (VariantDef, bool) {
	i, ok := c.weaponIndex[weapon]
	if !ok || int(cat) >= len(Categories) {
		return VariantDef{}, false
	}
	return c.weapons[i].variants[cat], true
}

// Zone resolves a zone
func (c *Catalog) Zone(id ZoneID) (Zone, bool) {
	i, ok := c.zoneIndex[id]
	if !ok {
		return Zone{}, false
	}
	return c.zones[i], true
}

// Zones returns zones in catalog order, the first is the default selection
func (c *Catalog) Zones() []Zone {
	return c.zones
}

// Enemies returns enemy archetypes
func (c *Catalog) Enemies() []EnemyDef {
	return c.enemies
}

// RarityWeight returns the offer weight of a rarity tier
func (c *Catalog) RarityWeight(r Rarity) int {
	if w, ok := c.rarity[r]; ok {
		return w
	}
	return parameter.DefaultRarityWeight
}
