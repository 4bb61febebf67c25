package content

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// WeaponID identifies a weapon kind
type WeaponID string

const (
	FrontLaser     WeaponID = "front_laser"
	OrbitOrbs      WeaponID = "orbit_orbs"
	HomingMissiles WeaponID = "homing_missiles"
	CuttingBeam    WeaponID = "cutting_beam"
	ChainLightning WeaponID = "chain_lightning"
	KamikazeDrones WeaponID = "kamikaze_drones"
	ShockwavePulse WeaponID = "shockwave_pulse"
	GravityWell    WeaponID = "gravity_well"
)

// StatID identifies a passive stat
type StatID string

const (
	DamagePct       StatID = "damage_pct"
	CooldownPct     StatID = "cooldown_pct"
	ProjectileCount StatID = "projectile_count"
	AreaPct         StatID = "area_pct"
	MaxHP           StatID = "max_hp"
	Regen           StatID = "regen"
	MoveSpeed       StatID = "move_speed"
	LifeSteal       StatID = "life_steal"
	PickupRadius    StatID = "pickup_radius"
	XPPct           StatID = "xp_pct"
	StarbitsPct     StatID = "starbits_pct"
	ExtraChoice     StatID = "extra_choice"
)

// Category groups passive stats and keys Overlock variants
type Category uint8

const (
	Assault Category = iota
	Aegis
	Prospector
)

// Categories lists all categories in offer order
var Categories = [...]Category{Assault, Aegis, Prospector}

var categoryNames = [...]string{"assault", "aegis", "prospector"}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", c)
}

// ParseCategory accepts category names case-insensitively
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

func (c *Category) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseCategory(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategorySet is a bitmask of owned categories
type CategorySet uint8

func (s CategorySet) With(c Category) CategorySet { return s | 1<<c }
func (s CategorySet) Has(c Category) bool         { return s&(1<<c) != 0 }
func (s CategorySet) Empty() bool                 { return s == 0 }

// Rarity is a stat's offer tier
type Rarity string

const (
	Common   Rarity = "common"
	Uncommon Rarity = "uncommon"
	Rare     Rarity = "rare"
	Epic     Rarity = "epic"
)

// ZoneID identifies a playable zone
type ZoneID string

// EnemyKind identifies an enemy archetype
type EnemyKind string

// WeaponBase holds every base number a weapon kind may read, zero when unused
type WeaponBase struct {
	Damage      float64 `yaml:"damage"`
	Cooldown    float64 `yaml:"cooldown"`
	Projectiles int     `yaml:"projectiles"`
	Area        float64 `yaml:"area"`

	Orbs        int     `yaml:"orbs"`
	DPSPerOrb   float64 `yaml:"dps_per_orb"`
	OrbitRadius float64 `yaml:"orbit_radius"`
	OrbitSpeed  float64 `yaml:"orbit_speed"`

	Missiles int `yaml:"missiles"`

	DPS   float64 `yaml:"dps"`
	Range float64 `yaml:"range"`

	Chains int `yaml:"chains"`

	Drones          int     `yaml:"drones"`
	ExplosionDamage float64 `yaml:"explosion_damage"`
	Respawn         float64 `yaml:"respawn"`
	DetectRange     float64 `yaml:"detect_range"`
	BlastRadius     float64 `yaml:"blast_radius"`

	Radius    float64 `yaml:"radius"`
	Knockback float64 `yaml:"knockback"`
	Duration  float64 `yaml:"duration"`
}

// VariantDef describes one Overlock variant
type VariantDef struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
}

// WeaponDef is a catalog weapon entry
type WeaponDef struct {
	ID         WeaponID              `yaml:"id"`
	Name       string                `yaml:"name"`
	Base       WeaponBase            `yaml:"base"`
	ScalesWith []StatID              `yaml:"scales_with"`
	Notes      string                `yaml:"notes"`
	Overlock   map[string]VariantDef `yaml:"overlock"`

	variants [len(Categories)]VariantDef
}

// StatDef is a catalog passive entry
type StatDef struct {
	ID       StatID   `yaml:"id"`
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
	Rarity   Rarity   `yaml:"rarity"`
	PerLevel float64  `yaml:"per_level"`
	// Max caps owned level for offer purposes, 0 means uncapped
	Max int `yaml:"max"`
}

// Palette is a zone's color theme as hex strings
type Palette struct {
	BG        string `yaml:"bg"`
	StarsNear string `yaml:"stars_near"`
	StarsFar  string `yaml:"stars_far"`
	Accent    string `yaml:"accent"`
}

// Zone is a playable arena theme with reward scaling
type Zone struct {
	ID                ZoneID  `yaml:"id"`
	Name              string  `yaml:"name"`
	Difficulty        int     `yaml:"difficulty"`
	RewardMult        float64 `yaml:"reward_mult"`
	UnlockedByDefault bool    `yaml:"unlocked_by_default"`
	UnlockCost        int     `yaml:"unlock_cost"`
	Palette           Palette `yaml:"palette"`
}

// EnemyDef is an enemy archetype before time scaling
type EnemyDef struct {
	Kind   EnemyKind `yaml:"kind"`
	HP     float64   `yaml:"hp"`
	Speed  float64   `yaml:"speed"`
	Radius float64   `yaml:"radius"`
	Damage float64   `yaml:"damage"`
	Color  string    `yaml:"color"`
}
