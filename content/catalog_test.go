package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Len(t, c.Weapons(), 8)
	assert.Len(t, c.Stats(), 12)
	assert.Len(t, c.Zones(), 4)
	assert.Len(t, c.Enemies(), 3)

	laser, ok := c.Weapon(FrontLaser)
	require.True(t, ok)
	assert.Equal(t, 10.0, laser.Base.Damage)
	assert.Equal(t, 0.30, laser.Base.Cooldown)
	assert.Equal(t, 1, laser.Base.Projectiles)

	drones, ok := c.Weapon(KamikazeDrones)
	require.True(t, ok)
	assert.Equal(t, 90.0, drones.Base.DetectRange)
	assert.Equal(t, 24.0, drones.Base.BlastRadius)

	_, ok = c.Weapon("plasma_cannon")
	assert.False(t, ok)
}

func TestStatCategories(t *testing.T) {
	c := Default()
	tests := []struct {
		id       StatID
		category Category
		rarity   Rarity
		perLevel float64
	}{
		{DamagePct, Assault, Common, 8},
		{CooldownPct, Assault, Uncommon, 6},
		{ProjectileCount, Assault, Rare, 1},
		{LifeSteal, Aegis, Epic, 0.6},
		{Regen, Aegis, Uncommon, 0.35},
		{StarbitsPct, Prospector, Rare, 10},
		{ExtraChoice, Prospector, Epic, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			s, ok := c.Stat(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.category, s.Category)
			assert.Equal(t, tt.rarity, s.Rarity)
			assert.Equal(t, tt.perLevel, s.PerLevel)
		})
	}

	ec, _ := c.Stat(ExtraChoice)
	assert.Equal(t, 2, ec.Max)
}

func TestRarityWeight(t *testing.T) {
	c := Default()
	assert.Equal(t, 60, c.RarityWeight(Common))
	assert.Equal(t, 30, c.RarityWeight(Uncommon))
	assert.Equal(t, 10, c.RarityWeight(Rare))
	assert.Equal(t, 4, c.RarityWeight(Epic))
	assert.Equal(t, 10, c.RarityWeight("mythic"))
}

func TestVariants(t *testing.T) {
	c := Default()
	for _, w := range c.Weapons() {
		for _, cat := range Categories {
			v, ok := c.Variant(w.ID, cat)
			assert.True(t, ok)
			assert.NotEmpty(t, v.Name, "%s/%s", w.ID, cat)
		}
	}

	v, _ := c.Variant(OrbitOrbs, Aegis)
	assert.Equal(t, "Mirror Plate", v.Name)
	v, _ = c.Variant(GravityWell, Prospector)
	assert.Equal(t, "Vacuum Pulse", v.Name)
}

func TestZones(t *testing.T) {
	c := Default()
	z, ok := c.Zone("ares_quasar")
	require.True(t, ok)
	assert.Equal(t, 2, z.Difficulty)
	assert.Equal(t, 1.2, z.RewardMult)
	assert.Equal(t, 250, z.UnlockCost)
	assert.Equal(t, "#ff9f68", z.Palette.Accent)

	assert.True(t, c.Zones()[0].UnlockedByDefault)
}

func TestParseRejectsMissingVariant(t *testing.T) {
	doc := `
stats:
  - {id: damage_pct, name: Damage, category: assault, rarity: common, per_level: 8}
weapons:
  - id: front_laser
    name: Front Laser
    base: {damage: 10, cooldown: 0.3}
    scales_with: [damage_pct]
    overlock:
      assault: {name: A}
      aegis: {name: B}
zones:
  - {id: z, name: Z, difficulty: 1, reward_mult: 1}
enemies:
  - {kind: drifter, hp: 1, speed: 1, radius: 1, damage: 1}
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.True(t, strings.Contains(err.Error(), "prospector"))
}

func TestParseRejectsUnknownCategory(t *testing.T) {
	doc := `
stats:
  - {id: damage_pct, name: Damage, category: berserker, rarity: common, per_level: 8}
`
	_, err := Parse([]byte(doc))
	assert.Error(t, err)
}

func TestCategorySet(t *testing.T) {
	var s CategorySet
	assert.True(t, s.Empty())
	s = s.With(Aegis)
	assert.True(t, s.Has(Aegis))
	assert.False(t, s.Has(Assault))
	assert.False(t, s.Empty())

	c, err := ParseCategory("Prospector")
	require.NoError(t, err)
	assert.Equal(t, Prospector, c)
	assert.Equal(t, "prospector", c.String())
}
