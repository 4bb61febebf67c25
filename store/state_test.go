package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stardrift/content"
)

func TestMergePartialSave(t *testing.T) {
	cat := content.Default()
	s, err := Merge(cat, []byte(`{"starbits": 500, "settings": {"music": false}, "unlocked_zones": {"ares_quasar": true}}`))
	require.NoError(t, err)

	assert.Equal(t, 500, s.Starbits)
	assert.False(t, s.Settings.Music)
	assert.True(t, s.Settings.SFX, "absent settings keep defaults")
	assert.True(t, s.Settings.ScreenShake)
	assert.True(t, s.UnlockedZones["apollo_nebula"])
	assert.True(t, s.UnlockedZones["ares_quasar"])
	assert.Equal(t, 3, s.WeaponSlots)
	assert.Equal(t, content.ZoneID("apollo_nebula"), s.SelectedZone)
}

func TestMergeClampsSlots(t *testing.T) {
	s, err := Merge(content.Default(), []byte(`{"weapon_slots": 12, "passive_slots": 1}`))
	require.NoError(t, err)
	assert.Equal(t, 6, s.WeaponSlots)
	assert.Equal(t, 3, s.PassiveSlots)
}

func TestMergeCorrupt(t *testing.T) {
	cat := content.Default()
	s, err := Merge(cat, []byte(`[1,2`))
	assert.Error(t, err)
	assert.Equal(t, DefaultState(cat), s)
}

func TestBuySlot(t *testing.T) {
	s := DefaultState(content.Default())
	s.Starbits = 3000

	require.NoError(t, s.BuySlot(WeaponSlot))
	assert.Equal(t, 4, s.WeaponSlots)
	assert.Equal(t, 2700, s.Starbits)

	require.NoError(t, s.BuySlot(WeaponSlot))
	require.NoError(t, s.BuySlot(WeaponSlot))
	assert.Equal(t, 6, s.WeaponSlots)
	assert.Equal(t, 300, s.Starbits)

	assert.ErrorIs(t, s.BuySlot(WeaponSlot), ErrSlotsMaxed)
	s.Starbits = 250
	assert.ErrorIs(t, s.BuySlot(PassiveSlot), ErrInsufficient)
	assert.Equal(t, 3, s.PassiveSlots)
}

func TestSlotCost(t *testing.T) {
	tests := []struct {
		current int
		cost    int
		ok      bool
	}{
		{3, 300, true},
		{4, 800, true},
		{5, 1600, true},
		{6, 0, false},
		{2, 0, false},
	}
	for _, tt := range tests {
		cost, ok := SlotCost(tt.current)
		assert.Equal(t, tt.cost, cost, "slots %d", tt.current)
		assert.Equal(t, tt.ok, ok, "slots %d", tt.current)
	}
}

func TestUnlockAndSelectZone(t *testing.T) {
	cat := content.Default()
	s := DefaultState(cat)

	assert.ErrorIs(t, s.SelectZone(cat, "ares_quasar"), ErrZoneLocked)
	assert.ErrorIs(t, s.UnlockZone(cat, "ares_quasar"), ErrInsufficient)
	assert.ErrorIs(t, s.UnlockZone(cat, "apollo_nebula"), ErrNotPurchasable)
	assert.ErrorIs(t, s.UnlockZone(cat, "nowhere"), ErrUnknownZone)

	s.Starbits = 300
	require.NoError(t, s.UnlockZone(cat, "ares_quasar"))
	assert.Equal(t, 50, s.Starbits)
	assert.ErrorIs(t, s.UnlockZone(cat, "ares_quasar"), ErrAlreadyUnlocked)

	require.NoError(t, s.SelectZone(cat, "ares_quasar"))
	assert.Equal(t, content.ZoneID("ares_quasar"), s.Zone(cat).ID)
}

func TestZoneFallsBackWhenSelectionInvalid(t *testing.T) {
	cat := content.Default()
	s := DefaultState(cat)
	s.SelectedZone = "hades_rift"
	assert.Equal(t, content.ZoneID("apollo_nebula"), s.Zone(cat).ID)
}

func TestToggles(t *testing.T) {
	s := DefaultState(content.Default())
	s.ToggleMusic()
	s.ToggleSFX()
	s.ToggleScreenShake()
	assert.Equal(t, Settings{}, s.Settings)

	s.Credit(-5)
	assert.Equal(t, 0, s.Starbits)
	s.Credit(42)
	assert.Equal(t, 42, s.Starbits)
}
