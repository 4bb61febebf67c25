package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/parameter"
)

// SaveVersion is written into every persisted state
const SaveVersion = 1

var (
	ErrSlotsMaxed      = errors.New("slots already maxed")
	ErrInsufficient    = errors.New("not enough starbits")
	ErrUnknownZone     = errors.New("unknown zone")
	ErrZoneLocked      = errors.New("zone locked")
	ErrAlreadyUnlocked = errors.New("zone already unlocked")
	ErrNotPurchasable  = errors.New("zone has no unlock cost")
)

// Settings are persisted player preferences
type Settings struct {
	Music       bool `json:"music"`
	SFX         bool `json:"sfx"`
	ScreenShake bool `json:"screenshake"`
}

// SaveState is the persisted meta progression
type SaveState struct {
	Version       int                     `json:"version"`
	Starbits      int                     `json:"starbits"`
	WeaponSlots   int                     `json:"weapon_slots"`
	PassiveSlots  int                     `json:"passive_slots"`
	UnlockedZones map[content.ZoneID]bool `json:"unlocked_zones"`
	SelectedZone  content.ZoneID          `json:"selected_zone"`
	Settings      Settings                `json:"settings"`
}

// SlotKind selects which loadout capacity a purchase raises
type SlotKind uint8

const (
	WeaponSlot SlotKind = iota
	PassiveSlot
)

func (k SlotKind) String() string {
	if k == PassiveSlot {
		return "passive"
	}
	return "weapon"
}

// DefaultState returns a fresh save with default unlocks and the first zone selected
func DefaultState(cat *content.Catalog) SaveState {
	s := SaveState{
		Version:       SaveVersion,
		WeaponSlots:   parameter.SlotBase,
		PassiveSlots:  parameter.SlotBase,
		UnlockedZones: make(map[content.ZoneID]bool),
		Settings:      Settings{Music: true, SFX: true, ScreenShake: true},
	}
	zones := cat.Zones()
	for _, z := range zones {
		if z.UnlockedByDefault {
			s.UnlockedZones[z.ID] = true
		}
	}
	if len(zones) > 0 {
		s.SelectedZone = zones[0].ID
	}
	return s
}

// Merge decodes a possibly partial save onto the defaults
// Settings and unlocked zones merge key by key; out-of-range slot counts are clamped
func Merge(cat *content.Catalog, data []byte) (SaveState, error) {
	s := DefaultState(cat)
	defaults := s.UnlockedZones
	s.UnlockedZones = nil

	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultState(cat), fmt.Errorf("decode save: %w", err)
	}

	merged := make(map[content.ZoneID]bool, len(defaults)+len(s.UnlockedZones))
	for id, ok := range defaults {
		merged[id] = ok
	}
	for id, ok := range s.UnlockedZones {
		merged[id] = merged[id] || ok
	}
	s.UnlockedZones = merged
	s.WeaponSlots = clampSlots(s.WeaponSlots)
	s.PassiveSlots = clampSlots(s.PassiveSlots)
	s.Version = SaveVersion
	return s, nil
}

func clampSlots(n int) int {
	return max(parameter.SlotBase, min(parameter.SlotMax, n))
}

// SlotCost returns the price of the next slot above current, false when maxed
func SlotCost(current int) (int, bool) {
	i := current - parameter.SlotBase
	if i < 0 || i >= len(parameter.SlotCosts) {
		return 0, false
	}
	return parameter.SlotCosts[i], true
}

// BuySlot spends starbits on one more weapon or passive slot
func (s *SaveState) BuySlot(kind SlotKind) error {
	slots := &s.WeaponSlots
	if kind == PassiveSlot {
		slots = &s.PassiveSlots
	}
	cost, ok := SlotCost(*slots)
	if !ok {
		return fmt.Errorf("buy %s slot: %w", kind, ErrSlotsMaxed)
	}
	if s.Starbits < cost {
		return fmt.Errorf("buy %s slot for %d: %w", kind, cost, ErrInsufficient)
	}
	s.Starbits -= cost
	*slots++
	return nil
}

// UnlockZone purchases a locked zone
func (s *SaveState) UnlockZone(cat *content.Catalog, id content.ZoneID) error {
	z, ok := cat.Zone(id)
	if !ok {
		return fmt.Errorf("unlock %s: %w", id, ErrUnknownZone)
	}
	if z.UnlockCost <= 0 {
		return fmt.Errorf("unlock %s: %w", id, ErrNotPurchasable)
	}
	if s.UnlockedZones[id] {
		return fmt.Errorf("unlock %s: %w", id, ErrAlreadyUnlocked)
	}
	if s.Starbits < z.UnlockCost {
		return fmt.Errorf("unlock %s for %d: %w", id, z.UnlockCost, ErrInsufficient)
	}
	s.Starbits -= z.UnlockCost
	if s.UnlockedZones == nil {
		s.UnlockedZones = make(map[content.ZoneID]bool)
	}
	s.UnlockedZones[id] = true
	return nil
}

// SelectZone picks an unlocked zone for the next run
func (s *SaveState) SelectZone(cat *content.Catalog, id content.ZoneID) error {
	if _, ok := cat.Zone(id); !ok {
		return fmt.Errorf("select %s: %w", id, ErrUnknownZone)
	}
	if !s.UnlockedZones[id] {
		return fmt.Errorf("select %s: %w", id, ErrZoneLocked)
	}
	s.SelectedZone = id
	return nil
}

// Zone resolves the selected zone, falling back to the first zone of the catalog
func (s *SaveState) Zone(cat *content.Catalog) content.Zone {
	if z, ok := cat.Zone(s.SelectedZone); ok && s.UnlockedZones[z.ID] {
		return z
	}
	return cat.Zones()[0]
}

func (s *SaveState) ToggleMusic()       { s.Settings.Music = !s.Settings.Music }
func (s *SaveState) ToggleSFX()         { s.Settings.SFX = !s.Settings.SFX }
func (s *SaveState) ToggleScreenShake() { s.Settings.ScreenShake = !s.Settings.ScreenShake }

// Credit adds settled run earnings
func (s *SaveState) Credit(earned int) {
	if earned > 0 {
		s.Starbits += earned
	}
}
