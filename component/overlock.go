package component

import "github.com/lixenwraith/stardrift/content"

// OverlockFlag is a bitmask of variant-derived behavior switches
type OverlockFlag uint32

const (
	FlagFast OverlockFlag = 1 << iota
	FlagHeavy
	FlagSplash
	FlagLootBonus
	FlagTriple
	FlagPlate
	FlagTractor
	FlagCluster
	FlagGuardian
	FlagRing
	FlagShieldCore
	FlagTag
	FlagLongRange
	FlagStun
	FlagNearOnly
	FlagHealOnKill
	FlagSlow
	FlagGun
	FlagHealBeam
	FlagCollect
	FlagFrost
	FlagMedField
	FlagWeak
	FlagBurst
	FlagDrain
	FlagVacuum
)

func (f OverlockFlag) Has(o OverlockFlag) bool { return f&o == o }

// OverlockAssignment is the write-once variant granted to a weapon
type OverlockAssignment struct {
	Variant content.Category
	Name    string
	Flags   OverlockFlag
}
