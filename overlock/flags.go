package overlock

import (
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
)

// variantFlags maps each weapon to its Assault, Aegis and Prospector flag sets
var variantFlags = map[content.WeaponID][len(content.Categories)]component.OverlockFlag{
	content.FrontLaser: {
		component.FlagFast | component.FlagSplash,
		component.FlagHeavy,
		component.FlagLootBonus,
	},
	content.OrbitOrbs: {
		component.FlagTriple,
		component.FlagPlate,
		component.FlagTractor,
	},
	content.HomingMissiles: {
		component.FlagCluster,
		component.FlagGuardian,
		component.FlagLootBonus,
	},
	content.CuttingBeam: {
		component.FlagRing,
		component.FlagShieldCore,
		component.FlagTag,
	},
	content.ChainLightning: {
		component.FlagLongRange | component.FlagStun,
		component.FlagNearOnly | component.FlagHealOnKill | component.FlagSlow,
		component.FlagTag,
	},
	content.KamikazeDrones: {
		component.FlagGun,
		component.FlagHealBeam,
		component.FlagCollect,
	},
	content.ShockwavePulse: {
		component.FlagFrost,
		component.FlagMedField,
		component.FlagWeak | component.FlagLootBonus,
	},
	content.GravityWell: {
		component.FlagBurst,
		component.FlagDrain,
		component.FlagVacuum,
	},
}

// Flags derives the behavior flags of a weapon variant, zero for unknown pairs
func Flags(id content.WeaponID, c content.Category) component.OverlockFlag {
	set, ok := variantFlags[id]
	if !ok || int(c) >= len(set) {
		return 0
	}
	return set[c]
}
