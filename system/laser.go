package system

import (
	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// laserBehavior fires a forward cone of bullets on cooldown
type laserBehavior struct{}

func (laserBehavior) Update(run *engine.Run, w *component.Weapon, p Power, dt float64) {
	if w.Cooldown > 0 {
		return
	}

	cd := p.Base.Cooldown * p.CooldownMult
	damage := p.Scaled(p.Base.Damage) * p.DamageMult
	if w.Has(component.FlagFast) {
		cd *= parameter.LaserFastCooldown
	}
	if w.Has(component.FlagHeavy) {
		cd *= parameter.LaserHeavyMult
		damage *= parameter.LaserHeavyMult
	}

	count := p.Base.Projectiles + p.ProjBonus + p.LevelBonus(parameter.LaserBonusLevel)
	spread := parameter.LaserSpreadBase + float64(count)*parameter.LaserSpreadPerShot
	facing := run.Player.Dir.Angle()

	for i := 0; i < count; i++ {
		dir := vmath.FromAngle(facing + run.Rand.Range(-spread, spread))
		run.Bullets = append(run.Bullets, &component.Bullet{
			Pos:    run.Player.Pos.Add(dir.Scale(parameter.LaserSpawnOffset)),
			Vel:    dir.Scale(parameter.LaserBulletSpeed),
			Radius: parameter.LaserBulletRadius,
			Life:   parameter.LaserBulletLife,
			Damage: damage,
			Splash: w.Has(component.FlagSplash),
			Source: w,
		})
	}

	w.Cooldown = cd
	run.Emit(event.EventShot, &event.ShotPayload{Weapon: w.ID})
}
