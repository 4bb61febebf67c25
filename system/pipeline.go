package system

import (
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/status"
)

// NewPipeline registers every run system in tick order
func NewPipeline(reg *status.Registry) *engine.World {
	w := engine.NewWorld()
	w.AddSystem(NewPlayerSystem())
	w.AddSystem(NewSpawnSystem(reg))
	w.AddSystem(NewWeaponSystem(reg, nil))
	w.AddSystem(NewBulletSystem())
	w.AddSystem(NewMissileSystem())
	w.AddSystem(NewOrbitSystem())
	w.AddSystem(NewEnemySystem())
	w.AddSystem(NewBeamSystem())
	w.AddSystem(NewLootSystem())
	w.AddSystem(NewDroneSystem())
	w.AddSystem(NewPulseSystem())
	w.AddSystem(NewWellSystem())
	w.AddSystem(NewEffectSystem())
	w.AddSystem(NewCullSystem(reg))
	return w
}
