package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/status"
)

// Behavior drives one weapon kind for a tick
type Behavior interface {
	Update(run *engine.Run, w *component.Weapon, p Power, dt float64)
}

// Behaviors returns the default behavior table keyed by weapon id
func Behaviors() map[content.WeaponID]Behavior {
	return map[content.WeaponID]Behavior{
		content.FrontLaser:     laserBehavior{},
		content.OrbitOrbs:      orbitBehavior{},
		content.HomingMissiles: missileBehavior{},
		content.CuttingBeam:    beamBehavior{},
		content.ChainLightning: chainBehavior{},
		content.KamikazeDrones: droneBehavior{},
		content.ShockwavePulse: pulseBehavior{},
		content.GravityWell:    wellBehavior{},
	}
}

// WeaponSystem ticks cooldowns and dispatches each owned weapon to its behavior
type WeaponSystem struct {
	behaviors map[content.WeaponID]Behavior

	statSkipped *atomic.Int64
}

func NewWeaponSystem(reg *status.Registry, behaviors map[content.WeaponID]Behavior) *WeaponSystem {
	if behaviors == nil {
		behaviors = Behaviors()
	}
	return &WeaponSystem{
		behaviors:   behaviors,
		statSkipped: reg.Ints.Get("weapon.skipped"),
	}
}

func (s *WeaponSystem) Name() string  { return "weapon" }
func (s *WeaponSystem) Priority() int { return parameter.PriorityWeapon }

func (s *WeaponSystem) Update(run *engine.Run, dt float64) {
	for _, w := range run.Weapons {
		p, ok := ResolvePower(run, w)
		behavior, known := s.behaviors[w.ID]
		if !ok || !known {
			s.statSkipped.Add(1)
			continue
		}
		if w.Cooldown > 0 {
			w.Cooldown -= dt
		}
		behavior.Update(run, w, p, dt)
	}
}
