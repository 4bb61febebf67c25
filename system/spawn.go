package system

import (
	"sync/atomic"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/status"
	"github.com/lixenwraith/stardrift/vmath"
)

// SpawnSystem emits one enemy per timer expiry, accelerating toward the minimum rate
type SpawnSystem struct {
	statSpawned *atomic.Int64
	statRate    *status.AtomicFloat
}

func NewSpawnSystem(reg *status.Registry) *SpawnSystem {
	return &SpawnSystem{
		statSpawned: reg.Ints.Get("spawn.count"),
		statRate:    reg.Floats.Get("spawn.rate"),
	}
}

func (s *SpawnSystem) Name() string  { return "spawn" }
func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) Update(run *engine.Run, dt float64) {
	run.SpawnTimer -= dt
	if run.SpawnTimer > 0 {
		return
	}

	s.spawn(run)
	run.SpawnRate = max(parameter.SpawnMinRate, run.SpawnRate-parameter.SpawnRateStep)
	run.SpawnTimer = run.SpawnRate

	s.statSpawned.Add(1)
	s.statRate.Set(run.SpawnRate)
}

func (s *SpawnSystem) spawn(run *engine.Run) {
	kinds := run.Catalog.Enemies()
	def := kinds[run.Rand.Intn(len(kinds))]

	dist := parameter.SpawnDistanceMin + run.Rand.Float64()*parameter.SpawnDistanceSpread
	pos := run.Player.Pos.Add(vmath.FromAngle(run.Rand.Angle()).Scale(dist))

	hp := (def.HP + run.Time*parameter.EnemyHPPerSecond) * DifficultyHPMult(run.Zone.Difficulty)
	run.Enemies = append(run.Enemies, &component.Enemy{
		Kind:   def.Kind,
		Pos:    pos,
		HP:     hp,
		MaxHP:  hp,
		Speed:  def.Speed + run.Time*parameter.EnemySpeedPerSecond,
		Radius: def.Radius,
		Damage: def.Damage,
		Color:  def.Color,
	})
}

// DifficultyHPMult scales enemy HP by zone tier, tier 1 is unscaled
func DifficultyHPMult(difficulty int) float64 {
	if difficulty < 1 {
		difficulty = 1
	}
	return 1 + float64(difficulty-1)*parameter.ZoneDifficultyHPStep
}
