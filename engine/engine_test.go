package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/vmath"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
	onUpdate func(*Run)
}

func (s *recordingSystem) Name() string  { return s.name }
func (s *recordingSystem) Priority() int { return s.priority }
func (s *recordingSystem) Update(run *Run, dt float64) {
	*s.log = append(*s.log, s.name)
	if s.onUpdate != nil {
		s.onUpdate(run)
	}
}

func newTestRun(t *testing.T) *Run {
	t.Helper()
	cat := content.Default()
	zone, ok := cat.Zone("apollo_nebula")
	require.True(t, ok)
	return NewRun(cat, zone, RunOptions{Seed: 1})
}

func TestNewRunDefaults(t *testing.T) {
	r := newTestRun(t)
	assert.Equal(t, 1, r.Level)
	assert.Equal(t, 28, r.XPToNext)
	assert.Equal(t, 3, r.WeaponSlots)
	require.Len(t, r.Weapons, 1)
	assert.Equal(t, content.FrontLaser, r.Weapons[0].ID)
	assert.Equal(t, 120.0, r.Player.HP)
	assert.Equal(t, vmath.Vec2{X: 0, Y: -1}, r.Player.Dir)
	assert.True(t, r.Active)
	assert.False(t, r.Paused())
}

func TestWorldPriorityOrder(t *testing.T) {
	var log []string
	w := NewWorld()
	w.AddSystem(&recordingSystem{name: "c", priority: 30, log: &log})
	w.AddSystem(&recordingSystem{name: "a", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "b", priority: 20, log: &log})
	w.AddSystem(&recordingSystem{name: "b2", priority: 20, log: &log})

	w.Update(newTestRun(t), 0.016)
	assert.Equal(t, []string{"a", "b", "b2", "c"}, log)
}

func TestWorldStopsWhenRunEnds(t *testing.T) {
	var log []string
	w := NewWorld()
	w.AddSystem(&recordingSystem{name: "killer", priority: 10, log: &log, onUpdate: func(r *Run) { r.Finish(true) }})
	w.AddSystem(&recordingSystem{name: "after", priority: 20, log: &log})

	r := newTestRun(t)
	w.Update(r, 0.016)
	assert.Equal(t, []string{"killer"}, log)
	assert.False(t, r.Active)
}

type finalSystem struct{ recordingSystem }

func (s *finalSystem) Finalizes() {}

func TestWorldRunsFinalizersAfterEnd(t *testing.T) {
	var log []string
	w := NewWorld()
	w.AddSystem(&recordingSystem{name: "killer", priority: 10, log: &log, onUpdate: func(r *Run) { r.Finish(true) }})
	w.AddSystem(&recordingSystem{name: "after", priority: 20, log: &log})
	w.AddSystem(&finalSystem{recordingSystem{name: "sweep", priority: 30, log: &log}})

	w.Update(newTestRun(t), 0.016)
	assert.Equal(t, []string{"killer", "sweep"}, log)
}

func TestRecomputeKeepsPickupBonus(t *testing.T) {
	r := newTestRun(t)
	r.Overlock.PickupBonus = 16
	r.Passives[content.PickupRadius] = 1
	r.Recompute()
	assert.Equal(t, 22.0, r.Totals.PickupRadius)

	r.Passives[content.DamagePct] = 1
	r.Recompute()
	assert.Equal(t, 22.0, r.Totals.PickupRadius)
}

func TestSettlement(t *testing.T) {
	assert.Equal(t, 480, Settlement(120, 40, 10, 1.2, 0, 0))
	assert.Equal(t, 518, Settlement(136, 40, 10, 1.2, 0, 0))
	assert.Equal(t, 528, Settlement(120, 40, 10, 1.2, 10, 0))
	assert.Equal(t, 487, Settlement(120, 40, 10, 1.2, 0, 7))
}

func TestFinishSettlesOnce(t *testing.T) {
	q := event.NewQueue()
	cat := content.Default()
	zone, _ := cat.Zone("ares_quasar")
	r := NewRun(cat, zone, RunOptions{Seed: 1, Events: q})
	r.Time, r.Kills, r.Level = 136, 40, 10
	r.CurrencyEarned = 3

	r.Finish(true)
	assert.Equal(t, 521, r.CurrencyEarned)
	require.NotNil(t, r.Overlay)
	assert.Equal(t, OverlaySummary, r.Overlay.Kind)
	assert.True(t, r.Paused())

	r.Finish(true)
	assert.Equal(t, 521, r.CurrencyEarned)

	evs := q.Consume()
	require.Len(t, evs, 1)
	p := evs[0].Payload.(*event.RunEndedPayload)
	assert.Equal(t, 521, p.Earned)
	assert.Equal(t, r.ID, p.RunID)
}

func TestNearestEnemy(t *testing.T) {
	r := newTestRun(t)
	near := &component.Enemy{Pos: vmath.Vec2{X: 10}, HP: 5}
	far := &component.Enemy{Pos: vmath.Vec2{X: 50}, HP: 5}
	dead := &component.Enemy{Pos: vmath.Vec2{X: 1}, HP: 0}
	r.Enemies = []*component.Enemy{far, near, dead}

	assert.Same(t, near, r.NearestEnemy(vmath.Vec2{}, 100, false, nil))
	assert.Same(t, far, r.NearestEnemy(vmath.Vec2{}, 100, false, map[*component.Enemy]bool{near: true}))
	assert.Nil(t, r.NearestEnemy(vmath.Vec2{}, 10, false, nil))
}

func TestOwnedCategories(t *testing.T) {
	r := newTestRun(t)
	assert.True(t, r.OwnedCategories().Empty())

	r.Passives[content.Regen] = 1
	set := r.OwnedCategories()
	assert.True(t, set.Has(content.Aegis))
	assert.False(t, set.Has(content.Assault))
}
