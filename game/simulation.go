// Package game is the host-facing facade over one run: ticking, overlay choices and settlement
package game

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/engine"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/overlock"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/progression"
	"github.com/lixenwraith/stardrift/status"
	"github.com/lixenwraith/stardrift/store"
	"github.com/lixenwraith/stardrift/system"
	"github.com/lixenwraith/stardrift/vmath"
)

var (
	ErrNoOverlay        = errors.New("no overlay open")
	ErrChoiceOutOfRange = errors.New("choice out of range")
)

// Options are host-supplied collaborators, zero values are usable
type Options struct {
	Seed   uint64
	Events *event.Queue
	Status *status.Registry
	Logger zerolog.Logger
}

// Simulation owns one run and the system pipeline that drives it
// Not safe for concurrent use
type Simulation struct {
	run   *engine.Run
	world *engine.World
	log   zerolog.Logger
	done  bool

	statTicks *atomic.Int64
	statLevel *atomic.Int64
	statKills *atomic.Int64
	statTime  *status.AtomicFloat
	statHP    *status.AtomicFloat
}

// New starts a run in zone using slot capacities and settings from save
func New(cat *content.Catalog, zone content.Zone, save store.SaveState, opts Options) *Simulation {
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}

	run := engine.NewRun(cat, zone, engine.RunOptions{
		WeaponSlots:  save.WeaponSlots,
		PassiveSlots: save.PassiveSlots,
		Settings:     engine.Settings{ScreenShake: save.Settings.ScreenShake},
		Seed:         opts.Seed,
		Events:       opts.Events,
	})

	s := &Simulation{
		run:       run,
		world:     system.NewPipeline(reg),
		log:       opts.Logger.With().Str("component", "game").Str("run", run.ID.String()).Logger(),
		statTicks: reg.Ints.Get("engine.ticks"),
		statLevel: reg.Ints.Get("run.level"),
		statKills: reg.Ints.Get("run.kills"),
		statTime:  reg.Floats.Get("run.time"),
		statHP:    reg.Floats.Get("player.hp"),
	}
	s.log.Info().Str("zone", string(zone.ID)).Int("weapon_slots", run.WeaponSlots).Int("passive_slots", run.PassiveSlots).Msg("Run started")
	s.publish()
	return s
}

// Run exposes the run for read-only consumers such as the renderer
func (s *Simulation) Run() *engine.Run { return s.run }

// Done reports whether the summary was dismissed
func (s *Simulation) Done() bool { return s.done }

// Tick advances the run by dt seconds with the given movement input
// Nothing advances while an overlay is open or after the run ended
func (s *Simulation) Tick(dt float64, move vmath.Vec2) {
	run := s.run
	run.Move = move.ClampLen(1)
	if run.Paused() || dt <= 0 {
		return
	}
	dt = min(dt, parameter.MaxTickStep)

	s.world.Update(run, dt)
	if run.Active && progression.CheckLevel(run) {
		s.log.Debug().Int("level", run.Level).Str("overlay", run.Overlay.Kind.String()).Msg("Level reached")
	}
	if !run.Active {
		s.log.Info().Bool("died", run.Died).Int("earned", run.CurrencyEarned).Msg("Run ended")
	}

	s.statTicks.Add(1)
	s.publish()
}

// Choose resolves the open overlay with the choice at index
func (s *Simulation) Choose(index int) error {
	run := s.run
	ov := run.Overlay
	if ov == nil {
		return ErrNoOverlay
	}
	if index < 0 || index >= len(ov.Choices) {
		return fmt.Errorf("choose %d of %d: %w", index, len(ov.Choices), ErrChoiceOutOfRange)
	}
	choice := ov.Choices[index]

	switch a := choice.Action.(type) {
	case engine.Upgrade:
		if err := progression.Apply(run, a); err != nil {
			return fmt.Errorf("choose %q: %w", choice.Label, err)
		}
		run.Overlay = nil
	case engine.OverlockWeapon:
		if err := overlock.SelectWeapon(run, a.Weapon); err != nil {
			return fmt.Errorf("choose %q: %w", choice.Label, err)
		}
	case engine.OverlockVariant:
		if err := overlock.Apply(run, a.Weapon, a.Variant); err != nil {
			return fmt.Errorf("choose %q: %w", choice.Label, err)
		}
		run.Overlay = nil
	case engine.ReturnToTitle:
		run.Overlay = nil
		s.done = true
	default:
		return fmt.Errorf("choose %q: unhandled action %T", choice.Label, a)
	}

	s.log.Debug().Str("overlay", ov.Kind.String()).Str("choice", choice.Label).Msg("Choice resolved")
	run.Emit(event.EventChoiceResolved, &event.ChoiceResolvedPayload{Overlay: ov.Kind.String(), Label: choice.Label})
	return nil
}

// Abandon ends a live run without death, settling what was earned
func (s *Simulation) Abandon() {
	if s.run.Active {
		s.log.Info().Msg("Run abandoned")
	}
	s.run.Finish(false)
	s.publish()
}

// Settle ends the run if needed and returns its record
// The run's CurrencyEarned holds the settled total afterwards
func (s *Simulation) Settle() store.RunRecord {
	run := s.run
	run.Finish(false)

	loadout := make([]store.LoadoutEntry, 0, len(run.Weapons))
	for _, w := range run.Weapons {
		loadout = append(loadout, loadoutEntry(w))
	}
	return store.RunRecord{
		ID:      run.ID,
		Zone:    run.Zone.ID,
		Time:    run.Time,
		Kills:   run.Kills,
		Level:   run.Level,
		Earned:  run.CurrencyEarned,
		Died:    run.Died,
		Loadout: loadout,
		EndedAt: time.Now(),
	}
}

func loadoutEntry(w *component.Weapon) store.LoadoutEntry {
	e := store.LoadoutEntry{Weapon: w.ID, Level: w.Level}
	if w.Overlock != nil {
		e.Overlock = w.Overlock.Name
	}
	return e
}

func (s *Simulation) publish() {
	s.statLevel.Store(int64(s.run.Level))
	s.statKills.Store(int64(s.run.Kills))
	s.statTime.Set(s.run.Time)
	s.statHP.Set(s.run.Player.HP)
}
