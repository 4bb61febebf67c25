package main

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/stardrift/audio"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/game"
	"github.com/lixenwraith/stardrift/input"
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/status"
	"github.com/lixenwraith/stardrift/store"
	"github.com/lixenwraith/stardrift/telemetry"
)

// HostOptions wires the host collaborators, nil metrics, exporter and renderer are skipped
type HostOptions struct {
	Catalog  *content.Catalog
	Store    store.Store
	Player   *audio.Player
	Metrics  *telemetry.Metrics
	Exporter *telemetry.Exporter
	Renderer *render.Orchestrator
	Status   *status.Registry
	Seed     uint64
	Zone     content.ZoneID
	Logger   zerolog.Logger
}

// Host drives runs from the game loop goroutine: input, ticking, event fan-out and settlement
type Host struct {
	cat      *content.Catalog
	store    store.Store
	player   *audio.Player
	metrics  *telemetry.Metrics
	exporter *telemetry.Exporter
	renderer *render.Orchestrator
	reg      *status.Registry
	log      zerolog.Logger
	seed     uint64

	save    store.SaveState
	sim     *game.Simulation
	events  *event.Queue
	machine *input.Machine
	settled bool
	runs    int
	best    int

	statSFX   *atomic.Bool
	statMusic *atomic.Bool
}

// NewHost loads the save and applies the configured zone selection
func NewHost(ctx context.Context, opts HostOptions) *Host {
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	h := &Host{
		cat:       opts.Catalog,
		store:     opts.Store,
		player:    opts.Player,
		metrics:   opts.Metrics,
		exporter:  opts.Exporter,
		renderer:  opts.Renderer,
		reg:       reg,
		log:       opts.Logger.With().Str("component", "host").Logger(),
		seed:      opts.Seed,
		events:    event.NewQueue(),
		machine:   input.NewMachine(nil),
		statSFX:   reg.Bools.Get("audio.sfx"),
		statMusic: reg.Bools.Get("audio.music"),
	}
	h.save = h.store.Load(ctx)

	if opts.Zone != "" {
		if err := h.save.SelectZone(h.cat, opts.Zone); err != nil {
			h.log.Warn().Err(err).Str("zone", string(opts.Zone)).Msg("Configured zone not selectable, keeping saved selection")
		}
	}
	h.applySettings()
	return h
}

// StartRun begins a run in the selected zone
func (h *Host) StartRun() {
	seed := h.seed
	if seed != 0 {
		// Successive runs in one session differ but stay reproducible
		seed += uint64(h.runs)
	}
	h.runs++

	h.sim = game.New(h.cat, h.save.Zone(h.cat), h.save, game.Options{
		Seed:   seed,
		Events: h.events,
		Status: h.reg,
		Logger: h.log,
	})
	h.settled = false
	h.machine.Release()
}

// Simulation returns the current run facade
func (h *Host) Simulation() *game.Simulation { return h.sim }

// Save returns the in-memory save state
func (h *Host) Save() store.SaveState { return h.save }

// HandleEvent applies one terminal event, returns false when the host should exit
func (h *Host) HandleEvent(ctx context.Context, ev tcell.Event, now time.Time) bool {
	intent := h.machine.Process(ev, now)

	switch intent.Type {
	case input.IntentQuit:
		h.sim.Abandon()
		h.settle(ctx)
		return false

	case input.IntentEscape:
		if !h.sim.Run().Active {
			h.StartRun()
			break
		}
		h.sim.Abandon()
		h.drain(ctx)

	case input.IntentChoose:
		if h.tryPurchase(ctx, intent.Choice) {
			break
		}
		if err := h.sim.Choose(intent.Choice); err != nil {
			h.log.Debug().Err(err).Int("choice", intent.Choice).Msg("Choice ignored")
			break
		}
		h.drain(ctx)
		if h.sim.Done() {
			h.StartRun()
		}

	case input.IntentToggleSFX:
		h.save.ToggleSFX()
		h.applySettings()
		h.persist(ctx)

	case input.IntentToggleMusic:
		h.save.ToggleMusic()
		h.applySettings()
		h.persist(ctx)

	case input.IntentToggleShake:
		h.save.ToggleScreenShake()
		h.sim.Run().Settings.ScreenShake = h.save.Settings.ScreenShake
		h.persist(ctx)

	case input.IntentResize:
		if h.renderer != nil {
			h.renderer.Resize()
		}
	}
	return true
}

// Frame advances the run by dt, fans out events and renders
func (h *Host) Frame(ctx context.Context, dt float64, now time.Time) {
	run := h.sim.Run()
	if run.Overlay != nil {
		h.machine.Release()
	}
	h.sim.Tick(dt, h.machine.Vector(now))
	h.drain(ctx)

	if run.Active && !run.Paused() && h.player != nil {
		h.player.UpdateMusic(dt)
	}
	if h.renderer != nil {
		h.renderer.RenderFrame(run)
	}
}

// drain fans queued events out to audio and telemetry, then settles an ended run
func (h *Host) drain(ctx context.Context) {
	for _, ev := range h.events.Consume() {
		if h.player != nil {
			h.player.Handle(ev)
		}
		if h.metrics != nil {
			h.metrics.Observe(ctx, ev)
		}
		if p, ok := ev.Payload.(*event.OverlockAppliedPayload); ok {
			h.log.Info().Str("weapon", string(p.Weapon)).Str("variant", p.Name).Msg("Overlock applied")
		}
	}
	if !h.sim.Run().Active {
		h.settle(ctx)
	}
}

// settle credits, persists and exports the ended run exactly once
func (h *Host) settle(ctx context.Context) {
	if h.settled {
		return
	}
	h.settled = true

	rec := h.sim.Settle()
	h.save.Credit(rec.Earned)
	h.persist(ctx)

	if err := h.store.RecordRun(ctx, rec); err != nil {
		h.log.Error().Err(err).Str("run", rec.ID.String()).Msg("Failed to record run")
	}
	if h.exporter != nil {
		_ = h.exporter.Export(ctx, rec)
	}
	h.openShop(ctx)
	h.log.Info().
		Str("run", rec.ID.String()).
		Int("earned", rec.Earned).
		Int("balance", h.save.Starbits).
		Bool("died", rec.Died).
		Fields(h.reg.Snapshot()).
		Msg("Run settled")
}

func (h *Host) persist(ctx context.Context) {
	if err := h.store.Save(ctx, h.save); err != nil {
		h.log.Error().Err(err).Msg("Failed to save state")
	}
}

func (h *Host) applySettings() {
	s := h.save.Settings
	h.statSFX.Store(s.SFX)
	h.statMusic.Store(s.Music)
	if h.player != nil {
		h.player.SetSettings(s.SFX, s.Music)
	}
}
