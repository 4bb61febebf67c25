package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/stardrift/audio"
	"github.com/lixenwraith/stardrift/config"
	"github.com/lixenwraith/stardrift/content"
	"github.com/lixenwraith/stardrift/logging"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/render"
	"github.com/lixenwraith/stardrift/render/renderer"
	"github.com/lixenwraith/stardrift/status"
	"github.com/lixenwraith/stardrift/store"
	"github.com/lixenwraith/stardrift/telemetry"
)

var (
	configDirFlag = flag.String("config", ".", "Directory holding stardrift.cfg.json")
	debugFlag     = flag.Bool("debug", false, "Force debug logging")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configDirFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Log.Level
	if *debugFlag || cfg.Log.Debug {
		level = "debug"
	}
	graylog := ""
	if cfg.Log.Graylog.Enabled {
		graylog = cfg.Log.Graylog.Address
	}
	rootLog, sinks, err := logging.Setup(logging.Options{Level: level, Dir: cfg.Log.Dir, GraylogAddress: graylog})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer sinks.Close()

	if err := run(cfg, rootLog); err != nil {
		rootLog.Error().Err(err).Msg("Exited with error")
		fmt.Fprintf(os.Stderr, "stardrift: %v\n", err)
		sinks.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config, rootLog zerolog.Logger) error {
	ctx := context.Background()
	cat := content.Default()

	db, err := store.Open(store.Config{DSN: cfg.Store.DSN, Path: cfg.Store.Path}, cat, logging.Component(rootLog, "store"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	metrics, err := telemetry.NewMetrics(nil)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	var exporter *telemetry.Exporter
	if cfg.Telemetry.Influx.Enabled {
		ic := cfg.Telemetry.Influx
		// Export is optional, failure already logged
		exporter, _ = telemetry.NewInfluxExporter(ctx, telemetry.InfluxConfig{
			URL: ic.URL, Token: ic.Token, Org: ic.Org, Bucket: ic.Bucket,
		}, logging.Component(rootLog, "telemetry"))
		if exporter != nil {
			defer exporter.Close()
		}
	}

	player := audio.NewPlayer(audio.Config{
		Enabled: cfg.Audio.Enabled,
		Volume:  cfg.Audio.Volume,
		SFX:     true,
		Music:   true,
	}, logging.Component(rootLog, "audio"))
	_ = player.Init() // Silent on failure
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		r := recover()
		screen.Fini()
		if r != nil {
			rootLog.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTARDRIFT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	reg := status.NewRegistry()
	orchestrator := render.NewOrchestrator(screen)
	renderer.RegisterAll(orchestrator, reg)

	host := NewHost(ctx, HostOptions{
		Catalog:  cat,
		Store:    db,
		Player:   player,
		Metrics:  metrics,
		Exporter: exporter,
		Renderer: orchestrator,
		Status:   reg,
		Seed:     cfg.Sim.Seed,
		Zone:     content.ZoneID(cfg.Sim.Zone),
		Logger:   rootLog,
	})
	host.StartRun()

	eventChan := make(chan tcell.Event, parameter.InputQueueSize)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(time.Second / time.Duration(cfg.Sim.FPS))
	defer frameTicker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !host.HandleEvent(ctx, ev, time.Now()) {
				rootLog.Info().Int("starbits", host.Save().Starbits).Msg("Quit")
				return nil
			}

		case now := <-frameTicker.C:
			dt := now.Sub(last).Seconds()
			last = now
			host.Frame(ctx, dt, now)
		}
	}
}
