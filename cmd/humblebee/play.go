package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/humblebee/asset"
	"github.com/lixenwraith/humblebee/audio"
	"github.com/lixenwraith/humblebee/config"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/engine"
	"github.com/lixenwraith/humblebee/input"
	"github.com/lixenwraith/humblebee/launcher"
	"github.com/lixenwraith/humblebee/render"
	"github.com/lixenwraith/humblebee/render/renderers"
	"github.com/lixenwraith/humblebee/systems"
	"github.com/lixenwraith/humblebee/telemetry"
)

type playOptions struct {
	assetsDir string
	seed      int64
	mute      bool
	hitboxes  bool
}

func addPlayFlags(cmd *cobra.Command, opts *playOptions) {
	cmd.Flags().StringVar(&opts.assetsDir, "assets", "", "asset directory overriding the built-in assets")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "obstacle seed (0 picks one from the clock)")
	cmd.Flags().BoolVar(&opts.mute, "mute", false, "disable audio")
	cmd.Flags().BoolVar(&opts.hitboxes, "hitboxes", false, "outline collision boxes")
}

// loadConfig applies the config layers then the command line flags
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.NewLoader(nil).Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("assets") {
		cfg.Assets.Dir = opts.play.assetsDir
	}
	if flags.Changed("seed") {
		cfg.Game.Seed = opts.play.seed
	}
	if opts.debug {
		cfg.Log.Debug = true
	}
	if opts.play.mute {
		off := false
		cfg.Audio.Enabled = &off
	}
	return cfg, nil
}

// audioConfig layers the file config and then the environment over the audio defaults
func audioConfig(src config.AudioConfig) *audio.AudioConfig {
	cfg := audio.DefaultAudioConfig()
	if src.MasterVolume != nil {
		cfg.MasterVolume = *src.MasterVolume
	}
	for name, v := range src.Volumes {
		cfg.EffectVolumes[name] = v
	}
	cfg = audio.LoadAudioConfig(cfg)

	// An explicit enable or mute wins over the environment
	if src.Enabled != nil {
		cfg.Enabled = *src.Enabled
	}
	return cfg
}

func runPlay(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Log.Debug, parseLevel(cfg.Log.Level)); logFile != nil {
		defer logFile.Close()
	}

	sessionID := uuid.NewString()
	logger := slog.Default().With("session", sessionID)

	// Every asset is decoded before the terminal is taken over so a missing
	// file is reported on a normal console
	store, err := asset.NewStore(asset.Dir(cfg.Assets.Dir), asset.WithSynth(audio.Synth))
	if err != nil {
		return fmt.Errorf("open assets: %w", err)
	}
	if err := store.Preload(asset.Required...); err != nil {
		return err
	}

	keys, err := keyTable(cfg.Keys)
	if err != nil {
		return err
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("Starting game", "seed", seed, "assets", cfg.Assets.Dir)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sounds := audio.NewSoundManager(audioConfig(cfg.Audio), store, logger)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Warn("Audio initialization failed, continuing without audio", "error", err)
	}
	defer sounds.Cleanup()

	metrics := telemetry.NewMetrics()
	sinks := telemetry.Fanout{metrics, telemetry.LogSink{Logger: logger}}
	closeTelemetry := startTelemetry(ctx, cfg.Telemetry, metrics, &sinks, logger)
	defer closeTelemetry()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	setActiveScreen(screen)
	defer restoreTerminal()

	screen.EnableMouse()
	screen.HideCursor()

	world := engine.NewWorld(sessionID)
	game := engine.NewGame(world, systems.Default(rand.New(rand.NewSource(seed)))...)

	orchestrator := render.NewRenderOrchestrator(screen)
	if err := renderers.RegisterAll(orchestrator, store, renderers.Options{ShowHitboxes: opts.play.hitboxes}); err != nil {
		return err
	}

	events := make(chan tcell.Event, constants.InputQueueSize)
	go pollEvents(screen, events)

	sounds.PlayMusic("music")

	collector := input.NewCollector(events)
	collector.SetKeyTable(keys)

	scheduler := engine.NewClockScheduler(game, engine.SchedulerConfig{
		Interval: constants.TickInterval,
		Input:    collector,
		Renderer: orchestrator,
		Audio:    sounds,
		Events:   sinks,
		Observer: metrics,
		Logger:   logger,
	})

	err = scheduler.Run(ctx)
	logger.Info("Game ended",
		"ticks", scheduler.TickCount(),
		"overruns", scheduler.Overruns(),
		"high_score", world.HighScore,
		"attempts", world.Attempt,
	)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// keyTable layers configured bindings over the defaults
func keyTable(bindings map[string]string) (*input.KeyTable, error) {
	if len(bindings) == 0 {
		return input.DefaultKeyTable(), nil
	}
	override, err := input.LoadKeyBindings(bindings)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// pollEvents feeds terminal events to the loop. A full queue drops the event;
// the channel closes when the screen is finalized, which the collector reads as quit
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil {
			crashed("EVENT POLLER", r)
		}
	}()
	defer close(events)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		default:
		}
	}
}

// startTelemetry starts the optional metrics endpoint and NATS publisher.
// Failures are logged; the game runs without them
func startTelemetry(ctx context.Context, cfg config.TelemetryConfig, metrics *telemetry.Metrics, sinks *telemetry.Fanout, logger *slog.Logger) func() {
	var closers []func()

	if cfg.MetricsAddr != "" {
		r := chi.NewRouter()
		r.Method("GET", "/metrics", metrics.Handler())
		go func() {
			if err := launcher.Serve(ctx, cfg.MetricsAddr, r, logger); err != nil {
				logger.Warn("Metrics endpoint stopped", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	if cfg.NATSURL != "" {
		nc, err := telemetry.Dial(cfg.NATSURL)
		if err != nil {
			logger.Warn("NATS unavailable, session events not published", "url", cfg.NATSURL, "error", err)
		} else {
			pub := telemetry.NewPublisher(nc, cfg.Subject, logger)
			*sinks = append(*sinks, pub)
			closers = append(closers, func() {
				pub.Close()
				if err := nc.Drain(); err != nil {
					nc.Close()
				}
			})
		}
	}

	return func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}
