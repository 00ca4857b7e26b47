package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/lixenwraith/humblebee/input"
)

// InputSource yields the input frame for one tick
type InputSource interface {
	Poll() input.Frame
}

// FrameRenderer draws the world; it must not mutate it
type FrameRenderer interface {
	RenderFrame(w *World, frame input.Frame)
}

// CuePlayer plays sound cues without blocking
type CuePlayer interface {
	PlayCue(c Cue)
	ToggleEffects()
	ToggleMusic()
}

// EventSink receives session events after each tick
type EventSink interface {
	Publish(ev SessionEvent)
}

// TickObserver receives per-tick timing
type TickObserver interface {
	ObserveTick(elapsed time.Duration, overrun bool)
}

// SchedulerConfig wires the scheduler collaborators; nil sinks are allowed
type SchedulerConfig struct {
	Interval time.Duration
	Clock    Clock
	Input    InputSource
	Renderer FrameRenderer
	Audio    CuePlayer
	Events   EventSink
	Observer TickObserver
	Logger   *slog.Logger
}

// ClockScheduler runs the game on a fixed tick in the calling goroutine.
// Each tick: poll input, step, render, dispatch cues and events, sleep the rest
// of the budget. An overrun tick is followed immediately by the next one with
// no catch-up
type ClockScheduler struct {
	game *Game
	cfg  SchedulerConfig

	tickCount uint64
	overruns  uint64
}

// NewClockScheduler creates a scheduler for the game
func NewClockScheduler(game *Game, cfg SchedulerConfig) *ClockScheduler {
	if cfg.Clock == nil {
		cfg.Clock = NewTimeProvider()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &ClockScheduler{
		game: game,
		cfg:  cfg,
	}
}

// Run loops until a quit frame arrives or ctx is cancelled.
// Quit is checked once per tick; the tick in progress always completes
func (cs *ClockScheduler) Run(ctx context.Context) error {
	logger := cs.cfg.Logger
	logger.Info("Scheduler started", "interval", cs.cfg.Interval)

	running := true
	for running {
		start := cs.cfg.Clock.Now()

		frame := cs.cfg.Input.Poll()
		if frame.Quit || ctx.Err() != nil {
			running = false
		}

		cs.processTick(frame)

		elapsed := cs.cfg.Clock.Now().Sub(start)
		overrun := elapsed >= cs.cfg.Interval
		if overrun {
			cs.overruns++
			logger.Debug("Tick overrun", "tick", cs.tickCount, "elapsed", elapsed)
		} else if running {
			cs.cfg.Clock.Sleep(cs.cfg.Interval - elapsed)
		}

		if cs.cfg.Observer != nil {
			cs.cfg.Observer.ObserveTick(elapsed, overrun)
		}
	}

	logger.Info("Scheduler stopped",
		"ticks", cs.tickCount,
		"overruns", cs.overruns,
		"high_score", cs.game.World().HighScore)
	return ctx.Err()
}

// processTick advances, renders and dispatches side effects for one tick
func (cs *ClockScheduler) processTick(frame input.Frame) {
	w := cs.game.World()

	cs.game.Step(frame)
	cs.tickCount++

	if cs.cfg.Renderer != nil {
		cs.cfg.Renderer.RenderFrame(w, frame)
	}

	cues := w.DrainCues()
	if cs.cfg.Audio != nil {
		if frame.ToggleEffects {
			cs.cfg.Audio.ToggleEffects()
		}
		if frame.ToggleMusic {
			cs.cfg.Audio.ToggleMusic()
		}
		for _, c := range cues {
			cs.cfg.Audio.PlayCue(c)
		}
	}

	events := w.DrainEvents()
	if cs.cfg.Events != nil {
		for _, ev := range events {
			cs.cfg.Events.Publish(ev)
		}
	}
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// Overruns returns the number of ticks that exceeded the interval
func (cs *ClockScheduler) Overruns() uint64 {
	return cs.overruns
}
