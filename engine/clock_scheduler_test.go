package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/humblebee/input"
)

// scriptedInput replays frames in order, then quits
type scriptedInput struct {
	frames []input.Frame
	polled int
}

func (s *scriptedInput) Poll() input.Frame {
	s.polled++
	if len(s.frames) == 0 {
		return input.Frame{Quit: true}
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f
}

// busySystem burns mock time on every tick
type busySystem struct {
	clock *MockTimeProvider
	cost  time.Duration
	cue   bool
}

func (b *busySystem) Priority() int     { return 0 }
func (b *busySystem) Phases() PhaseMask { return MaskAll }
func (b *busySystem) Update(w *World) {
	b.clock.Advance(b.cost)
	if b.cue {
		w.QueueCue(CueFlap)
	}
}

type recordingRenderer struct {
	frames int
	ticks  []uint64
}

func (r *recordingRenderer) RenderFrame(w *World, frame input.Frame) {
	r.frames++
	r.ticks = append(r.ticks, w.Tick)
}

type recordingAudio struct {
	cues          []Cue
	effectToggles int
	musicToggles  int
}

func (a *recordingAudio) PlayCue(c Cue)   { a.cues = append(a.cues, c) }
func (a *recordingAudio) ToggleEffects() { a.effectToggles++ }
func (a *recordingAudio) ToggleMusic()   { a.musicToggles++ }

type recordingSink struct {
	events []SessionEvent
}

func (s *recordingSink) Publish(ev SessionEvent) { s.events = append(s.events, ev) }

type recordingObserver struct {
	overruns int
	ticks    int
}

func (o *recordingObserver) ObserveTick(elapsed time.Duration, overrun bool) {
	o.ticks++
	if overrun {
		o.overruns++
	}
}

func newTestScheduler(frames []input.Frame, cost time.Duration) (*ClockScheduler, *MockTimeProvider, *recordingRenderer, *recordingObserver) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	game := NewGame(NewWorld("test"), &busySystem{clock: clock, cost: cost})
	renderer := &recordingRenderer{}
	observer := &recordingObserver{}
	cs := NewClockScheduler(game, SchedulerConfig{
		Interval: 16 * time.Millisecond,
		Clock:    clock,
		Input:    &scriptedInput{frames: frames},
		Renderer: renderer,
		Observer: observer,
	})
	return cs, clock, renderer, observer
}

func TestClockSchedulerSleepsRemainder(t *testing.T) {
	cs, clock, renderer, observer := newTestScheduler(make([]input.Frame, 3), 4*time.Millisecond)

	require.NoError(t, cs.Run(context.Background()))

	// Three regular ticks plus the quit tick
	assert.Equal(t, uint64(4), cs.TickCount())
	assert.Equal(t, 4, renderer.frames)
	assert.Equal(t, []uint64{1, 2, 3, 4}, renderer.ticks)
	assert.Equal(t, 4, observer.ticks)
	assert.Zero(t, cs.Overruns())

	// The quit tick does not sleep
	assert.Equal(t, []time.Duration{
		12 * time.Millisecond,
		12 * time.Millisecond,
		12 * time.Millisecond,
	}, clock.Sleeps())
}

func TestClockSchedulerOverrunSkipsSleep(t *testing.T) {
	cs, clock, _, observer := newTestScheduler(make([]input.Frame, 5), 20*time.Millisecond)

	require.NoError(t, cs.Run(context.Background()))

	assert.Equal(t, uint64(6), cs.TickCount())
	assert.Equal(t, uint64(6), cs.Overruns())
	assert.Equal(t, 6, observer.overruns)
	assert.Empty(t, clock.Sleeps(), "overrun ticks must not sleep or catch up")
}

func TestClockSchedulerQuitFinishesTick(t *testing.T) {
	cs, _, renderer, _ := newTestScheduler([]input.Frame{{Quit: true, Pressed: true, Held: true}}, 0)

	require.NoError(t, cs.Run(context.Background()))

	assert.Equal(t, uint64(1), cs.TickCount())
	assert.Equal(t, 1, renderer.frames)
	assert.Equal(t, PhaseFlying, cs.game.World().Phase(), "press in the quit tick is still processed")
}

func TestClockSchedulerContextCancel(t *testing.T) {
	cs, _, _, _ := newTestScheduler(make([]input.Frame, 100), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cs.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(1), cs.TickCount())
}

func TestClockSchedulerDispatchesSideEffects(t *testing.T) {
	clock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	game := NewGame(NewWorld("test"), &busySystem{clock: clock, cue: true})
	audio := &recordingAudio{}
	sink := &recordingSink{}

	cs := NewClockScheduler(game, SchedulerConfig{
		Interval: 16 * time.Millisecond,
		Clock:    clock,
		Input: &scriptedInput{frames: []input.Frame{
			{Pressed: true, Held: true},
			{ToggleEffects: true},
			{ToggleMusic: true},
		}},
		Audio:  audio,
		Events: sink,
	})

	require.NoError(t, cs.Run(context.Background()))

	assert.Len(t, audio.cues, 4)
	assert.Equal(t, 1, audio.effectToggles)
	assert.Equal(t, 1, audio.musicToggles)

	require.Len(t, sink.events, 1)
	assert.Equal(t, EventGameStarted, sink.events[0].Type)
	assert.Equal(t, "test", sink.events[0].SessionID)

	assert.Empty(t, game.World().DrainCues(), "cues are drained each tick")
}

func TestClockSchedulerNilSinks(t *testing.T) {
	clock := NewMockTimeProvider(time.Now())
	game := NewGame(NewWorld("test"))
	cs := NewClockScheduler(game, SchedulerConfig{
		Interval: time.Millisecond,
		Clock:    clock,
		Input:    &scriptedInput{frames: []input.Frame{{Pressed: true}}},
	})

	assert.NotPanics(t, func() {
		_ = cs.Run(context.Background())
	})
	assert.Equal(t, uint64(2), cs.TickCount())
}
