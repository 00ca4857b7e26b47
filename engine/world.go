package engine

import (
	"github.com/lixenwraith/humblebee/components"
	"github.com/lixenwraith/humblebee/constants"
	"github.com/lixenwraith/humblebee/input"
)

// World is the single owner of all simulation state.
// Only the tick thread touches it; renderers read it between ticks
type World struct {
	Player    *components.Player
	Obstacles []*components.ObstaclePair

	Score     int
	HighScore int

	// GroundScroll is the ground tile offset in (-GroundTileWidth, 0]
	GroundScroll float64

	// Tick is the number of completed Step calls
	Tick uint64
	// LastSpawnTick is the tick of the last obstacle spawn
	LastSpawnTick uint64

	// Input is the frame being processed by the current tick
	Input input.Frame

	// SessionID identifies the process run in emitted events
	SessionID string
	// Attempt counts Flying entries, 1 for the first flight
	Attempt int

	phase          GamePhase
	phaseStartTick uint64

	cues   []Cue
	events []SessionEvent
}

// NewWorld creates the world in Idle with the player at the spawn point
func NewWorld(sessionID string) *World {
	return &World{
		Player:    components.NewPlayer(),
		Obstacles: make([]*components.ObstaclePair, 0, 8),
		SessionID: sessionID,
		phase:     PhaseIdle,
		cues:      make([]Cue, 0, 4),
		events:    make([]SessionEvent, 0, 4),
	}
}

// Phase returns the current game phase
func (w *World) Phase() GamePhase {
	return w.phase
}

// ReadPhaseState returns a snapshot of the current phase
func (w *World) ReadPhaseState() PhaseSnapshot {
	return PhaseSnapshot{
		Phase:     w.phase,
		StartTick: w.phaseStartTick,
		Duration:  w.Tick - w.phaseStartTick,
	}
}

// TransitionPhase attempts a phase change and runs the entry action of the target
// Returns false if the transition is not in the table
func (w *World) TransitionPhase(to GamePhase) bool {
	if !CanTransition(w.phase, to) {
		return false
	}

	from := w.phase
	w.phase = to
	w.phaseStartTick = w.Tick

	switch to {
	case PhaseFlying:
		w.enterFlying(from)
	case PhaseGameOver:
		w.enterGameOver()
	}
	return true
}

// enterFlying arms the spawner and, on restart, resets the round
func (w *World) enterFlying(from GamePhase) {
	w.Attempt++

	if from == PhaseGameOver {
		w.Reset()
		w.Emit(EventRestarted)
	} else {
		w.Emit(EventGameStarted)
	}

	// Tick arithmetic is modular, so now-last == interval even near zero
	// and the first pair spawns on the following tick
	w.LastSpawnTick = w.Tick - constants.SpawnIntervalTicks
}

// enterGameOver plays the crash cue once per transition
func (w *World) enterGameOver() {
	w.QueueCue(CueCrash)
	w.Emit(EventGameOver)
}

// Reset clears obstacles, returns the player to spawn and zeroes the score
// High score is kept
func (w *World) Reset() {
	clear(w.Obstacles)
	w.Obstacles = w.Obstacles[:0]
	w.Player.Reset()
	// A restart press still held must not double as a jump
	w.Player.Clicked = w.Input.Held
	w.Score = 0
}

// AddScore awards points and raises the high score when exceeded
func (w *World) AddScore(points int) {
	w.Score += points
	if w.Score > w.HighScore {
		w.HighScore = w.Score
	}
	w.Emit(EventPairCleared)
}

// QueueCue requests a sound for the end of the tick
func (w *World) QueueCue(c Cue) {
	w.cues = append(w.cues, c)
}

// Emit records a session event with the current score state
func (w *World) Emit(t SessionEventType) {
	w.events = append(w.events, SessionEvent{
		Type:      t,
		SessionID: w.SessionID,
		Attempt:   w.Attempt,
		Tick:      w.Tick,
		Score:     w.Score,
		HighScore: w.HighScore,
	})
}

// DrainCues returns and clears the queued cues
func (w *World) DrainCues() []Cue {
	out := make([]Cue, len(w.cues))
	copy(out, w.cues)
	w.cues = w.cues[:0]
	return out
}

// DrainEvents returns and clears the queued session events
func (w *World) DrainEvents() []SessionEvent {
	out := make([]SessionEvent, len(w.events))
	copy(out, w.events)
	w.events = w.events[:0]
	return out
}
