// Package engine owns the simulation state and the fixed-tick loop.
//
// Event Flow
//
// Systems never talk to audio, telemetry or the terminal directly. During a
// tick they queue two kinds of records on the World:
//   - Cue: a one-shot sound request (flap, crash)
//   - SessionEvent: a gameplay milestone (started, pair cleared, game over)
//
// After the tick the ClockScheduler drains both queues and hands them to the
// CuePlayer and EventSink. Playback and publishing are fire-and-forget; the
// tick never waits on them.
package engine

import "fmt"

// Cue is a one-shot sound request
type Cue int

const (
	CueFlap Cue = iota
	CueCrash
)

// AssetName returns the asset store name the cue plays
func (c Cue) AssetName() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueCrash:
		return "crash"
	default:
		return fmt.Sprintf("cue-%d", int(c))
	}
}

func (c Cue) String() string {
	return c.AssetName()
}

// SessionEventType identifies gameplay milestones
type SessionEventType int

const (
	// EventGameStarted fires on the first Idle -> Flying transition
	EventGameStarted SessionEventType = iota
	// EventPairCleared fires each time a point is awarded
	EventPairCleared
	// EventGameOver fires on entry to GameOver
	EventGameOver
	// EventRestarted fires on GameOver -> Flying
	EventRestarted
)

var sessionEventNames = map[SessionEventType]string{
	EventGameStarted: "started",
	EventPairCleared: "cleared",
	EventGameOver:    "gameover",
	EventRestarted:   "restarted",
}

func (t SessionEventType) String() string {
	if name, ok := sessionEventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("event-%d", int(t))
}

// SessionEvent is a gameplay milestone with the score state at that tick
type SessionEvent struct {
	Type      SessionEventType
	SessionID string
	Attempt   int
	Tick      uint64
	Score     int
	HighScore int
}
