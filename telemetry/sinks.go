package telemetry

import (
	"log/slog"

	"github.com/lixenwraith/humblebee/engine"
)

// Fanout delivers each event to every sink in order
type Fanout []engine.EventSink

func (f Fanout) Publish(ev engine.SessionEvent) {
	for _, s := range f {
		s.Publish(ev)
	}
}

// LogSink writes session events to a structured logger
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Publish(ev engine.SessionEvent) {
	s.Logger.Info("session event",
		"event", ev.Type.String(),
		"session", ev.SessionID,
		"attempt", ev.Attempt,
		"tick", ev.Tick,
		"score", ev.Score,
		"high_score", ev.HighScore,
	)
}
