package telemetry

import (
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/lixenwraith/humblebee/engine"
)

// publishQueueSize bounds events waiting for the publish goroutine
const publishQueueSize = 64

// Conn is the subset of *nats.Conn the publisher needs
type Conn interface {
	Publish(subject string, data []byte) error
}

// Dial connects to a NATS server, retrying in the background after drops
func Dial(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.Name("humblebee"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
}

// EventPayload is the JSON body of a published session event
type EventPayload struct {
	Event     string    `json:"event"`
	SessionID string    `json:"session_id"`
	Attempt   int       `json:"attempt"`
	Tick      uint64    `json:"tick"`
	Score     int       `json:"score"`
	HighScore int       `json:"high_score"`
	Time      time.Time `json:"time"`
}

// Publisher sends session events to <subject>.<event> from its own goroutine.
// Publish never blocks; when the queue is full the event is dropped and counted
type Publisher struct {
	conn    Conn
	subject string
	logger  *slog.Logger
	now     func() time.Time

	events  chan engine.SessionEvent
	done    chan struct{}
	closed  sync.Once
	dropped atomic.Int64
}

// NewPublisher starts the publish goroutine
func NewPublisher(conn Conn, subject string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Publisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
		now:     time.Now,
		events:  make(chan engine.SessionEvent, publishQueueSize),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish enqueues an event without blocking
func (p *Publisher) Publish(ev engine.SessionEvent) {
	select {
	case p.events <- ev:
	default:
		p.dropped.Add(1)
	}
}

// Dropped returns the number of events lost to a full queue
func (p *Publisher) Dropped() int64 {
	return p.dropped.Load()
}

// Close publishes what is queued and stops the goroutine.
// Publish must not be called after Close
func (p *Publisher) Close() {
	p.closed.Do(func() {
		close(p.events)
	})
	<-p.done
}

func (p *Publisher) run() {
	defer close(p.done)

	for ev := range p.events {
		subject := p.subject + "." + ev.Type.String()
		data, err := json.Marshal(EventPayload{
			Event:     ev.Type.String(),
			SessionID: ev.SessionID,
			Attempt:   ev.Attempt,
			Tick:      ev.Tick,
			Score:     ev.Score,
			HighScore: ev.HighScore,
			Time:      p.now().UTC(),
		})
		if err != nil {
			p.logger.Error("Failed to encode event", "event", ev.Type, "error", err)
			continue
		}
		if err := p.conn.Publish(subject, data); err != nil {
			p.logger.Warn("Failed to publish event", "subject", subject, "error", err)
		}
	}
}
