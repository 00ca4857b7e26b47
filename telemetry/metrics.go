// Package telemetry exports gameplay metrics and session events.
// Nothing here is on the critical path: a tick never waits on telemetry
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/humblebee/engine"
)

const namespace = "humblebee"

// Metrics holds the Prometheus collectors on a private registry.
// It implements engine.EventSink and engine.TickObserver
type Metrics struct {
	registry *prometheus.Registry

	flights      *prometheus.CounterVec
	gamesOver    prometheus.Counter
	pairsCleared prometheus.Counter
	finalScore   prometheus.Histogram
	highScore    prometheus.Gauge

	ticks        prometheus.Counter
	overruns     prometheus.Counter
	tickDuration prometheus.Histogram

	launches *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		flights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flights_total",
			Help:      "Flights begun, by how they began.",
		}, []string{"kind"}),
		gamesOver: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Flights ended by a collision.",
		}),
		pairsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_cleared_total",
			Help:      "Obstacle pairs passed.",
		}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "final_score",
			Help:      "Score at game over.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		highScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "high_score",
			Help:      "Best score of this process.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks run.",
		}),
		overruns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tick_overruns_total",
			Help:      "Ticks that exceeded the tick interval.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Work time per tick, excluding the sleep.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 8),
		}),
		launches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "launches_total",
			Help:      "Game processes launched by the launcher service, by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.flights, m.gamesOver, m.pairsCleared, m.finalScore, m.highScore,
		m.ticks, m.overruns, m.tickDuration, m.launches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the private registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Publish records a session event
func (m *Metrics) Publish(ev engine.SessionEvent) {
	switch ev.Type {
	case engine.EventGameStarted, engine.EventRestarted:
		m.flights.WithLabelValues(ev.Type.String()).Inc()
	case engine.EventPairCleared:
		m.pairsCleared.Inc()
	case engine.EventGameOver:
		m.gamesOver.Inc()
		m.finalScore.Observe(float64(ev.Score))
	}
	m.highScore.Set(float64(ev.HighScore))
}

// ObserveTick records tick timing
func (m *Metrics) ObserveTick(elapsed time.Duration, overrun bool) {
	m.ticks.Inc()
	m.tickDuration.Observe(elapsed.Seconds())
	if overrun {
		m.overruns.Inc()
	}
}

// LaunchStarted counts a successful launch
func (m *Metrics) LaunchStarted() {
	m.launches.WithLabelValues("started").Inc()
}

// LaunchFailed counts a launch that could not start
func (m *Metrics) LaunchFailed() {
	m.launches.WithLabelValues("failed").Inc()
}
