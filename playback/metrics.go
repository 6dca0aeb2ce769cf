package playback

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the controller's Prometheus collectors.
type Metrics struct {
	// runs counts finished runs.
	// Labels: algorithm, outcome (completed, stopped)
	runs *prometheus.CounterVec

	// steps counts published steps.
	// Labels: algorithm, kind (visit, explore, complete)
	steps *prometheus.CounterVec

	// runDuration measures wall time from Play to completion.
	// Labels: algorithm
	runDuration *prometheus.HistogramVec

	// transitions counts state changes.
	// Labels: to
	transitions *prometheus.CounterVec
}

// NewMetrics registers the playback collectors on reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvwalk",
			Subsystem: "playback",
			Name:      "runs_total",
			Help:      "Finished traversal runs by outcome",
		}, []string{"algorithm", "outcome"}),
		steps: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvwalk",
			Subsystem: "playback",
			Name:      "steps_total",
			Help:      "Traversal steps pumped by kind",
		}, []string{"algorithm", "kind"}),
		runDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvwalk",
			Subsystem: "playback",
			Name:      "run_duration_seconds",
			Help:      "Wall time from play to completion",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		}, []string{"algorithm"}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvwalk",
			Subsystem: "playback",
			Name:      "transitions_total",
			Help:      "Controller state transitions by target state",
		}, []string{"to"}),
	}
}

func (m *Metrics) recordStep(alg, kind string) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(alg, kind).Inc()
}

func (m *Metrics) recordRun(alg, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(alg, outcome).Inc()
	if outcome == outcomeCompleted {
		m.runDuration.WithLabelValues(alg).Observe(seconds)
	}
}

func (m *Metrics) recordTransition(to State) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(to.String()).Inc()
}

const (
	outcomeCompleted = "completed"
	outcomeStopped   = "stopped"
)
