package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the synchronizer.
type Metrics struct {
	// Reconciliation rule runs by entity kind and outcome
	Reconciliations *prometheus.CounterVec

	// Solver rejections that were contained, by operation
	SolverFailures *prometheus.CounterVec

	// Perimeter rebuild latency including constraint resync
	UpsertLatency prometheus.Histogram
}

// New creates a new Metrics instance with all synchronizer metrics registered.
func New() *Metrics {
	return &Metrics{
		Reconciliations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mortar_syncer_reconciliations_total",
			Help: "Total reconciliation rule runs by entity kind and outcome",
		}, []string{"kind", "outcome"}), // kind: "perimeter", "corner", "wall", "constraint"

		SolverFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mortar_syncer_solver_failures_total",
			Help: "Total solver calls that were rejected and contained, by operation",
		}, []string{"op"}),

		UpsertLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "mortar_syncer_perimeter_upsert_duration_seconds",
			Help:    "Duration of perimeter geometry rebuilds including constraint resync",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}
}

// IncrementReconciliation records one reconciliation rule run.
func (m *Metrics) IncrementReconciliation(kind, outcome string) {
	if m != nil {
		m.Reconciliations.WithLabelValues(kind, outcome).Inc()
	}
}

// IncrementSolverFailure records a contained solver rejection.
func (m *Metrics) IncrementSolverFailure(op string) {
	if m != nil {
		m.SolverFailures.WithLabelValues(op).Inc()
	}
}

// ObserveUpsertLatency records the duration of one perimeter rebuild.
func (m *Metrics) ObserveUpsertLatency(d time.Duration) {
	if m != nil {
		m.UpsertLatency.Observe(d.Seconds())
	}
}
