package gendelaunay

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records triangulation statistics. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	selections *prometheus.CounterVec
	fallbacks  prometheus.Counter
	failures   prometheus.Counter
	flips      prometheus.Counter
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the triangulation metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		selections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "delaunay_backend_selections_total",
			Help: "Back-ends chosen by the factory heuristic",
		}, []string{"backend"}),
		fallbacks: f.NewCounter(prometheus.CounterOpts{
			Name: "delaunay_fallbacks_total",
			Help: "Retries with the general exact back-end after a failure",
		}),
		failures: f.NewCounter(prometheus.CounterOpts{
			Name: "delaunay_failures_total",
			Help: "Triangulations that could not be constructed",
		}),
		flips: f.NewCounter(prometheus.CounterOpts{
			Name: "delaunay_refinement_flips_total",
			Help: "Edges flipped by the refinement pass",
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "delaunay_construction_duration_seconds",
			Help:    "Back-end construction time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"backend"}),
	}
}

func (m *Metrics) selected(k Kind) {
	if m == nil {
		return
	}
	m.selections.WithLabelValues(k.String()).Inc()
}

func (m *Metrics) fellBack() {
	if m == nil {
		return
	}
	m.fallbacks.Inc()
}

func (m *Metrics) failed() {
	if m == nil {
		return
	}
	m.failures.Inc()
}

func (m *Metrics) flipped(n int) {
	if m == nil {
		return
	}
	m.flips.Add(float64(n))
}

func (m *Metrics) observe(k Kind, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(k.String()).Observe(d.Seconds())
}
