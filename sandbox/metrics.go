package sandbox

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for search runs.
type Metrics struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// Registering twice on the same registry returns the registry's error.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mazelab",
			Name:      "search_runs_total",
			Help:      "Search runs by algorithm and final state",
		}, []string{"algorithm", "state"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mazelab",
			Name:      "search_duration_seconds",
			Help:      "Search wall time in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"algorithm"}),
		expanded: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mazelab",
			Name:      "search_expanded_cells",
			Help:      "Cells expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
	}
	for _, c := range []prometheus.Collector{m.runs, m.duration, m.expanded} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// observe records one entry. A nil Metrics is a no-op.
func (m *Metrics) observe(e Entry) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(e.Engine, e.State.String()).Inc()
	m.duration.WithLabelValues(e.Engine).Observe(e.Duration.Seconds())
	m.expanded.WithLabelValues(e.Engine).Observe(float64(e.Steps))
}
