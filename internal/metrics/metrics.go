// Package metrics records search statistics on a private Prometheus registry.
//
// The CLI never serves HTTP; when asked it dumps the registry in the
// node-exporter textfile format so a collector can pick it up.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rebelnav/navodds/odds"
	"github.com/rebelnav/navodds/route"
)

// Result labels for QueriesTotal.
const (
	ResultSuccess   = "success"
	ResultMalformed = "malformed"
	ResultExhausted = "exhausted"
	ResultCancelled = "cancelled"
	ResultError     = "error"
)

// Metrics bundles the collectors for one process.
type Metrics struct {
	reg *prometheus.Registry

	QueriesTotal  *prometheus.CounterVec
	StatesTotal   *prometheus.CounterVec
	Probability   prometheus.Histogram
	QueryDuration prometheus.Histogram
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		QueriesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "navodds_queries_total",
			Help: "Odds queries by result",
		}, []string{"result"}),
		StatesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "navodds_search_states_total",
			Help: "Search states by phase (expanded, enqueued)",
		}, []string{"phase"}),
		Probability: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "navodds_success_probability",
			Help:    "Computed success probability per query",
			Buckets: []float64{0, 0.25, 0.5, 0.75, 0.9, 0.99, 1},
		}),
		QueryDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "navodds_query_duration_seconds",
			Help:    "Odds query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}
}

// Registry exposes the private registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Observe records one finished query. res may be nil when err is set.
func (m *Metrics) Observe(res *odds.Result, err error, elapsed time.Duration) {
	m.QueryDuration.Observe(elapsed.Seconds())
	m.QueriesTotal.WithLabelValues(Classify(err)).Inc()
	if err != nil || res == nil {
		return
	}
	m.StatesTotal.WithLabelValues("expanded").Add(float64(res.Expanded))
	m.StatesTotal.WithLabelValues("enqueued").Add(float64(res.Enqueued))
	m.Probability.Observe(res.Probability)
}

// Classify maps an error onto a QueriesTotal label.
func Classify(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case odds.IsResourceExhausted(err):
		return ResultExhausted
	case errors.Is(err, route.ErrMalformedInput):
		return ResultMalformed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ResultCancelled
	default:
		return ResultError
	}
}

// WriteTextfile writes the registry atomically to path.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
