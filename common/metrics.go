package common

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors of one benchmark run. Each value
// owns its registry so tests and repeated runs do not collide.
type Metrics struct {
	registry *prometheus.Registry

	// passSeconds observes the wall-clock time of each timed batch pass.
	// Labels: strategy
	passSeconds *prometheus.HistogramVec

	// hits counts strings classified palindrome-permutable.
	// Labels: strategy
	hits *prometheus.CounterVec

	// workers reports the resolved worker count of a strategy.
	// Labels: strategy
	workers *prometheus.GaugeVec

	verificationFailures prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		passSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pp",
			Name:      "pass_seconds",
			Help:      "Wall-clock seconds of one batch pass",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 16),
		}, []string{"strategy"}),
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pp",
			Name:      "hits_total",
			Help:      "Strings classified as palindrome permutations",
		}, []string{"strategy"}),
		workers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "pp",
			Name:      "workers",
			Help:      "Worker goroutines used by a strategy",
		}, []string{"strategy"}),
		verificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "pp",
			Name:      "verification_failures_total",
			Help:      "Strategies whose checksum failed verification",
		}),
	}
}

func (m *Metrics) ObservePass(strategy string, seconds float64, hits int) {
	if m == nil {
		return
	}
	m.passSeconds.WithLabelValues(strategy).Observe(seconds)
	m.hits.WithLabelValues(strategy).Add(float64(hits))
}

func (m *Metrics) SetWorkers(strategy string, n int) {
	if m == nil {
		return
	}
	m.workers.WithLabelValues(strategy).Set(float64(n))
}

func (m *Metrics) VerificationFailed() {
	if m == nil {
		return
	}
	m.verificationFailures.Inc()
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})
}
