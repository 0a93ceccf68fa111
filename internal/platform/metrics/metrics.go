package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for source attempts.
const (
	OutcomeHit  = "hit"
	OutcomeMiss = "miss"
)

// Metrics provides observability for the lookup chains.
type Metrics struct {
	// Attempts per source by outcome
	SourceAttempts *prometheus.CounterVec

	// Latency of a single source attempt
	SourceLatency *prometheus.HistogramVec

	// Which source finally answered each resolution
	Resolutions *prometheus.CounterVec

	// Resolutions that had to fall back to generated data
	SyntheticFallbacks *prometheus.CounterVec
}

// New creates and registers all lookup metrics on reg. Passing nil uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		SourceAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vehicleinfo_source_attempts_total",
			Help: "Source attempts by lookup domain, source and outcome",
		}, []string{"domain", "source", "outcome"}),

		SourceLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vehicleinfo_source_duration_seconds",
			Help:    "Duration of a single source attempt",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"domain", "source"}),

		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vehicleinfo_resolutions_total",
			Help: "Completed resolutions by domain and answering source",
		}, []string{"domain", "source"}),

		SyntheticFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vehicleinfo_synthetic_fallbacks_total",
			Help: "Resolutions answered by the synthetic generator",
		}, []string{"domain"}),
	}
}

// ObserveAttempt records one source attempt.
func (m *Metrics) ObserveAttempt(domain, source, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.SourceAttempts.WithLabelValues(domain, source, outcome).Inc()
	m.SourceLatency.WithLabelValues(domain, source).Observe(d.Seconds())
}

// IncrementResolution records which source answered a resolution.
func (m *Metrics) IncrementResolution(domain, source string, synthetic bool) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(domain, source).Inc()
	if synthetic {
		m.SyntheticFallbacks.WithLabelValues(domain).Inc()
	}
}
