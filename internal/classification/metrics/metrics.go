package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the classification module.
type Metrics struct {
	// Classification outcomes by industry and tier
	Outcome *prometheus.CounterVec

	// Lookups for identifiers outside the registry
	UnknownIndustry prometheus.Counter

	ClassifyLatency prometheus.Histogram
}

// New registers the classification metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Outcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smedecl_classification_outcomes_total",
			Help: "Total classification outcomes by industry and tier",
		}, []string{"industry", "tier"}),

		UnknownIndustry: factory.NewCounter(prometheus.CounterOpts{
			Name: "smedecl_classification_unknown_industry_total",
			Help: "Classification requests naming an unregistered industry",
		}),

		ClassifyLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "smedecl_classification_duration_seconds",
			Help:    "Duration of a single classification",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

// IncrementOutcome records a classification outcome.
func (m *Metrics) IncrementOutcome(industry, tier string) {
	if m != nil {
		m.Outcome.WithLabelValues(industry, tier).Inc()
	}
}

// IncrementUnknownIndustry records a rejected industry identifier.
func (m *Metrics) IncrementUnknownIndustry() {
	if m != nil {
		m.UnknownIndustry.Inc()
	}
}

// ObserveClassifyLatency records the duration of one classification.
func (m *Metrics) ObserveClassifyLatency(d time.Duration) {
	if m != nil {
		m.ClassifyLatency.Observe(d.Seconds())
	}
}
