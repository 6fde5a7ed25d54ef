package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/leapstack-labs/writegood/pkg/lint"
)

// Metrics records what the server checks.
type Metrics struct {
	OnCheck func(endpoint string, duration time.Duration, suggestions []lint.Suggestion)
}

// NewMetrics registers the server metrics with reg. A nil reg yields no-op
// metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{OnCheck: func(string, time.Duration, []lint.Suggestion) {}}
	}

	checks := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: "writegood",
		Name:      "checks_total",
		Help:      "Number of texts checked, by endpoint",
	}, []string{"endpoint"})

	duration := promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "writegood",
		Name:      "check_duration_seconds",
		Help:      "Time spent checking one text",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"endpoint"})

	suggestions := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: "writegood",
		Name:      "suggestions_total",
		Help:      "Suggestions reported, by rule",
	}, []string{"rule"})

	return &Metrics{
		OnCheck: func(endpoint string, d time.Duration, found []lint.Suggestion) {
			checks.WithLabelValues(endpoint).Inc()
			duration.WithLabelValues(endpoint).Observe(d.Seconds())
			for _, s := range found {
				for _, rule := range s.Rules {
					suggestions.WithLabelValues(rule).Inc()
				}
			}
		},
	}
}

// newRegistry returns a registry with the Go runtime and process collectors.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
