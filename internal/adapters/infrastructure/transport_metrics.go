package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusTransportMetrics records forecast fetch outcomes as Prometheus series
// and keeps in-process totals for the JSON stats endpoint.
type PrometheusTransportMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	mu       sync.RWMutex
	total    int64
	outcomes map[string]int64
	modes    map[string]int64
}

// NewPrometheusTransportMetrics registers the transport collectors with reg.
// A nil reg registers with the default Prometheus registry.
func NewPrometheusTransportMetrics(reg prometheus.Registerer) *PrometheusTransportMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusTransportMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecast_transport_requests_total",
				Help: "The total number of forecast fetches by mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "forecast_transport_duration_seconds",
				Help:    "Forecast fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mode"},
		),
		outcomes: make(map[string]int64),
		modes:    make(map[string]int64),
	}
}

// RecordFetch records a single fetch
func (m *PrometheusTransportMetrics) RecordFetch(mode, outcome string, duration time.Duration) {
	m.requests.WithLabelValues(mode, outcome).Inc()
	m.latency.WithLabelValues(mode).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.total++
	m.outcomes[outcome]++
	m.modes[mode]++
}

// GetStats returns a snapshot of the recorded totals
func (m *PrometheusTransportMetrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outcomes := make(map[string]int64, len(m.outcomes))
	for k, v := range m.outcomes {
		outcomes[k] = v
	}
	modes := make(map[string]int64, len(m.modes))
	for k, v := range m.modes {
		modes[k] = v
	}

	return map[string]interface{}{
		"total":    m.total,
		"outcomes": outcomes,
		"modes":    modes,
	}
}
