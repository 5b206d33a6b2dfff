package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Ground Control
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Telemetry pipeline metrics
	TelemetrySamplesTotal   prometheus.CounterVec
	DeviationsRecordedTotal prometheus.Counter

	// Mission metrics
	MissionCompletionsTotal prometheus.CounterVec

	// Retention job metrics
	SamplesPrunedTotal prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "groundcontrol_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "groundcontrol_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "groundcontrol_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		TelemetrySamplesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "groundcontrol_telemetry_samples_total",
				Help: "Total telemetry samples evaluated, by classification status",
			},
			[]string{"status"},
		),
		DeviationsRecordedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "groundcontrol_deviations_recorded_total",
				Help: "Total route deviation records written",
			},
		),

		MissionCompletionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "groundcontrol_mission_completions_total",
				Help: "Total mission completion requests, by outcome",
			},
			[]string{"result"},
		),

		SamplesPrunedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "groundcontrol_samples_pruned_total",
				Help: "Total position samples removed by the retention job",
			},
		),
	}
}
