package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsRegistry holds all Prometheus metrics for the info service.
// Metrics live on a private registry so that several routers can coexist
// in one process.
type MetricsRegistry struct {
	registry *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all
// metrics. uptimeSeconds backs the uptime gauge and is evaluated on scrape.
func NewMetricsRegistry(uptimeSeconds func() int64) *MetricsRegistry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &MetricsRegistry{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "infoservice_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "infoservice_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "infoservice_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
	}

	if uptimeSeconds != nil {
		factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "infoservice_uptime_seconds",
				Help: "Whole seconds since the process started",
			},
			func() float64 { return float64(uptimeSeconds()) },
		)
	}

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *MetricsRegistry) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer exposes the underlying registry for tests.
func (m *MetricsRegistry) Gatherer() prometheus.Gatherer {
	return m.registry
}
