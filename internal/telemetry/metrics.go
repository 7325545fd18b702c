package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes used as the "outcome" label.
const (
	OutcomeSuccess     = "success"
	OutcomeStatus      = "status"
	OutcomeTimeout     = "timeout"
	OutcomeUnavailable = "unavailable"
	OutcomeInternal    = "internal"
)

// Metrics holds the gateway collectors. Each instance owns its registry.
// Recording methods are no-ops on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal       *prometheus.CounterVec
	httpRequestDuration     *prometheus.HistogramVec
	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
	upstreamUp              prometheus.Gauge
}

// NewMetrics registers the gateway collectors plus the Go runtime and
// process collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cbs_gateway_http_requests_total",
				Help: "Total number of inbound HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cbs_gateway_http_request_duration_seconds",
				Help:    "Inbound HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		upstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cbs_gateway_upstream_requests_total",
				Help: "Total number of calls made to the CBS simulator",
			},
			[]string{"method", "route", "outcome", "status"},
		),
		upstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cbs_gateway_upstream_request_duration_seconds",
				Help:    "CBS simulator call duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
		upstreamUp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "cbs_gateway_upstream_up",
				Help: "1 when the last CBS simulator probe succeeded, 0 otherwise",
			},
		),
	}
}

// ObserveHTTP records one inbound request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveUpstream records one upstream call. status is 0 when no response
// was received.
func (m *Metrics) ObserveUpstream(method, route, outcome string, status int, d time.Duration) {
	if m == nil {
		return
	}
	code := "-"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	m.upstreamRequestsTotal.WithLabelValues(method, route, outcome, code).Inc()
	m.upstreamRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// SetUpstreamUp records the last probe result.
func (m *Metrics) SetUpstreamUp(up bool) {
	if m == nil {
		return
	}
	if up {
		m.upstreamUp.Set(1)
		return
	}
	m.upstreamUp.Set(0)
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
