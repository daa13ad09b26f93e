// Package metrics exposes Prometheus collectors for the theme server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "themekit"

// Settings update outcomes.
const (
	UpdateApplied   = "applied"
	UpdateUnchanged = "unchanged"
	UpdateRejected  = "rejected"
)

// Metrics owns a registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	settingsUpdates *prometheus.CounterVec
	colorErrors     prometheus.Counter
	stylesheetBytes prometheus.Gauge
}

// New registers every collector, plus Go runtime and process collectors, on
// a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		settingsUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "settings_updates_total",
				Help:      "Settings update requests by outcome",
			},
			[]string{"result"}, // applied, unchanged, rejected
		),
		colorErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "color_parse_errors_total",
				Help:      "Colour tokens that could not be parsed while building themes",
			},
		),
		stylesheetBytes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stylesheet_bytes",
				Help:      "Size of the generated stylesheet",
			},
		),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.settingsUpdates,
		m.colorErrors,
		m.stylesheetBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

func (m *Metrics) SettingsUpdate(result string) {
	m.settingsUpdates.WithLabelValues(result).Inc()
}

func (m *Metrics) ColorErrors(n int) {
	m.colorErrors.Add(float64(n))
}

func (m *Metrics) StylesheetSize(n int) {
	m.stylesheetBytes.Set(float64(n))
}
