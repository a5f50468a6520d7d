// Package metrics provides Prometheus metrics for cloud-cost.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cloud-cost/core/types"
)

const namespace = "cloudcost"

// Metrics holds all Prometheus metrics for cloud-cost.
type Metrics struct {
	// Engine metrics
	ComparisonsTotal      *prometheus.CounterVec
	ValidationErrorsTotal *prometheus.CounterVec
	AnalysesTotal         *prometheus.CounterVec

	// Pricing metrics
	QuoteLookupDuration *prometheus.HistogramVec
	QuoteErrorsTotal    *prometheus.CounterVec

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates a new Metrics instance registered with the default registry.
func New() *Metrics {
	return newMetrics(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewWithRegistry creates a Metrics instance on its own registry.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	return newMetrics(reg, reg)
}

func newMetrics(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	m := &Metrics{
		ComparisonsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Total number of comparisons by kind and recommended provider.",
		}, []string{"kind", "winner"}),
		ValidationErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_errors_total",
			Help:      "Total number of rejected engine inputs.",
		}, []string{"operation"}),
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of full scenario analyses.",
		}, []string{"status"}),
		QuoteLookupDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "quote_lookup_duration_seconds",
			Help:      "Price quote lookup duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"provider", "kind"}),
		QuoteErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_errors_total",
			Help:      "Total number of failed quote lookups.",
		}, []string{"provider", "kind"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		gatherer: g,
	}

	reg.MustRegister(
		m.ComparisonsTotal,
		m.ValidationErrorsTotal,
		m.AnalysesTotal,
		m.QuoteLookupDuration,
		m.QuoteErrorsTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// Handler returns the Prometheus HTTP handler for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// RecordComparison counts a finished comparison.
func (m *Metrics) RecordComparison(kind string, winner types.Provider) {
	m.ComparisonsTotal.WithLabelValues(kind, string(winner)).Inc()
}

// RecordValidationError counts a rejected input.
func (m *Metrics) RecordValidationError(operation string) {
	m.ValidationErrorsTotal.WithLabelValues(operation).Inc()
}

// RecordAnalysis counts a scenario analysis by outcome.
func (m *Metrics) RecordAnalysis(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.AnalysesTotal.WithLabelValues(status).Inc()
}

// ObserveQuote records a quote lookup. Its signature matches pricing.Observer.
func (m *Metrics) ObserveQuote(provider types.Provider, kind string, d time.Duration, err error) {
	m.QuoteLookupDuration.WithLabelValues(string(provider), kind).Observe(d.Seconds())
	if err != nil {
		m.QuoteErrorsTotal.WithLabelValues(string(provider), kind).Inc()
	}
}

// RecordHTTPRequest records an HTTP request metric.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}
