package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	ConversionsTotal   *prometheus.CounterVec
	PanchangaComputed  prometheus.Counter
	FallbackComputed   prometheus.Counter
	EventsMatchedTotal prometheus.Counter
}

// NewMetrics creates the collectors on a private registry, so tests can
// build as many instances as they like without duplicate registration
// panics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "panchanga_http_requests_total",
			Help: "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "panchanga_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		ConversionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "panchanga_conversions_total",
			Help: "Calendar conversions performed, by direction and mode.",
		}, []string{"direction", "mode"}),
		PanchangaComputed: factory.NewCounter(prometheus.CounterOpts{
			Name: "panchanga_calculations_total",
			Help: "Full almanac calculations performed.",
		}),
		FallbackComputed: factory.NewCounter(prometheus.CounterOpts{
			Name: "panchanga_astronomical_fallbacks_total",
			Help: "Conversions served by the astronomical fallback.",
		}),
		EventsMatchedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "panchanga_events_matched_total",
			Help: "Events matched across all requests.",
		}),
	}
}

// Handler returns the /metrics endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// CountConversion records one conversion. Mode is "table" or "computed".
func (m *Metrics) CountConversion(direction string, computed bool) {
	mode := "table"
	if computed {
		mode = "computed"
		m.FallbackComputed.Inc()
	}
	m.ConversionsTotal.WithLabelValues(direction, mode).Inc()
}

// Middleware observes request counts and latency. Route is the request
// path pattern, not the raw URL, to keep cardinality bounded.
func (m *Metrics) Middleware(routePattern func(*http.Request) string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			route := routePattern(r)
			m.requestsTotal.WithLabelValues(
				r.Method, route, strconv.Itoa(wrapped.statusCode)).Inc()
			m.requestDuration.WithLabelValues(r.Method, route).
				Observe(time.Since(start).Seconds())
		})
	}
}
