package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalog_http_requests_total",
			Help: "Total HTTP requests processed, by route pattern, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vitalog_http_request_duration_seconds",
			Help:    "HTTP request latency, by route pattern and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	sessionValidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vitalog_session_validations_total",
			Help: "Session cookie validations, by outcome (ok, renewed, rejected).",
		},
		[]string{"outcome"},
	)
)

// withMetrics records per-route request counts and latencies. The chi route
// pattern is used instead of the raw path so user IDs do not explode the
// label cardinality.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		httpRequestsTotal.
			WithLabelValues(route, r.Method, strconv.Itoa(lw.Status())).
			Inc()
		httpRequestDuration.
			WithLabelValues(route, r.Method).
			Observe(time.Since(start).Seconds())
	})
}
