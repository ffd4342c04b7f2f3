// Package metrics provides Prometheus instrumentation for the plan catalog.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route pattern, and status bucket.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "plancatalog",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route pattern, and status class.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route pattern.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "plancatalog",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CatalogMutationsTotal counts catalog mutations by audit action and result.
	CatalogMutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "plancatalog",
			Name:      "catalog_mutations_total",
			Help:      "Catalog mutations by action (created, updated, ...) and result (ok, error, noop).",
		},
		[]string{"action", "result"},
	)

	// AuditAppendFailuresTotal counts audit entries that could not be written
	// after their mutation committed (best-effort audit policy).
	AuditAppendFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "plancatalog",
			Name:      "audit_append_failures_total",
			Help:      "Committed mutations whose audit entry could not be appended.",
		},
		[]string{"action"},
	)

	// PanicsRecoveredTotal counts handler panics turned into 500 responses.
	PanicsRecoveredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "plancatalog",
			Name:      "http_panics_recovered_total",
			Help:      "Handler panics recovered by the HTTP middleware.",
		},
	)

	// RateLimitedTotal counts mutation requests rejected by the rate limiter.
	RateLimitedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "plancatalog",
			Name:      "http_rate_limited_total",
			Help:      "Requests rejected with 429 by the per-caller rate limiter.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		CatalogMutationsTotal,
		AuditAppendFailuresTotal,
		PanicsRecoveredTotal,
		RateLimitedTotal,
	)
}

// Result labels for CatalogMutationsTotal.
const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultNoop  = "noop"
)

// ObserveMutation records the outcome of one catalog mutation.
func ObserveMutation(action, result string) {
	CatalogMutationsTotal.WithLabelValues(action, result).Inc()
}

// Middleware records request metrics. The route label is the ServeMux
// pattern matched by r, so path parameters do not explode cardinality.
func Middleware(mux *http.ServeMux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, route := mux.Handler(r)
			if route == "" {
				route = "unmatched"
			}

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(sw, r)

			HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
			HTTPRequestsTotal.WithLabelValues(r.Method, route, statusBucket(sw.status)).Inc()
		})
	}
}

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// statusBucket groups HTTP status codes into classes (2xx, 3xx, 4xx, 5xx).
func statusBucket(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
