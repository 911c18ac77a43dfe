// Package metrics registers the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"justchoose/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Provider call outcomes
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeQuota    = "quota"
	OutcomeError    = "error"
)

var (
	providerCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "justchoose_provider_calls_total",
			Help: "Total number of outbound places provider calls",
		},
		[]string{"provider", "operation", "outcome"},
	)

	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "justchoose_cache_lookups_total",
			Help: "Total number of result cache lookups",
		},
		[]string{"kind", "result"},
	)

	spinsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "justchoose_spins_total",
			Help: "Total number of settled spins",
		},
		[]string{"source", "authenticated"},
	)

	spinWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "justchoose_spin_writes_total",
			Help: "Total number of spin record writes by recorder mode",
		},
		[]string{"mode", "outcome"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "justchoose_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "justchoose_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	dbOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "justchoose_db_open_connections",
			Help: "Number of established database connections",
		},
	)

	dbInUseConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "justchoose_db_in_use_connections",
			Help: "Number of database connections currently in use",
		},
	)
)

// ObserveProviderCall counts one outbound provider call.
func ObserveProviderCall(provider entity.ProviderKind, operation, outcome string) {
	providerCallsTotal.WithLabelValues(provider.String(), operation, outcome).Inc()
}

// ObserveCacheLookup counts one cache read of the given kind (search or geocode).
func ObserveCacheLookup(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookupsTotal.WithLabelValues(kind, result).Inc()
}

// ObserveSpin counts one settled spin. source is "server" or "client".
func ObserveSpin(source string, authenticated bool) {
	spinsTotal.WithLabelValues(source, strconv.FormatBool(authenticated)).Inc()
}

// ObserveSpinWrite counts one recorder hand-off. mode is "direct", "pubsub" or "archive".
func ObserveSpinWrite(mode, outcome string) {
	spinWritesTotal.WithLabelValues(mode, outcome).Inc()
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, path, status string, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// SetDBPool publishes connection pool usage.
func SetDBPool(open, inUse int) {
	dbOpenConnections.Set(float64(open))
	dbInUseConnections.Set(float64(inUse))
}
