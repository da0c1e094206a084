package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mkoval-dev/bookmarket-backend/pkg/observer"
)

// StoreMetrics counts state-store mutations as reported by the observer hub.
type StoreMetrics struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	requests  *prometheus.HistogramVec
}

// NewStoreMetrics registers the storefront metrics on a fresh registry.
func NewStoreMetrics() *StoreMetrics {
	registry := prometheus.NewRegistry()
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutations_total",
		Help: "State store mutations by store and operation.",
	}, []string{"store", "op"})
	requests := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
	registry.MustRegister(mutations, requests)
	return &StoreMetrics{
		registry:  registry,
		mutations: mutations,
		requests:  requests,
	}
}

// ObserveMutation increments the mutation counter for the event.
func (m *StoreMetrics) ObserveMutation(event observer.Event) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(normalizeLabel(event.Store), normalizeLabel(event.Op)).Inc()
}

// ObserveRequest records a completed HTTP request.
func (m *StoreMetrics) ObserveRequest(method string, status int, duration time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(method, statusLabel(status)).Observe(duration.Seconds())
}

// Handler exposes the registry for the /metrics endpoint.
func (m *StoreMetrics) Handler() http.Handler {
	if m == nil || m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return value
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
