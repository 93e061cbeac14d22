// Package metrics defines the Prometheus instruments exposed at /metrics.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics.
type Metrics struct {
	// HTTP request metrics.
	HTTPRequestTotal    *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Content cache metrics, labelled by collection tag.
	CacheHitTotal  *prometheus.CounterVec
	CacheMissTotal *prometheus.CounterVec
}

var (
	global *Metrics
	once   sync.Once
)

// New returns the process-wide Metrics instance, registering the
// collectors with the default registry on first call.
func New() *Metrics {
	once.Do(func() {
		global = &Metrics{
			HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			}, []string{"method", "path", "status"}),
			HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			}, []string{"method", "path", "status"}),
			CacheHitTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "content_cache_hits_total",
				Help: "Content cache reads served from the memoized value",
			}, []string{"collection"}),
			CacheMissTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "content_cache_misses_total",
				Help: "Content cache reads that recomputed from the store",
			}, []string{"collection"}),
		}
		prometheus.MustRegister(
			global.HTTPRequestTotal,
			global.HTTPRequestDuration,
			global.CacheHitTotal,
			global.CacheMissTotal,
		)
	})
	return global
}

// ObserveCacheRead records a single cache read outcome for a collection.
// Per-product detail tags are collapsed to one label value to keep
// cardinality bounded.
func (m *Metrics) ObserveCacheRead(tag string, hit bool) {
	if len(tag) > 8 && tag[:8] == "product:" {
		tag = "product_detail"
	}
	if hit {
		m.CacheHitTotal.WithLabelValues(tag).Inc()
		return
	}
	m.CacheMissTotal.WithLabelValues(tag).Inc()
}
