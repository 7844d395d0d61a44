package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CacheMetrics exposes hit/miss/eviction counters for a heuristic cache.
// Registration is optional: a nil *CacheMetrics is safe to use everywhere
// a cache accepts one, so instrumentation never becomes a hard dependency.
type CacheMetrics struct {
	Hits      prometheus.Counter
	Misses    prometheus.Counter
	Evictions prometheus.Counter
}

// NewCacheMetrics registers and returns counters for the named cache.
func NewCacheMetrics(reg prometheus.Registerer, cacheName string) *CacheMetrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"cache": cacheName}
	return &CacheMetrics{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Name:        "skyplan_heuristic_cache_hits_total",
			Help:        "Number of heuristic cache lookups served from the cache.",
			ConstLabels: labels,
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Name:        "skyplan_heuristic_cache_misses_total",
			Help:        "Number of heuristic cache lookups that required computation.",
			ConstLabels: labels,
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Name:        "skyplan_heuristic_cache_evictions_total",
			Help:        "Number of entries evicted from the heuristic cache.",
			ConstLabels: labels,
		}),
	}
}

// IncHit increments the hit counter if metrics are enabled.
func (m *CacheMetrics) IncHit() {
	if m != nil {
		m.Hits.Inc()
	}
}

// IncMiss increments the miss counter if metrics are enabled.
func (m *CacheMetrics) IncMiss() {
	if m != nil {
		m.Misses.Inc()
	}
}

// IncEviction increments the eviction counter if metrics are enabled.
func (m *CacheMetrics) IncEviction() {
	if m != nil {
		m.Evictions.Inc()
	}
}
