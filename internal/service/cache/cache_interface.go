// Package cache holds the in-process TTL caches used for customization sessions and catalog reads.
package cache

// Cache is a string-keyed store whose entries expire.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics[V any] interface {
	Cache[V]
	Metrics() Metrics
}
