package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/guttosm/cardapio-service/internal/metrics"
)

// Sharded spreads entries over independently locked LRU shards.
type Sharded[V any] struct {
	name      string
	shards    []*ttlCache[V]
	shardMask uint64
}

// NewSharded creates a cache named for metrics with the given total capacity and TTL.
// numShards is rounded up to a power of two; zero or less means 16.
func NewSharded[V any](name string, capacity int, ttl time.Duration, numShards int) *Sharded[V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache[V], n)
	for i := range shards {
		shards[i] = newTTLCache[V](name, perShard, ttl)
	}

	return &Sharded[V]{
		name:      name,
		shards:    shards,
		shardMask: uint64(n - 1),
	}
}

func (s *Sharded[V]) shard(key string) *ttlCache[V] {
	return s.shards[xxhash.Sum64String(key)&s.shardMask]
}

// Get returns the live value for key.
func (s *Sharded[V]) Get(key string) (V, bool) {
	return s.shard(key).Get(key)
}

// Set stores value under key, refreshing its TTL.
func (s *Sharded[V]) Set(key string, value V) {
	s.shard(key).Set(key, value)
}

// Invalidate removes key.
func (s *Sharded[V]) Invalidate(key string) {
	s.shard(key).Invalidate(key)
}

// Clear removes every entry.
func (s *Sharded[V]) Clear() {
	for _, shard := range s.shards {
		shard.Clear()
	}
}

// Stop ends the background cleanup of every shard.
func (s *Sharded[V]) Stop() {
	for _, shard := range s.shards {
		shard.Stop()
	}
}

// Len returns the number of stored entries, expired ones included until they are swept.
func (s *Sharded[V]) Len() int {
	n := 0
	for _, shard := range s.shards {
		n += shard.Len()
	}
	return n
}

// Metrics sums the counters of every shard.
func (s *Sharded[V]) Metrics() Metrics {
	var total Metrics
	for _, shard := range s.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	metrics.UpdateCacheSize(s.name, total.Size)
	return total
}

// ttlCache is one LRU shard with per-entry expiry.
type ttlCache[V any] struct {
	name      string
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*entry[V]
	head      *entry[V]
	tail      *entry[V]
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *entry[V]
	next      *entry[V]
}

func newTTLCache[V any](name string, capacity int, ttl time.Duration) *ttlCache[V] {
	c := &ttlCache[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry[V], capacity),
		stopCh:   make(chan struct{}),
	}
	go c.sweep()
	return c
}

func (c *ttlCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		metrics.RecordCacheOperation(c.name, "get", "miss")
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.removeEntry(e)
		c.misses.Add(1)
		metrics.RecordCacheOperation(c.name, "get", "expired")
		return zero, false
	}

	c.moveToFront(e)
	c.hits.Add(1)
	metrics.RecordCacheOperation(c.name, "get", "hit")
	return e.value, true
}

func (c *ttlCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry[V]{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = e
	c.addToFront(e)

	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		c.evictions.Add(1)
		metrics.RecordCacheOperation(c.name, "evict", "capacity")
	}
}

func (c *ttlCache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.removeEntry(e)
		metrics.RecordCacheOperation(c.name, "invalidate", "success")
	}
}

func (c *ttlCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry[V], c.capacity)
	c.head = nil
	c.tail = nil
	metrics.RecordCacheOperation(c.name, "clear", "success")
}

func (c *ttlCache[V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *ttlCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *ttlCache[V]) Metrics() Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return Metrics{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
		Capacity:  c.capacity,
	}
}

func (c *ttlCache[V]) sweep() {
	interval := c.ttl
	if interval <= 0 || interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache[V]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, e := range c.items {
		if now.After(e.expiresAt) {
			c.removeEntry(e)
		}
	}
}

func (c *ttlCache[V]) removeEntry(e *entry[V]) {
	delete(c.items, e.key)
	c.unlink(e)
}

func (c *ttlCache[V]) moveToFront(e *entry[V]) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.addToFront(e)
}

func (c *ttlCache[V]) addToFront(e *entry[V]) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *ttlCache[V]) unlink(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

var _ CacheWithMetrics[int] = (*Sharded[int])(nil)
