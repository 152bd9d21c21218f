// Package cache provides caching decorators around the elevation provider.
// Elevation is static per coordinate, so cached values never go stale.
package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/observability"
)

// CachedElevationProvider wraps an ElevationProvider with an in-memory LRU
// cache.
type CachedElevationProvider struct {
	inner   domain.ElevationProvider
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedElevationProvider creates a cache decorator around an elevation
// provider.
func NewCachedElevationProvider(inner domain.ElevationProvider, maxEntries int, metrics *observability.Metrics) *CachedElevationProvider {
	return &CachedElevationProvider{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedElevationProvider) FetchElevation(ctx context.Context, lat, lon float64) (float64, error) {
	key := coordKey(lat, lon)
	if elevation, ok := c.cache.get(key); ok {
		c.metrics.ElevationCache.WithLabelValues("lru", "hit").Inc()
		return elevation, nil
	}
	c.metrics.ElevationCache.WithLabelValues("lru", "miss").Inc()

	elevation, err := c.inner.FetchElevation(ctx, lat, lon)
	if err != nil {
		return 0, err
	}
	c.cache.put(key, elevation)
	return elevation, nil
}

// coordKey buckets coordinates at ~11m resolution, enough that repeated
// lookups for the same location share a cache entry.
func coordKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}

// lruCache is a simple thread-safe LRU cache for elevation values.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value float64
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
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
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
