package store

import (
	"container/list"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/solar-quote/models"
)

// CacheStats counts cache operations since construction.
type CacheStats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Entries   int
}

type memoryCacheEntry struct {
	key       string
	features  []models.AddressFeature
	expiresAt time.Time
}

// MemorySuggestionCache is an insertion-ordered in-process cache.
//
// With maxEntries > 0 the oldest inserted entry is evicted once the bound is
// exceeded. With ttl > 0 entries stop being served ttl after they were
// written. Replacing a key keeps its original position.
type MemorySuggestionCache struct {
	mu      sync.RWMutex
	entries map[string]*list.Element
	order   *list.List

	maxEntries int
	ttl        time.Duration
	now        func() time.Time

	hits, misses, evictions int64
}

// NewMemorySuggestionCache returns an in-process [SuggestionCache] that also
// implements [Purger]. Zero maxEntries and zero ttl mean unbounded and
// never-expiring.
func NewMemorySuggestionCache(maxEntries int, ttl time.Duration) *MemorySuggestionCache {
	return &MemorySuggestionCache{
		entries:    make(map[string]*list.Element),
		order:      list.New(),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (c *MemorySuggestionCache) Get(_ context.Context, key string) ([]models.AddressFeature, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, ErrCacheMiss
	}

	entry := elem.Value.(*memoryCacheEntry)
	if c.expired(entry) {
		c.remove(elem)
		c.misses++
		return nil, ErrCacheMiss
	}

	c.hits++
	return slices.Clone(entry.features), nil
}

func (c *MemorySuggestionCache) Set(_ context.Context, key string, features []models.AddressFeature) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}
	stored := slices.Clone(features)
	if stored == nil {
		stored = []models.AddressFeature{}
	}

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*memoryCacheEntry)
		entry.features = stored
		entry.expiresAt = expiresAt
		return nil
	}

	c.entries[key] = c.order.PushBack(&memoryCacheEntry{key: key, features: stored, expiresAt: expiresAt})

	for c.maxEntries > 0 && c.order.Len() > c.maxEntries {
		c.remove(c.order.Front())
		c.evictions++
	}

	return nil
}

// PurgeExpired implements [Purger].
func (c *MemorySuggestionCache) PurgeExpired(_ context.Context) (int, error) {
	if c.ttl <= 0 {
		return 0, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	purged := 0
	for elem := c.order.Front(); elem != nil; {
		next := elem.Next()
		if c.expired(elem.Value.(*memoryCacheEntry)) {
			c.remove(elem)
			purged++
		}
		elem = next
	}

	return purged, nil
}

// Stats returns a snapshot of the cache counters.
func (c *MemorySuggestionCache) Stats() CacheStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Entries:   c.order.Len(),
	}
}

// Keys returns the cached keys, oldest first.
func (c *MemorySuggestionCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*memoryCacheEntry).key)
	}
	return keys
}

func (c *MemorySuggestionCache) expired(entry *memoryCacheEntry) bool {
	return !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt)
}

// remove must be called with c.mu held.
func (c *MemorySuggestionCache) remove(elem *list.Element) {
	c.order.Remove(elem)
	delete(c.entries, elem.Value.(*memoryCacheEntry).key)
}
