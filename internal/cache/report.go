package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"spesegen/internal/core"
)

// LoadFunc computes a report result on a cache miss.
type LoadFunc func(ctx context.Context) (core.Table, error)

// ReportCache memoizes catalog results by report name. Concurrent misses for
// the same name share a single load. Invalidate bumps a generation counter so
// loads started before an append never repopulate the cache afterwards.
//
// Cached tables are shared between callers and must be treated as read-only.
type ReportCache struct {
	lru   *LRUCache[core.Table]
	group singleflight.Group

	mu         sync.Mutex
	generation uint64
}

// NewReportCache returns a cache holding up to size results for ttl. A
// non-positive size or ttl yields a pass-through cache.
func NewReportCache(size int, ttl time.Duration) *ReportCache {
	c := &ReportCache{}
	if size > 0 && ttl > 0 {
		c.lru = NewLRUCache[core.Table](size, ttl)
	}
	return c
}

// Enabled reports whether results are retained between calls.
func (c *ReportCache) Enabled() bool {
	return c.lru != nil
}

// Get returns the cached result for name or loads it. The boolean is true on
// a cache hit.
func (c *ReportCache) Get(ctx context.Context, name string, load LoadFunc) (core.Table, bool, error) {
	if c.lru == nil {
		t, err := load(ctx)
		return t, false, err
	}
	if t, ok := c.lru.Get(name); ok {
		return t, true, nil
	}

	gen := c.currentGeneration()
	key := strconv.FormatUint(gen, 10) + ":" + name
	v, err, _ := c.group.Do(key, func() (any, error) {
		t, err := load(ctx)
		if err != nil {
			return core.Table{}, err
		}
		c.mu.Lock()
		if c.generation == gen {
			c.lru.Set(name, t)
		}
		c.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return core.Table{}, false, err
	}
	return v.(core.Table), false, nil
}

// Invalidate drops every cached result.
func (c *ReportCache) Invalidate() {
	if c.lru == nil {
		return
	}
	c.mu.Lock()
	c.generation++
	c.lru.Purge()
	c.mu.Unlock()
}

// CleanExpired lets a Manager sweep the underlying LRU.
func (c *ReportCache) CleanExpired() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.CleanExpired()
}

func (c *ReportCache) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}
