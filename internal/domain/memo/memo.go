// Package memo caches computed valuation tables keyed by dataset and
// request parameters. The engine is deterministic over its inputs, so
// a hit can be served without recomputation.
package memo

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/syedmahboobhussain12-ai/cricval/internal/domain/model"
)

// Cache stores valuation tables by request key.
type Cache interface {
	// Get returns the cached table for key, if present.
	Get(ctx context.Context, key string) ([]model.Valuation, bool)

	// Put stores a table under key, evicting old entries when bounded.
	Put(ctx context.Context, key string, rows []model.Valuation)

	// Invalidate drops a single key, e.g. when its dataset is reloaded.
	Invalidate(ctx context.Context, key string)

	Size() int64
}

// entry is a single cache slot in the eviction list.
type entry struct {
	key  string
	rows []model.Valuation
	next *entry
}

// reset clears the entry state for reuse.
func (e *entry) reset() {
	e.key = ""
	e.rows = nil
	e.next = nil
}

// inMemoryCache implements Cache with a map plus a linked list for
// bounded LIFO eviction, reusing entries through a sync.Pool.
// With maxSize <= 0 the cache is unbounded and never evicts.
type inMemoryCache struct {
	mu        sync.RWMutex
	entries   map[string]*entry
	head      *entry // most recently added
	maxSize   int
	size      atomic.Int64
	entryPool sync.Pool
}

// NewInMemoryCache creates a cache with configuration options.
func NewInMemoryCache(opts ...Option) Cache {
	c := &inMemoryCache{
		maxSize: 64, // plenty for one dataset's seasons x formula combinations
	}
	for _, opt := range opts {
		opt(c)
	}

	c.entries = make(map[string]*entry)
	if c.maxSize > 0 {
		c.entryPool = sync.Pool{
			New: func() interface{} {
				return &entry{}
			},
		}
	}
	return c
}

// Get returns the cached table for key, if present.
func (c *inMemoryCache) Get(_ context.Context, key string) ([]model.Valuation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || e == nil {
		return nil, false
	}
	return e.rows, true
}

// Put stores a table under key. Replacing an existing key updates the
// slot in place; new keys may trigger eviction of the oldest entry.
func (c *inMemoryCache) Put(_ context.Context, key string, rows []model.Valuation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok && existing != nil {
		existing.rows = rows
		return
	}

	if c.maxSize <= 0 {
		// Unbounded: store without list bookkeeping.
		c.entries[key] = &entry{key: key, rows: rows}
		c.size.Add(1)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	e := c.entryPool.Get().(*entry)
	e.key = key
	e.rows = rows
	e.next = c.head
	c.head = e
	c.entries[key] = e
	c.size.Add(1)
}

// Invalidate drops a single key.
func (c *inMemoryCache) Invalidate(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	c.size.Add(-1)

	if c.maxSize <= 0 || e == nil {
		return
	}
	if c.head == e {
		c.head = e.next
	} else {
		cur := c.head
		for cur != nil && cur.next != e {
			cur = cur.next
		}
		if cur != nil {
			cur.next = e.next
		}
	}
	e.reset()
	c.entryPool.Put(e)
}

// evictOldest removes the tail of the list. Must be called with c.mu held.
func (c *inMemoryCache) evictOldest() {
	if len(c.entries) == 0 || c.head == nil {
		return
	}

	if c.head.next == nil {
		delete(c.entries, c.head.key)
		c.head.reset()
		c.entryPool.Put(c.head)
		c.head = nil
		c.size.Add(-1)
		return
	}

	var prev *entry
	cur := c.head
	for cur.next != nil {
		prev = cur
		cur = cur.next
	}
	prev.next = nil
	delete(c.entries, cur.key)
	cur.reset()
	c.entryPool.Put(cur)
	c.size.Add(-1)
}

// Size returns the current number of cached tables.
func (c *inMemoryCache) Size() int64 {
	return c.size.Load()
}
