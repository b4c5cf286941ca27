package usecase

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheItem[V any] struct {
	data      V
	expiresAt time.Time
}

// ttlCache is an LRU whose entries also expire after a fixed TTL.
//
// Every Delete bumps a generation counter. A loader takes Generation before
// reading the source and stores with SetIfCurrent, so a value read before an
// invalidation is never cached after it.
type ttlCache[V any] struct {
	lru *lru.Cache[string, cacheItem[V]]
	ttl time.Duration
	now func() time.Time

	mu  sync.Mutex
	gen uint64
}

func newTTLCache[V any](size int, ttl time.Duration) (*ttlCache[V], error) {
	l, err := lru.New[string, cacheItem[V]](size)
	if err != nil {
		return nil, err
	}
	return &ttlCache[V]{
		lru: l,
		ttl: ttl,
		now: time.Now,
	}, nil
}

func (c *ttlCache[V]) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// SetIfCurrent stores data only when no Delete happened since gen was taken.
func (c *ttlCache[V]) SetIfCurrent(key string, data V, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.lru.Add(key, cacheItem[V]{
		data:      data,
		expiresAt: c.now().Add(c.ttl),
	})
	return true
}

func (c *ttlCache[V]) Get(key string) (V, bool) {
	var zero V
	item, ok := c.lru.Get(key)
	if !ok {
		return zero, false
	}
	if c.now().After(item.expiresAt) {
		c.lru.Remove(key)
		return zero, false
	}
	return item.data, true
}

func (c *ttlCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.lru.Remove(key)
}
