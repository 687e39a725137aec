package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const purgeInterval = 2 * time.Minute

// Eviction reasons reported in metrics.
const (
	reasonCapacity = "capacity"
	reasonExpired  = "expired"
	reasonDeleted  = "deleted"
)

type item struct {
	key       string
	value     []byte
	expiresAt time.Time
}

func (i *item) expired(now time.Time) bool {
	return !now.Before(i.expiresAt)
}

// LRUCache is a size-bounded cache of encoded values whose entries expire
// after ttl. Reads refresh recency, writes refresh both recency and ttl.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	recency  *list.List // front is most recently used
	items    map[string]*list.Element
	now      func() time.Time
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		recency:  list.New(),
		items:    make(map[string]*list.Element, capacity),
		now:      time.Now,
	}
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		cacheMisses.Inc()
		return nil, false
	}

	it := el.Value.(*item)
	if it.expired(c.now()) {
		c.evict(el, reasonExpired)
		cacheMisses.Inc()
		return nil, false
	}

	c.recency.MoveToFront(el)
	cacheHits.Inc()
	return it.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		it := el.Value.(*item)
		it.value, it.expiresAt = value, expiresAt
		c.recency.MoveToFront(el)
		return
	}

	c.items[key] = c.recency.PushFront(&item{key: key, value: value, expiresAt: expiresAt})
	cacheEntries.Inc()

	for c.recency.Len() > c.capacity {
		c.evict(c.recency.Back(), reasonCapacity)
	}
}

// Delete invalidates key. Missing keys are ignored.
func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.evict(el, reasonDeleted)
	}
}

func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recency.Len()
}

// Start purges expired entries in the background until ctx is done.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.purgeExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) purgeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for el := c.recency.Back(); el != nil; {
		prev := el.Prev()
		if el.Value.(*item).expired(now) {
			c.evict(el, reasonExpired)
		}
		el = prev
	}
}

// evict must be called with mu held.
func (c *LRUCache) evict(el *list.Element, reason string) {
	it := c.recency.Remove(el).(*item)
	delete(c.items, it.key)
	cacheEntries.Dec()
	cacheEvictions.WithLabelValues(reason).Inc()
}
