package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type item[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// LRUCache is a size bounded cache whose entries also expire after ttl.
// Zero values are stored like any other, so a cached "nothing" is still a hit.
type LRUCache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	order    *list.List
	items    map[K]*list.Element
	now      func() time.Time
}

func NewLRUCache[K comparable, V any](capacity int, ttl time.Duration) *LRUCache[K, V] {
	return &LRUCache[K, V]{
		capacity: max(capacity, 1),
		ttl:      ttl,
		order:    list.New(),
		items:    make(map[K]*list.Element, capacity),
		now:      time.Now,
	}
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		return zero, false
	}
	it := el.Value.(*item[K, V])
	if c.now().After(it.expiresAt) {
		c.remove(el)
		return zero, false
	}
	c.order.MoveToFront(el)
	return it.value, true
}

func (c *LRUCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		it := el.Value.(*item[K, V])
		it.value, it.expiresAt = value, expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&item[K, V]{key: key, value: value, expiresAt: expiresAt})
	for c.order.Len() > c.capacity {
		c.remove(c.order.Back())
	}
}

func (c *LRUCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Start runs the expiry janitor until ctx is done.
func (c *LRUCache[K, V]) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.evictExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache[K, V]) evictExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*item[K, V]).expiresAt) {
			c.remove(el)
		}
		el = prev
	}
}

func (c *LRUCache[K, V]) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*item[K, V]).key)
}
