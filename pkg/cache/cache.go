package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultJanitorInterval = 2 * time.Minute

var (
	cacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "merch_fulfillment",
		Subsystem: "cache",
		Name:      "requests_total",
		Help:      "Cache lookups by result (hit, miss).",
	}, []string{"result"})

	cacheEvictions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "merch_fulfillment",
		Subsystem: "cache",
		Name:      "evictions_total",
		Help:      "Entries removed by reason (capacity, expired).",
	}, []string{"reason"})
)

type entry struct {
	key        string
	value      []byte
	expiration time.Time
}

// LRUCache - кэш ответов провайдера с вытеснением по давности и TTL.
type LRUCache struct {
	capacity int
	ttl      time.Duration
	interval time.Duration

	mu    sync.Mutex
	ll    *list.List
	items map[string]*list.Element
}

func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		interval: defaultJanitorInterval,
		ll:       list.New(),
		items:    make(map[string]*list.Element),
	}
}

// WithJanitorInterval меняет период очистки просроченных записей.
func (c *LRUCache) WithJanitorInterval(d time.Duration) *LRUCache {
	if d > 0 {
		c.interval = d
	}
	return c
}

func (c *LRUCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ele, ok := c.items[key]
	if !ok {
		cacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := ele.Value.(*entry)
	if time.Now().After(ent.expiration) {
		c.removeElement(ele)
		cacheEvictions.WithLabelValues("expired").Inc()
		cacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}
	c.ll.MoveToFront(ele)
	cacheRequests.WithLabelValues("hit").Inc()
	return ent.value, true
}

func (c *LRUCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := time.Now().Add(c.ttl)
	if ele, ok := c.items[key]; ok {
		c.ll.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.value = value
		ent.expiration = expiration
		return
	}

	c.items[key] = c.ll.PushFront(&entry{key: key, value: value, expiration: expiration})
	for c.ll.Len() > c.capacity {
		c.removeElement(c.ll.Back())
		cacheEvictions.WithLabelValues("capacity").Inc()
	}
}

func (c *LRUCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ele, ok := c.items[key]; ok {
		c.removeElement(ele)
	}
}

func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *LRUCache) removeElement(e *list.Element) {
	c.ll.Remove(e)
	delete(c.items, e.Value.(*entry).key)
}

// Start запускает фоновую очистку до отмены ctx.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for e := c.ll.Back(); e != nil; {
		prev := e.Prev()
		if now.After(e.Value.(*entry).expiration) {
			c.removeElement(e)
			cacheEvictions.WithLabelValues("expired").Inc()
		}
		e = prev
	}
}
