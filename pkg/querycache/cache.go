package querycache

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/storefront/pkg/cache"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

// DefaultCapacity is the number of entries kept before the least recently
// used one is dropped.
const DefaultCapacity = 1024

// Cache is the shared query cache. It is safe for concurrent use.
type Cache struct {
	lru    *cache.LRU[string, Entry]
	now    func() time.Time
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[int]func(Event)
	nextSubID   int

	pendingMu sync.Mutex
	pending   []Event
}

// Option configures a Cache.
type Option func(*Cache)

// WithCapacity bounds the number of entries. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.lru = cache.NewLRU[string, Entry](n)
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock overrides the time source used for UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		lru:         cache.NewLRU[string, Entry](DefaultCapacity),
		now:         time.Now,
		logger:      logger.Discard(),
		subscribers: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(c)
	}

	// The eviction callback runs under the LRU lock, so the event is queued
	// and published by the Set that caused it.
	c.lru.OnEvict(func(id string, _ Entry) {
		c.pendingMu.Lock()
		c.pending = append(c.pending, Event{Type: EventEvicted, Key: keyFromID(id)})
		c.pendingMu.Unlock()
	})
	return c
}

// Get returns the entry stored under key.
func (c *Cache) Get(key Key) (Entry, bool) {
	return c.lru.Get(key.id())
}

// Set stores data under key as a fresh entry.
func (c *Cache) Set(key Key, data json.RawMessage) {
	entry := Entry{
		Key:       append(Key(nil), key...),
		Data:      append(json.RawMessage(nil), data...),
		UpdatedAt: c.now(),
	}
	c.lru.Put(key.id(), entry)

	c.publish(Event{Type: EventUpdated, Key: entry.Key})
	c.flushPending()
}

// Remove deletes the entry under key. It reports whether an entry existed.
func (c *Cache) Remove(key Key) bool {
	if _, ok := c.lru.Remove(key.id()); !ok {
		return false
	}
	c.logger.Debug("query cache entry removed", logger.CacheKey(key.String()))
	c.publish(Event{Type: EventRemoved, Key: key})
	return true
}

// Invalidate marks every entry whose key starts with prefix as stale and
// notifies subscribers once per entry. It returns the number of entries
// affected. Stale entries keep their data until replaced.
func (c *Cache) Invalidate(prefix Key) int {
	var invalidated []Key
	for _, id := range c.lru.Keys() {
		key := keyFromID(id)
		if !key.HasPrefix(prefix) {
			continue
		}
		if c.lru.Update(id, func(e Entry) Entry { e.Stale = true; return e }) {
			invalidated = append(invalidated, key)
		}
	}

	c.logger.Debug("query cache invalidated",
		logger.CacheKey(prefix.String()),
		slog.Int("entries", len(invalidated)),
	)
	for _, key := range invalidated {
		c.publish(Event{Type: EventInvalidated, Key: key})
	}
	return len(invalidated)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Subscribe registers fn for change events and returns a function that
// removes the subscription. fn is called synchronously after the change.
func (c *Cache) Subscribe(fn func(Event)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers, id)
			c.mu.Unlock()
		})
	}
}

func (c *Cache) publish(ev Event) {
	c.mu.RLock()
	subs := make([]func(Event), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.RUnlock()

	for _, fn := range subs {
		fn(ev)
	}
}

func (c *Cache) flushPending() {
	c.pendingMu.Lock()
	pending := c.pending
	c.pending = nil
	c.pendingMu.Unlock()

	for _, ev := range pending {
		c.logger.Debug("query cache entry evicted", logger.CacheKey(ev.Key.String()))
		c.publish(ev)
	}
}
