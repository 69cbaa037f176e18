// Package cache provides a generic, thread-safe LRU cache used to bound the
// memory held by higher-level caches.
//
// When the cache is full the least recently used entry is dropped and the
// eviction callback, if any, is told about it. Explicit removals do not invoke
// the callback: the caller already knows what it removed.
//
//	c := cache.NewLRU[string, []byte](1024)
//	c.OnEvict(func(key string, _ []byte) {
//		log.Printf("evicted %s", key)
//	})
//
//	c.Put("vendors/acme", payload)
//	v, ok := c.Get("vendors/acme")  // marks the entry recently used
//	v, ok = c.Peek("vendors/acme")  // does not
//
// Update mutates an entry in place under the cache lock, which makes
// read-modify-write sequences atomic:
//
//	c.Update("vendors/acme", func(v []byte) []byte { return nil })
//
// Get, Put, Peek, Remove and Update are O(1). Keys is O(n) and returns a
// snapshot ordered from most to least recently used.
package cache
