package merge

import "sync"

// Cache stores merge results keyed by the input class list.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, data string)
	Clear()
}

// SimpleCache is an in-memory Cache backed by a sync.Map. It is safe for
// concurrent use and grows until cleared.
type SimpleCache struct {
	items sync.Map
}

// NewCache creates an empty SimpleCache.
func NewCache() *SimpleCache {
	return &SimpleCache{}
}

// Get returns the cached value for key.
func (c *SimpleCache) Get(key string) (string, bool) {
	if v, ok := c.items.Load(key); ok {
		return v.(string), true
	}
	return "", false
}

// Set stores data under key.
func (c *SimpleCache) Set(key string, data string) {
	c.items.Store(key, data)
}

// Clear removes all entries.
func (c *SimpleCache) Clear() {
	c.items.Range(func(k, _ any) bool {
		c.items.Delete(k)
		return true
	})
}
