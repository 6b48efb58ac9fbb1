package layout

import (
	"reflect"
	"sync"
)

type cacheEntry struct {
	Layout TypeLayout
	Err    *LayoutError
}

type cache struct {
	mu     sync.RWMutex
	byType map[reflect.Type]cacheEntry
}

func newCache() *cache {
	return &cache{byType: make(map[reflect.Type]cacheEntry, 64)}
}

func (c *cache) get(t reflect.Type) (cacheEntry, bool) {
	if c == nil {
		return cacheEntry{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.byType[t]
	return e, ok
}

func (c *cache) put(t reflect.Type, e cacheEntry) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byType[t] = e
}
