package storage

import (
	"sync"

	"github.com/fleetcore/helmsman/internal/core"
)

// Cache is the in-process session cache abstraction injected into the
// store. Keeping it explicit (rather than a package-global map) makes the
// eviction policy visible and the store testable.
type Cache interface {
	Get(sessionID string) (*core.SessionMemory, bool)
	Put(sessionID string, memory *core.SessionMemory)
	Remove(sessionID string)
}

// SessionCache is a bounded FIFO cache: when full, the oldest-inserted
// session is evicted first.
type SessionCache struct {
	mu      sync.Mutex
	entries map[string]*core.SessionMemory
	order   []string
	max     int
}

func NewSessionCache(max int) *SessionCache {
	if max <= 0 {
		max = 1000
	}
	return &SessionCache{
		entries: make(map[string]*core.SessionMemory),
		max:     max,
	}
}

func (c *SessionCache) Get(sessionID string) (*core.SessionMemory, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mem, ok := c.entries[sessionID]
	return mem, ok
}

func (c *SessionCache) Put(sessionID string, memory *core.SessionMemory) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[sessionID]; !exists {
		c.order = append(c.order, sessionID)
		for len(c.order) > c.max {
			evicted := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, evicted)
		}
	}
	c.entries[sessionID] = memory
}

func (c *SessionCache) Remove(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, sessionID)
	for i, id := range c.order {
		if id == sessionID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
