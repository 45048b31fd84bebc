package hook

import (
	"sync"
)

// BoundsCache holds the last computed window bounds of the selected
// surface. The corrected hook reuses the bounds across cache-reusable
// commands and invalidates them for everything else.
type BoundsCache struct {
	mu    sync.Mutex
	start int
	end   int
	valid bool
}

// Set stores the bounds and marks the cache valid.
func (c *BoundsCache) Set(start, end int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start, c.end, c.valid = start, end, true
}

// Get returns the cached bounds and whether they are valid.
func (c *BoundsCache) Get() (start, end int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start, c.end, c.valid
}

// Invalidate discards the cached bounds.
func (c *BoundsCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start, c.end, c.valid = 0, 0, false
}

// Valid reports whether the cache currently holds bounds.
func (c *BoundsCache) Valid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valid
}
