package devserver

import "sync"

const defaultMaxCacheSize = 5

// IconCache keeps encoded PNG icons keyed by size, evicting the least
// recently used entry once full.
type IconCache struct {
	mu      sync.Mutex
	icons   map[int][]byte
	order   []int // tracks use order for LRU eviction
	maxSize int
}

func NewIconCache() *IconCache {
	return NewIconCacheWithSize(defaultMaxCacheSize)
}

func NewIconCacheWithSize(maxSize int) *IconCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &IconCache{
		icons:   make(map[int][]byte),
		order:   make([]int, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *IconCache) Get(size int) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if icon, exists := c.icons[size]; exists {
		// Move to end (most recently used)
		c.moveToEnd(size)
		return icon, true
	}
	return nil, false
}

func (c *IconCache) Set(size int, icon []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// If key already exists, just update and move to end
	if _, exists := c.icons[size]; exists {
		c.icons[size] = icon
		c.moveToEnd(size)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.icons[size] = icon
	c.order = append(c.order, size)
}

func (c *IconCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.icons)
}

func (c *IconCache) moveToEnd(size int) {
	for i, k := range c.order {
		if k == size {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, size)
			return
		}
	}
}

func (c *IconCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.icons, oldest)
}
