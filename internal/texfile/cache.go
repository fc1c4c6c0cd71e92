package texfile

import "sync"

// Cache is a concurrency-safe cache of decoded images, keyed by path.
// Failed loads are cached as nil so a missing file is only probed once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*Image
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{items: make(map[string]*Image)}
}

// Resolve loads and caches the image at path. Returns nil if the file
// cannot be read or decoded.
func (c *Cache) Resolve(path string) *Image {
	c.mu.RLock()
	if img, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	img, _ := Load(path)

	c.mu.Lock()
	if cached, ok := c.items[path]; ok {
		c.mu.Unlock()
		return cached
	}
	c.items[path] = img
	c.mu.Unlock()

	return img
}
