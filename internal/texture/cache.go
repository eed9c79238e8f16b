package texture

import "sync"

// Prober resolves a texture path to its header information.
type Prober interface {
	Probe(path string) (ImageInfo, error)
}

// ProbeCache is a concurrency-safe cache of Probe results.
type ProbeCache struct {
	mu    sync.RWMutex
	items map[string]*probeEntry
}

type probeEntry struct {
	info ImageInfo
	err  error
}

// NewProbeCache creates an empty cache.
func NewProbeCache() *ProbeCache {
	return &ProbeCache{items: make(map[string]*probeEntry)}
}

// Probe returns the cached header for path, reading it on first use.
// Failures are cached too.
func (c *ProbeCache) Probe(path string) (ImageInfo, error) {
	c.mu.RLock()
	if e, ok := c.items[path]; ok {
		c.mu.RUnlock()
		return e.info, e.err
	}
	c.mu.RUnlock()

	info, err := Probe(path)

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[path]; ok {
		return e.info, e.err
	}
	c.items[path] = &probeEntry{info: info, err: err}
	return info, err
}

// Len returns the number of cached paths.
func (c *ProbeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
