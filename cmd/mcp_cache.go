package cmd

import (
	"sync"
	"time"

	"github.com/mj1618/menucli/internal/ax"
	"github.com/mj1618/menucli/internal/menu"
)

// mcpCacheKey identifies a unique tree read scope.
type mcpCacheKey struct {
	PID               int
	MaxDepth          int
	IncludeAlternates bool
}

// mcpCacheEntry holds a cached menu tree with its timestamp.
type mcpCacheEntry struct {
	nodes     []menu.Node
	timestamp time.Time
}

// mcpTreeCache provides a TTL-based cache for menu trees. Element handles
// inside cached nodes can go stale when the application rebuilds its
// menus; the short TTL bounds that window.
type mcpTreeCache struct {
	mu      sync.Mutex
	entries map[mcpCacheKey]mcpCacheEntry
	ttl     time.Duration
}

// newMCPTreeCache creates a new cache. A ttl of 0 disables caching.
func newMCPTreeCache(ttl time.Duration) *mcpTreeCache {
	return &mcpTreeCache{
		entries: make(map[mcpCacheKey]mcpCacheEntry),
		ttl:     ttl,
	}
}

// readTree returns the cached tree if within TTL, otherwise builds fresh.
func (c *mcpTreeCache) readTree(roots ax.RootSource, pid int, opts menu.TreeOptions) ([]menu.Node, error) {
	if c.ttl == 0 {
		return menu.BuildTree(roots, pid, opts)
	}

	key := mcpCacheKey{
		PID:               pid,
		MaxDepth:          opts.MaxDepth,
		IncludeAlternates: opts.IncludeAlternates,
	}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl {
		nodes := entry.nodes
		c.mu.Unlock()
		return nodes, nil
	}
	c.mu.Unlock()

	nodes, err := menu.BuildTree(roots, pid, opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = mcpCacheEntry{nodes: nodes, timestamp: time.Now()}
	c.mu.Unlock()

	return nodes, nil
}

// invalidatePID removes all cache entries for the given process.
func (c *mcpTreeCache) invalidatePID(pid int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.PID == pid {
			delete(c.entries, k)
		}
	}
}

// invalidateAll clears the entire cache.
func (c *mcpTreeCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[mcpCacheKey]mcpCacheEntry)
}
