package detail

import (
	"sync"
	"time"
)

// Page is one sanitized detail page as served to clients.
type Page struct {
	Tcode   string   `json:"tcode"`
	HTML    string   `json:"html"`
	Summary *Summary `json:"summary,omitempty"`
}

// pageCache holds sanitized pages keyed by tcode with a TTL. Upstream
// regenerates its mirror about once a minute, so anything fresher than the
// TTL is served without a fetch.
type pageCache struct {
	mu       sync.Mutex
	pages    map[string]*Page
	cachedAt map[string]time.Time
	ttl      time.Duration
}

func newPageCache(ttl time.Duration) *pageCache {
	return &pageCache{
		pages:    make(map[string]*Page),
		cachedAt: make(map[string]time.Time),
		ttl:      ttl,
	}
}

// Get retrieves a cached page if present and not expired.
func (c *pageCache) Get(tcode string) *Page {
	c.mu.Lock()
	defer c.mu.Unlock()

	page, exists := c.pages[tcode]
	if !exists {
		return nil
	}

	cachedTime, hasTime := c.cachedAt[tcode]
	if !hasTime || time.Since(cachedTime) > c.ttl {
		delete(c.pages, tcode)
		delete(c.cachedAt, tcode)
		return nil
	}

	return page
}

// Set stores a page in the cache.
func (c *pageCache) Set(tcode string, page *Page) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pages[tcode] = page
	c.cachedAt[tcode] = time.Now()
}

// Size returns the number of cached pages, expired or not.
func (c *pageCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.pages)
}
