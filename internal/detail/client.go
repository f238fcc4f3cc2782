package detail

import (
	"context"
	"fmt"
	"time"

	"github.com/sandpoint/beachhub/internal/fetch"
)

// DefaultTTL matches the upstream mirror's regeneration cadence.
const DefaultTTL = 60 * time.Second

// textFetcher is the slice of the fetch client the detail loader needs.
type textFetcher interface {
	Text(ctx context.Context, url string) (string, error)
}

// Client loads, sanitizes and caches tournament detail pages.
type Client struct {
	fetcher   textFetcher
	baseURL   string
	sanitizer *Sanitizer
	cache     *pageCache
}

// NewClient builds a detail client against the default source site.
func NewClient(fetcher textFetcher) *Client {
	return NewClientWithBase(fetcher, fetch.SourceBase)
}

// NewClientWithBase builds a detail client against a specific base URL.
func NewClientWithBase(fetcher textFetcher, baseURL string) *Client {
	return &Client{
		fetcher:   fetcher,
		baseURL:   baseURL,
		sanitizer: NewSanitizer(baseURL),
		cache:     newPageCache(DefaultTTL),
	}
}

// Load returns the sanitized detail page for a tournament code. The static
// mirror is tried first; a miss there falls back to the rendering script.
// Pages are cached per tcode for the client's TTL.
func (c *Client) Load(ctx context.Context, tcode string) (*Page, error) {
	if page := c.cache.Get(tcode); page != nil {
		return page, nil
	}

	html, err := c.fetchPage(ctx, tcode)
	if err != nil {
		return nil, err
	}

	sanitized := c.sanitizer.Sanitize(html)
	summary := ExtractSummary(sanitized)

	page := &Page{
		Tcode:   tcode,
		HTML:    sanitized,
		Summary: &summary,
	}
	c.cache.Set(tcode, page)
	return page, nil
}

func (c *Client) fetchPage(ctx context.Context, tcode string) (string, error) {
	mirrorURL := fmt.Sprintf("%s/cache/scripts/tournament_html_%s.html", c.baseURL, tcode)
	html, err := c.fetcher.Text(ctx, mirrorURL)
	if err == nil {
		return html, nil
	}

	fallbackURL := fmt.Sprintf("%s/scripts/tournament.php?tcode=%s", c.baseURL, tcode)
	return c.fetcher.Text(ctx, fallbackURL)
}
