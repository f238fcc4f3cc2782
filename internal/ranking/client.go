package ranking

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dghubble/sling"

	"github.com/sandpoint/beachhub/internal/fetch"
)

// SourceURL is the public rankings page the normalized data mirrors.
const SourceURL = fetch.SourceBase + "/rankings/entry-men"

const rankingPath = "scripts/entry_ranking_new.php"

type genderParams struct {
	Gender string `url:"gender"`
}

// Client fetches the men's and women's entry rankings from the source site.
type Client struct {
	sling *sling.Sling
}

// NewClient builds a rankings client against the default source site.
func NewClient() *Client {
	return NewClientWithBase(fetch.SourceBase)
}

// NewClientWithBase builds a rankings client against a specific base URL.
func NewClientWithBase(baseURL string) *Client {
	httpClient := &http.Client{Timeout: fetch.Timeout}

	return &Client{
		sling: sling.New().
			Client(httpClient).
			Base(baseURL + "/").
			Set("User-Agent", fetch.UserAgent).
			Set("Accept", "application/json"),
	}
}

// Fetch loads both gender tables concurrently. Either table failing fails
// the whole call: a rankings page with one empty column reads as broken.
func (c *Client) Fetch(ctx context.Context) (*Rankings, error) {
	type result struct {
		gender string
		rows   []Row
		err    error
	}

	results := make(chan result, 2)
	for _, gender := range []string{"m", "w"} {
		go func(gender string) {
			rows, err := c.fetchGender(ctx, gender)
			results <- result{gender: gender, rows: rows, err: err}
		}(gender)
	}

	rankings := &Rankings{}
	for i := 0; i < 2; i++ {
		res := <-results
		if res.err != nil {
			return nil, fmt.Errorf("fetching gender %s rankings: %w", res.gender, res.err)
		}
		if res.gender == "m" {
			rankings.Men = res.rows
		} else {
			rankings.Women = res.rows
		}
	}
	return rankings, nil
}

func (c *Client) fetchGender(ctx context.Context, gender string) ([]Row, error) {
	req, err := c.sling.New().
		Get(rankingPath).
		QueryStruct(&genderParams{Gender: gender}).
		Request()
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req = req.WithContext(ctx)

	var rows []SourceRow
	resp, err := c.sling.Do(req, &rows, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &fetch.StatusError{URL: req.URL.String(), StatusCode: resp.StatusCode}
	}

	return Normalize(rows), nil
}
