// Package fetch is the shared HTTP layer for all upstream reads. Every call
// carries a deadline, a self-identifying User-Agent, and a bounded retry
// budget: one retry with exponential backoff for transport errors and 5xx
// responses, never for 4xx.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// SourceBase is the upstream federation mirror all endpoints hang off.
	SourceBase = "https://fivb.12ndr.at"

	// UserAgent identifies this service to the upstream site.
	UserAgent = "beachhub/1.0 (+github.com/sandpoint/beachhub)"

	// Timeout bounds a single request attempt.
	Timeout = 15 * time.Second

	maxRetries      = 1
	initialInterval = 500 * time.Millisecond
)

// StatusError reports a non-OK upstream response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching %s: unexpected status code %d", e.URL, e.StatusCode)
}

// Client performs upstream GETs with retry and timeout applied uniformly.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// New creates a fetch client with the default timeout.
func New() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: Timeout,
		},
		userAgent: UserAgent,
	}
}

// Text fetches a URL and returns the response body as a string.
func (c *Client) Text(ctx context.Context, url string) (string, error) {
	body, err := c.getWithRetry(ctx, url, "text/html, text/plain, */*")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// JSON fetches a URL and unmarshals the response body into v.
func (c *Client) JSON(ctx context.Context, url string, v any) error {
	body, err := c.getWithRetry(ctx, url, "application/json, text/plain, */*")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// getWithRetry runs one GET plus at most one backoff retry. 4xx responses
// and malformed requests are permanent; transport errors and 5xx are not.
func (c *Client) getWithRetry(ctx context.Context, url, accept string) ([]byte, error) {
	var body []byte

	operation := func() error {
		b, err := c.get(ctx, url, accept)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initialInterval

	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.WithContext(policy, ctx), maxRetries))
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{URL: url, StatusCode: resp.StatusCode}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, backoff.Permanent(statusErr)
		}
		return nil, statusErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return body, nil
}
