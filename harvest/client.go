package harvest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// DefaultDelay is the minimum spacing between consecutive fetches, required
// by the remote endpoint's rate expectations.
const DefaultDelay = 5 * time.Millisecond

// DefaultTimeout bounds a single fetch; expiry is reported as a FetchError.
const DefaultTimeout = 30 * time.Second

// ClientConfig configures a Client.
type ClientConfig struct {
	// Delay is the minimum spacing between fetches. Zero means DefaultDelay.
	Delay time.Duration
	// Timeout is the per-fetch deadline. Zero means DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the underlying HTTP client, mainly for tests.
	HTTPClient *http.Client
}

// Client retrieves concept descriptions from the linked-data endpoint.
// Fetches are paced by a rate limiter whose single initial token lets the
// first fetch through immediately; every later fetch waits out the delay.
// The client never retries: one failed fetch fails the whole harvest.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
	logger     *slog.Logger

	fetches atomic.Int64
}

// NewClient creates a Client with the given configuration.
func NewClient(cfg ClientConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	delay := cfg.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(delay), 1),
		timeout:    timeout,
		logger:     logger,
	}
}

// Fetch retrieves the JSON-LD description of one concept and returns a
// handle over its properties. Transport failures, non-200 responses,
// undecodable documents, and deadline expiry all yield a *FetchError.
func (c *Client) Fetch(ctx context.Context, uri string) (*Concept, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}
	req.Header.Set("Accept", "application/ld+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URI: uri, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}

	concept, err := parseConcept(uri, body)
	if err != nil {
		return nil, &FetchError{URI: uri, Err: err}
	}

	c.fetches.Add(1)
	c.logger.Debug("Fetched concept", slog.String("uri", uri))
	return concept, nil
}

// Fetches returns the number of successful fetches performed so far.
func (c *Client) Fetches() int64 {
	return c.fetches.Load()
}
