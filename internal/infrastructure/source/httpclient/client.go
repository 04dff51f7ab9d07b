// Package httpclient is the shared HTTP transport for source adapters. It
// enforces a client-side rate limit ahead of every request and maps upstream
// failures onto the source error taxonomy.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/muhammadchandra19/crypto-collector/internal/domain/source"
)

// maxBodyBytes bounds how much of a response body is read. CoinGecko coin
// pages run to a few hundred KB.
const maxBodyBytes = 4 << 20

// Client is a rate-limited JSON HTTP client bound to one upstream source.
type Client struct {
	name    string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// New creates a client for the named source. requestsPerSecond feeds a token
// bucket shared by all calls through this client.
func New(name, baseURL string, requestsPerSecond float64, burst int, timeout time.Duration) *Client {
	return &Client{
		name:    name,
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// GetJSON fetches baseURL+path with the given query and decodes the response
// into out. Failures come back as the source error types: RateLimitedError
// for 429/418, UnavailableError for transport and server failures,
// MalformedResponseError for undecodable bodies.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &source.UnavailableError{Source: c.name, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == 418:
		// Binance bans with 418 after repeated 429s; both carry
		// Retry-After in seconds.
		return &source.RateLimitedError{
			Source:     c.name,
			RetryAfter: retryAfter(resp.Header),
		}
	case resp.StatusCode != http.StatusOK:
		return &source.UnavailableError{Source: c.name, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &source.UnavailableError{Source: c.name, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &source.MalformedResponseError{Source: c.name, Err: err}
	}
	return nil
}

func retryAfter(header http.Header) time.Duration {
	seconds, err := strconv.Atoi(header.Get("Retry-After"))
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
