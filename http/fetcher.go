// Package http provides an HTTP-based implementation of docview.Fetcher
// for documentation sets served as static files.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/docview"
	"golang.org/x/time/rate"
)

// Ensure Fetcher implements docview.Fetcher at compile time.
var _ docview.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves payloads relative to a base URL.
// By default requests have no timeout, no rate limit and are not retried.
type Fetcher struct {
	baseURL *url.URL
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	delays  []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit limits requests to rps per second with no bursting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays retries failed requests once per delay, waiting the
// given delay before each retry. Missing payloads are never retried.
func WithRetryDelays(delays ...time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// DefaultRetryDelays returns the backoff delays used by the CLI: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// NewFetcher creates a new Fetcher for payloads below baseURL.
func NewFetcher(baseURL string, opts ...Option) (*Fetcher, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, docview.Errorf(docview.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, docview.Errorf(docview.EINVALID, "base URL %q must be http or https", baseURL)
	}

	f := &Fetcher{baseURL: u}
	for _, opt := range opts {
		opt(f)
	}
	f.client = &http.Client{
		Timeout: f.timeout,
	}
	return f, nil
}

// Fetch retrieves the payload at path.
// Returns ENOTFOUND if the server responds 404.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := docview.ValidatePath(path); err != nil {
		return "", err
	}
	target := f.baseURL.JoinPath(path).String()

	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(f.delays[attempt-1]):
			}
		}
		body, err := f.get(ctx, target)
		if err == nil {
			return body, nil
		}
		if docview.ErrorCode(err) == docview.ENOTFOUND || ctx.Err() != nil {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}

func (f *Fetcher) get(ctx context.Context, target string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", docview.Errorf(docview.ENOTFOUND, "payload %s not found", target)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
