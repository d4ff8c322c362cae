// Package transport builds the HTTP client shared by platform adapters.
package transport

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// GitHubAPIVersion is sent as X-GitHub-Api-Version on every request.
const GitHubAPIVersion = "2022-11-28"

// Options configures the shared HTTP client.
type Options struct {
	// RequestsPerSecond limits outgoing requests. Zero or less disables limiting.
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
	UserAgent         string
	Headers           map[string]string
	// Base is the underlying transport, http.DefaultTransport when nil.
	Base http.RoundTripper
}

// NewHTTPClient returns an http.Client whose transport applies rate limiting and headers.
func NewHTTPClient(opts Options) *http.Client {
	base := opts.Base
	if base == nil {
		base = http.DefaultTransport
	}

	var rt http.RoundTripper = &headerTransport{
		base:      base,
		userAgent: opts.UserAgent,
		headers:   opts.Headers,
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		rt = &RateLimitedTransport{
			Base:    rt,
			Limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst),
		}
	}

	return &http.Client{Transport: rt, Timeout: opts.Timeout}
}

// RateLimitedTransport blocks each request until Limiter allows it.
type RateLimitedTransport struct {
	Base    http.RoundTripper
	Limiter *rate.Limiter
}

func (t *RateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.Limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.Base.RoundTrip(req)
}

type headerTransport struct {
	base      http.RoundTripper
	userAgent string
	headers   map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent == "" && len(t.headers) == 0 {
		return t.base.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	for k, v := range t.headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	return t.base.RoundTrip(req)
}
