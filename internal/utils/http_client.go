// Package utils provides general-purpose helpers shared by the transport
// and service layers: HTTP client construction and identifier generation.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// MaxRedirects caps how many redirects a single request may follow. It
// matches the net/http default.
const MaxRedirects = 10

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customises a client built by [NewHTTPClient].
type HTTPClientOption func(*resty.Client)

// WithTimeout bounds the whole request/response exchange.
// Non-positive values leave the transport default in place.
func WithTimeout(timeout time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

// WithLogger routes resty's internal diagnostics to l.
func WithLogger(l resty.Logger) HTTPClientOption {
	return func(c *resty.Client) {
		if l != nil {
			c.SetLogger(l)
		}
	}
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) HTTPClientOption {
	return func(c *resty.Client) {
		if ua != "" {
			c.SetHeader("User-Agent", ua)
		}
	}
}

// NewHTTPClient creates an independent HTTPClient. Every client sends each
// request exactly once (no retries) and follows at most [MaxRedirects]
// redirects.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithTimeout(30 * time.Second))
//	resp, err := client.R().Get("http://localhost:5000/")
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	c := resty.New().
		SetRetryCount(0).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(MaxRedirects))

	for _, opt := range opts {
		opt(c)
	}

	return &HTTPClient{Client: c}
}
