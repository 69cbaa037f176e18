package transport

import (
	"log/slog"
	"net/http"
)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the backend origin. Empty values fall back to the page origin.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying client. A client without a cookie jar
// gets a copy with the default jar so credentials are still sent.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client == nil {
			return
		}
		if client.Jar == nil {
			cp := *client
			cp.Jar = newCookieJar()
			client = &cp
		}
		c.client = client
	}
}

// WithHeader adds a header to every request. Empty keys or values are ignored.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" && value != "" {
			c.headers.Set(key, value)
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}
