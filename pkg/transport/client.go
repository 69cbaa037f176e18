package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/navigation"
	"github.com/dmitrymomot/storefront/pkg/requestid"
	"github.com/dmitrymomot/storefront/pkg/session"
)

// DefaultUserAgent is sent unless overridden with WithUserAgent.
const DefaultUserAgent = "storefront-client/1.0"

// maxErrorBody bounds how much of a failed response is kept in HTTPError.
const maxErrorBody = 64 * 1024

// Client builds and sends backend requests. It holds no session state and is
// safe for concurrent use.
type Client struct {
	loc       navigation.Location
	session   *session.Resolver
	baseURL   string
	client    *http.Client
	headers   http.Header
	userAgent string
	logger    *slog.Logger
}

// New creates a client reading the page URL from loc and session identity
// from resolver.
func New(loc navigation.Location, resolver *session.Resolver, opts ...Option) *Client {
	c := &Client{
		loc:       loc,
		session:   resolver,
		headers:   make(http.Header),
		userAgent: DefaultUserAgent,
		logger:    logger.Discard(),
		client:    NewHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewHTTPClient returns the default client: pooled connections, no overall
// timeout (callers bound requests with their context) and a cookie jar so
// credentials travel with every request.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Jar: newCookieJar(),
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

func newCookieJar() http.CookieJar {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil
	}
	return jar
}

// BaseURL returns the configured backend origin, or the current page origin
// when none is configured. It is resolved on every call.
func (c *Client) BaseURL() string {
	if c.baseURL != "" {
		return strings.TrimRight(c.baseURL, "/")
	}
	if c.loc == nil {
		return ""
	}
	return navigation.Origin(c.loc.URL())
}

// BuildURL joins path to the backend origin with exactly one slash and
// appends the session parameters.
func (c *Client) BuildURL(path string) string {
	full := c.BaseURL() + "/" + strings.TrimLeft(path, "/")
	return c.session.AppendToURL(full)
}

// Do sends a request and returns the response for status codes below 400.
// The caller must close the response body. A nil body sends no payload and
// no Content-Type header.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	if c.BaseURL() == "" {
		return nil, ErrNoBaseURL
	}
	target := c.BuildURL(path)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Join(ErrEncodeBody, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: redact(target), Err: err}
	}

	ctx, id := requestid.Ensure(ctx)
	for k, v := range c.headers {
		req.Header[k] = append([]string(nil), v...)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestid.Header, id)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		c.logger.DebugContext(ctx, "backend request failed",
			logger.Method(method),
			logger.Path(redact(target)),
			logger.Duration(elapsed),
			logger.Error(err),
		)
		return nil, &NetworkError{Method: method, URL: redact(target), Err: err}
	}

	c.logger.DebugContext(ctx, "backend request",
		logger.Method(method),
		logger.Path(redact(target)),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(elapsed),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := string(text)
		if msg == "" {
			msg = statusText(resp)
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: msg}
	}

	return resp, nil
}

// statusText returns the reason phrase of the status line, e.g. "Unauthorized".
func statusText(resp *http.Response) string {
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

// redact replaces session tokens in rawURL so it can be logged.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "[unparsable url]"
	}
	q := u.Query()
	if vals, ok := q[session.QuerySession]; ok {
		for i := range vals {
			vals[i] = "REDACTED"
		}
		u.RawQuery = q.Encode()
	}
	return u.String()
}
