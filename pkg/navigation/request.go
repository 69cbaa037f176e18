package navigation

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
)

// Request is a Location bound to a single HTTP request. The current URL is
// rebuilt from the request, and Assign answers it with a 302 redirect.
// A Request must not outlive its handler.
type Request struct {
	w http.ResponseWriter
	r *http.Request

	mu         sync.Mutex
	redirected bool
}

// NewRequest binds a location to w and r.
func NewRequest(w http.ResponseWriter, r *http.Request) *Request {
	return &Request{w: w, r: r}
}

// URL reconstructs the absolute URL the browser requested.
// Proxy headers take precedence over the connection state.
func (l *Request) URL() *url.URL {
	u := cloneURL(l.r.URL)

	u.Scheme = "http"
	if l.r.TLS != nil {
		u.Scheme = "https"
	}
	if proto := firstHeaderValue(l.r.Header.Get("X-Forwarded-Proto")); proto != "" {
		u.Scheme = strings.ToLower(proto)
	}

	u.Host = l.r.Host
	if host := firstHeaderValue(l.r.Header.Get("X-Forwarded-Host")); host != "" {
		u.Host = host
	}
	return u
}

// Assign writes a 302 redirect to target. Only the first call writes a
// response; subsequent calls return ErrAlreadyRedirected.
func (l *Request) Assign(ctx context.Context, target string) error {
	if strings.TrimSpace(target) == "" {
		return ErrInvalidTarget
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.redirected {
		return ErrAlreadyRedirected
	}
	l.redirected = true

	http.Redirect(l.w, l.r, target, http.StatusFound)
	return nil
}

// Redirected reports whether Assign has already written a response.
func (l *Request) Redirected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.redirected
}

func firstHeaderValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
