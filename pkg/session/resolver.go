package session

import (
	"strings"

	"github.com/dmitrymomot/storefront/pkg/navigation"
)

// Resolver reads session identity from a navigation.Location.
// It holds no state of its own and is safe for concurrent use.
type Resolver struct {
	loc navigation.Location
}

// NewResolver creates a resolver reading from loc.
func NewResolver(loc navigation.Location) *Resolver {
	return &Resolver{loc: loc}
}

// Info parses the current page URL.
func (r *Resolver) Info() Info {
	if r == nil || r.loc == nil {
		return Info{}
	}
	return FromURL(r.loc.URL())
}

// HasValidSession reports whether the current URL carries both shop and session.
func (r *Resolver) HasValidSession() bool {
	return r.Info().Valid()
}

// QueryString returns the outgoing session parameters, or "" without a valid session.
func (r *Resolver) QueryString() string {
	return r.Info().QueryString()
}

// AppendToURL appends the session parameters to rawURL using '?' or '&'
// depending on whether rawURL already has a query. A URL ending in '?' or '&'
// gets no extra separator. Without a valid session rawURL is returned unchanged.
func (r *Resolver) AppendToURL(rawURL string) string {
	params := r.QueryString()
	if params == "" {
		return rawURL
	}

	var sep string
	switch {
	case strings.HasSuffix(rawURL, "?"), strings.HasSuffix(rawURL, "&"):
	case strings.Contains(rawURL, "?"):
		sep = "&"
	default:
		sep = "?"
	}
	return rawURL + sep + params
}
