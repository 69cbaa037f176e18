package navigation

import (
	"context"
	"net/url"
)

// Location is the navigation context of the running page.
type Location interface {
	// URL returns a copy of the current page URL. Implementations must
	// re-read their source on every call.
	URL() *url.URL

	// Assign performs a full-page navigation to target.
	Assign(ctx context.Context, target string) error
}

// Origin returns the scheme://host part of u, or "" when u is not absolute.
func Origin(u *url.URL) string {
	if u == nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return &url.URL{}
	}
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return &c
}
