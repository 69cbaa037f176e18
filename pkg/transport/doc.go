// Package transport issues authenticated requests to the storefront backend.
//
// Every request is built the same way: the path is joined to the backend
// origin with exactly one slash, the shop session found in the page URL is
// appended as shopDomain and session query parameters, and the request goes
// out through an http.Client that carries a cookie jar, so credentials are
// included on every call. Bodies, when present, are JSON encoded and sent with
// Content-Type: application/json.
//
// The backend origin is resolved on every call: the configured value when set
// (WithBaseURL), otherwise the origin of the current page.
//
//	c := transport.New(loc, session.NewResolver(loc),
//		transport.WithBaseURL(cfg.APIURL),
//		transport.WithLogger(log),
//	)
//
//	resp, err := c.Do(ctx, http.MethodPost, "/api/export", req)
//	vendors, err := transport.DoJSON[VendorList](ctx, c, http.MethodGet, "/api/vendors", nil)
//	settings, err := transport.FetchJSON[Settings](ctx, c, "/api/settings", transport.ReturnNil)
//
// # Errors
//
// Responses with status 400 or above fail with *HTTPError holding the status
// and the response text (the status text when the body is empty). Failures
// before a response arrives fail with *NetworkError. The transport never
// retries; retry policy belongs to the caller.
//
//	if transport.IsUnauthorized(err) {
//		// session expired
//	}
package transport
