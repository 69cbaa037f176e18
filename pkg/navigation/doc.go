// Package navigation abstracts the page the embedded application is running on.
//
// A Location answers two questions: what is the current page URL, and how do we
// leave it. Everything that depends on identity carried in query parameters
// (the shop and session pair set by the OAuth callback) reads it through a
// Location on every call, so a redirect that swaps the URL is observed
// immediately.
//
// Two implementations ship with the package:
//
//   - Memory keeps the URL in memory and records every navigation. It is the
//     natural choice for headless clients and tests.
//   - Request binds a location to an incoming *http.Request and its
//     http.ResponseWriter, so a server-rendered embedded app redirects the
//     browser with a 302 response.
//
// # Usage
//
//	loc := navigation.NewMemory("https://app.example.com/?shop=acme.myshopify.com&session=abc")
//	u := loc.URL()
//	_ = loc.Assign(ctx, "https://api.example.com/auth/initiate?shop=acme.myshopify.com")
//
// # Redirects
//
// A full-page navigation is terminal for the operation that triggered it. Such
// operations fail with ErrRedirectInProgress so that callers neither retry nor
// render an error while the page unloads:
//
//	if navigation.IsRedirect(err) {
//		return // the browser is leaving
//	}
package navigation
