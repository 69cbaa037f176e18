// Package session resolves the shop session carried in the page URL.
//
// After the OAuth callback the embedded app is loaded with two query
// parameters: shop (the merchant's shop domain) and session (an opaque token
// proving the OAuth flow completed). Nothing is cached: every Resolver call
// re-reads the navigation.Location, so a redirect that changes the URL is
// picked up on the next call.
//
// Outgoing API requests carry the same identity under different names,
// shopDomain and session, always in that order:
//
//	r := session.NewResolver(loc)
//	if !r.HasValidSession() {
//		// redirect to /auth/initiate
//	}
//	u := r.AppendToURL("https://api.example.com/api/vendors")
//	// https://api.example.com/api/vendors?shopDomain=acme.myshopify.com&session=abc
//
// AppendToURL does not inspect the existing query: a URL that already carries
// shopDomain or session gets a second copy appended.
package session
