// Package auth checks whether a shop has completed OAuth and sends the browser
// to the OAuth entry point when it has not.
//
// The OAuth flow itself (token exchange, HMAC verification) lives on the
// backend. This package only knows two things about it: the settings endpoint
// answers 401 for an unauthenticated shop, and /auth/initiate?shop=<domain>
// starts the flow.
//
//	svc := auth.New(tr, resolver, loc, auth.WithLogger(log))
//
//	status := svc.CheckStatus(ctx, shop)
//	if !status.IsAuthenticated {
//		_ = svc.Initiate(ctx, shop) // the page unloads
//		return
//	}
//
// CheckStatus never returns an error: any failure, network or HTTP, reads as
// "not authenticated".
package auth
