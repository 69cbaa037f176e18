// Package vendors implements the shop-scoped vendor operations of the embedded
// app: listing (cached, retried), refreshing (cache eviction, invalidation and
// re-auth on expiry) and exporting (single shot).
//
// Both reads are guarded by the session found in the page URL. Without one,
// the page is sent to the OAuth entry point and the call fails with
// navigation.ErrRedirectInProgress:
//
//	Idle -> CheckingSession -> Redirecting                    (terminal)
//	                        -> Fetching -> Success
//	                                    -> Failed(retryable)  (List retries, 3 attempts total)
//	                                    -> Failed(terminal)   (401 or redirect: no retry)
//
// Usage:
//
//	svc := vendors.New(tr, resolver, authSvc, cache, vendors.WithLogger(log))
//
//	names, err := svc.List(ctx, "acme.myshopify.com")
//	if navigation.IsRedirect(err) {
//		return // the page is leaving
//	}
//
//	names, err = svc.Refresh(ctx, "acme.myshopify.com")
//
//	result, err := svc.Export(ctx, vendors.ExportRequest{
//		ShopDomain: "acme.myshopify.com",
//		Vendor:     "Nike",
//		Filters:    &vendors.Filters{Status: "active"},
//	})
//
// Export is never retried: a retry could start a second export job.
package vendors
