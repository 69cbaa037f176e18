// Package retry runs an operation until it succeeds, the attempt budget is
// spent, or the error is not worth retrying.
//
// A Policy bundles three decisions: how many attempts in total, which errors
// are retryable, and how long to wait between attempts.
//
//	vendors, err := retry.DoValue(ctx, retry.Policy{
//		MaxAttempts: 3,
//		Retryable: func(err error) bool {
//			return !transport.IsUnauthorized(err) && !navigation.IsRedirect(err)
//		},
//	}, fetchVendors)
//
// The error returned after the last attempt is the operation's own error,
// unwrapped, so errors.As on typed errors keeps working.
//
// Backoff strategies mirror the ones query libraries use for failed reads:
// Exponential (the default: one second, doubling, capped at thirty), Linear,
// Fixed and None.
package retry
