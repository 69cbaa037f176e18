// Package async runs operations in the background and hands back a Future.
//
// It mirrors the "mutate async" surface UI code expects: start an operation,
// keep rendering, await the result later or never.
//
//	f := async.Go(ctx, func(ctx context.Context) ([]string, error) {
//		return vendorsSvc.Refresh(ctx, shop)
//	})
//
//	select {
//	case <-f.Done():
//		vendors, err := f.Result()
//	case <-time.After(time.Second):
//		// still refreshing
//	}
//
// A Future that is never awaited is fine: the goroutine finishes on its own
// once the operation returns, for example after the page's context is
// cancelled.
package async
