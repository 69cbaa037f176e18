// Package querycache stores the last successful payload of tenant-scoped reads.
//
// Entries are addressed by a Key made of ordered parts, typically the resource
// name followed by the shop domain:
//
//	key := querycache.Key{"vendors", "acme.myshopify.com"}
//
// Entries never expire on their own. They stay fresh until a mutation either
// removes them (Remove) or marks them stale (Invalidate). Invalidate matches by
// key prefix, so Key{"vendors"} reaches every vendors entry whatever the shop
// or filter parts that follow. Subscribers are notified of every change, which
// lets a UI refetch what it is showing.
//
// Query wires the cache to a fetch function:
//
//	data, err := querycache.Query(ctx, c, key, func(ctx context.Context) (Vendors, error) {
//		return fetchVendors(ctx)
//	})
//
// Concurrent queries for the same key are not deduplicated: both fetch and the
// last one to store wins. Memory is bounded by an LRU (see WithCapacity).
package querycache
