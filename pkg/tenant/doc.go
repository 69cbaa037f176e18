// Package tenant carries the shop a request is made for.
//
// In this client a tenant is a merchant shop, identified by its domain (for
// example acme.myshopify.com). Every data-access call is scoped to one shop
// and must be given a non-blank domain:
//
//	if err := tenant.ValidateShop(shop); err != nil {
//		return err // wraps ErrShopRequired
//	}
//
// WithShop stores the domain in a context so log records written further down
// the call chain are tagged with it through LoggerExtractor.
package tenant
