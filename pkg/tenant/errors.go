package tenant

import "errors"

// ErrShopRequired is returned when a tenant-scoped operation is called without
// a shop domain.
var ErrShopRequired = errors.New("shop domain is required")
