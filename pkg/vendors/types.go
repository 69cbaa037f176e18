package vendors

import "github.com/dmitrymomot/storefront/pkg/querycache"

const (
	// Resource is the first part of every vendors cache key.
	Resource = "vendors"

	ListPath   = "/api/vendors"
	ExportPath = "/api/export"
)

// List is the payload of the vendors endpoint.
type List struct {
	Vendors []string `json:"vendors"`
}

// Filters narrows an export.
type Filters struct {
	Status      string `json:"status,omitempty"`
	ProductType string `json:"productType,omitempty"`
}

// ExportRequest is the body of the export endpoint.
type ExportRequest struct {
	ShopDomain string   `json:"shopDomain"`
	Vendor     string   `json:"vendor,omitempty"`
	Filters    *Filters `json:"filters,omitempty"`
}

// CacheKey returns the cache key of shop's vendor list.
func CacheKey(shop string) querycache.Key {
	return querycache.Key{Resource, shop}
}
