package auth

import (
	"strings"

	"github.com/dmitrymomot/storefront/pkg/transport"
)

// notAuthenticatedMessage is the backend's error text for shops without a stored session.
const notAuthenticatedMessage = "Shop not authenticated"

// IsSessionExpired reports whether err means the backend no longer accepts
// the shop's session: an HTTP 401, or an error response whose text says the
// shop is not authenticated.
func IsSessionExpired(err error) bool {
	if err == nil {
		return false
	}
	if transport.IsUnauthorized(err) {
		return true
	}
	return transport.StatusCode(err) != 0 && strings.Contains(err.Error(), notAuthenticatedMessage)
}
