package tenant

import (
	"context"
	"log/slog"
	"strings"
)

// ValidateShop returns ErrShopRequired when shop is empty or blank.
func ValidateShop(shop string) error {
	if strings.TrimSpace(shop) == "" {
		return ErrShopRequired
	}
	return nil
}

// contextKey is a private type to prevent collisions with other context keys.
type contextKey struct{}

// WithShop returns a copy of ctx carrying the shop domain.
func WithShop(ctx context.Context, shop string) context.Context {
	return context.WithValue(ctx, contextKey{}, shop)
}

// ShopFromContext returns the shop domain stored in ctx.
func ShopFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	shop, ok := ctx.Value(contextKey{}).(string)
	return shop, ok && shop != ""
}

// LoggerExtractor returns a logger.ContextExtractor adding the shop domain.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if shop, ok := ShopFromContext(ctx); ok {
			return slog.String("shop", shop), true
		}
		return slog.Attr{}, false
	}
}
