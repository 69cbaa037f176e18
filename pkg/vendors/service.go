package vendors

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/storefront/pkg/async"
	"github.com/dmitrymomot/storefront/pkg/auth"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/navigation"
	"github.com/dmitrymomot/storefront/pkg/querycache"
	"github.com/dmitrymomot/storefront/pkg/retry"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/tenant"
	"github.com/dmitrymomot/storefront/pkg/transport"
)

// DefaultMaxAttempts is the total number of List attempts for retryable failures.
const DefaultMaxAttempts = 3

// Service implements the vendor operations for any shop.
type Service struct {
	transport *transport.Client
	session   *session.Resolver
	auth      *auth.Service
	cache     *querycache.Cache

	maxAttempts int
	backoff     retry.Strategy
	logger      *slog.Logger
}

// New creates a vendors service. The cache is shared with other services so
// invalidations reach every reader.
func New(tr *transport.Client, resolver *session.Resolver, authSvc *auth.Service, cache *querycache.Cache, opts ...Option) *Service {
	s := &Service{
		transport:   tr,
		session:     resolver,
		auth:        authSvc,
		cache:       cache,
		maxAttempts: DefaultMaxAttempts,
		backoff:     retry.DefaultStrategy(),
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsRetryable reports whether a failed vendors read may be attempted again.
// Authentication failures never are: a retry would race the redirect.
func IsRetryable(err error) bool {
	return !transport.IsUnauthorized(err) && !navigation.IsRedirect(err)
}

// List returns shop's vendors, from the cache when a fresh entry exists.
func (s *Service) List(ctx context.Context, shop string) ([]string, error) {
	if err := tenant.ValidateShop(shop); err != nil {
		return nil, err
	}
	ctx = tenant.WithShop(ctx, shop)

	policy := retry.Policy{
		MaxAttempts: s.maxAttempts,
		Retryable:   IsRetryable,
		Backoff:     s.backoff,
		OnRetry: func(n int, err error) {
			s.logger.WarnContext(ctx, "vendors fetch failed, retrying",
				logger.Component(Resource),
				logger.Attempt(n),
				logger.Error(err),
			)
		},
	}

	list, err := querycache.Query(ctx, s.cache, CacheKey(shop), func(ctx context.Context) (List, error) {
		return retry.DoValue(ctx, policy, func(ctx context.Context) (List, error) {
			return s.fetch(ctx, shop)
		})
	})
	if err != nil {
		return nil, err
	}
	return names(list), nil
}

// Cached returns shop's vendors from the cache without any request.
func (s *Service) Cached(shop string) ([]string, bool) {
	list, ok, err := querycache.Decode[List](s.cache, CacheKey(shop))
	if !ok || err != nil {
		return nil, false
	}
	return names(list), true
}

// Refresh drops shop's cached vendors, fetches them again and invalidates
// every vendors entry. A session the backend rejects sends the page to the
// OAuth entry point; the fetch error is still returned.
func (s *Service) Refresh(ctx context.Context, shop string) ([]string, error) {
	if err := tenant.ValidateShop(shop); err != nil {
		return nil, err
	}
	ctx = tenant.WithShop(ctx, shop)

	if err := s.requireSession(ctx, shop); err != nil {
		return nil, err
	}

	key := CacheKey(shop)
	s.cache.Remove(key)

	list, err := transport.DoJSON[List](ctx, s.transport, http.MethodGet, listPath(shop), nil)
	if err != nil {
		if auth.IsSessionExpired(err) {
			s.logger.InfoContext(ctx, "session expired during refresh",
				logger.Component(Resource),
				logger.StatusCode(transport.StatusCode(err)),
			)
			s.redirect(ctx, shop)
		}
		return nil, err
	}

	s.cache.Invalidate(querycache.Key{Resource})
	if data, err := json.Marshal(list); err == nil {
		s.cache.Set(key, data)
	}

	s.logger.DebugContext(ctx, "vendors refreshed",
		logger.Component(Resource),
		slog.Int("count", len(list.Vendors)),
	)
	return names(list), nil
}

// Export starts a vendor export. It is sent exactly once and its errors are
// returned untouched.
func (s *Service) Export(ctx context.Context, req ExportRequest) (json.RawMessage, error) {
	ctx = tenant.WithShop(ctx, req.ShopDomain)
	return transport.DoJSON[json.RawMessage](ctx, s.transport, http.MethodPost, ExportPath, req)
}

// RefreshAsync runs Refresh in the background.
func (s *Service) RefreshAsync(ctx context.Context, shop string) *async.Future[[]string] {
	return async.Go(ctx, func(ctx context.Context) ([]string, error) {
		return s.Refresh(ctx, shop)
	})
}

// ExportAsync runs Export in the background.
func (s *Service) ExportAsync(ctx context.Context, req ExportRequest) *async.Future[json.RawMessage] {
	return async.Go(ctx, func(ctx context.Context) (json.RawMessage, error) {
		return s.Export(ctx, req)
	})
}

func (s *Service) fetch(ctx context.Context, shop string) (List, error) {
	if err := s.requireSession(ctx, shop); err != nil {
		return List{}, err
	}
	return transport.DoJSON[List](ctx, s.transport, http.MethodGet, listPath(shop), nil)
}

// requireSession redirects to the OAuth entry point when the page carries no
// valid session.
func (s *Service) requireSession(ctx context.Context, shop string) error {
	if s.session.HasValidSession() {
		return nil
	}
	s.redirect(ctx, shop)
	return navigation.ErrRedirectInProgress
}

func (s *Service) redirect(ctx context.Context, shop string) {
	if err := s.auth.Initiate(ctx, shop); err != nil {
		s.logger.ErrorContext(ctx, "failed to redirect to authentication",
			logger.Component(Resource),
			logger.Error(err),
		)
	}
}

func listPath(shop string) string {
	q := url.Values{}
	q.Set(session.QueryShopDomain, shop)
	return ListPath + "?" + q.Encode()
}

func names(l List) []string {
	if l.Vendors == nil {
		return []string{}
	}
	return l.Vendors
}
