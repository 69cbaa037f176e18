package auth

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/navigation"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/tenant"
	"github.com/dmitrymomot/storefront/pkg/transport"
)

const (
	// SettingsPath validates the session; it answers 401 when the shop is not authenticated.
	SettingsPath = "/api/settings"
	// InitiatePath is the OAuth entry point. It is a navigation target, not an API call.
	InitiatePath = "/auth/initiate"
)

// Status is the result of CheckStatus.
type Status struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	ShopDomain      string `json:"shopDomain,omitempty"`
	Scope           string `json:"scope,omitempty"`
}

type settingsResponse struct {
	Scope string `json:"scope"`
}

// Service implements the auth check and the OAuth redirect.
type Service struct {
	transport *transport.Client
	session   *session.Resolver
	loc       navigation.Location
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an auth service.
func New(tr *transport.Client, resolver *session.Resolver, loc navigation.Location, opts ...Option) *Service {
	s := &Service{
		transport: tr,
		session:   resolver,
		loc:       loc,
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckStatus validates the shop's session against the settings endpoint.
// It never fails: errors of any kind yield an unauthenticated Status.
func (s *Service) CheckStatus(ctx context.Context, shop string) Status {
	ctx = tenant.WithShop(ctx, shop)
	unauthenticated := Status{IsAuthenticated: false, ShopDomain: shop}

	settings, err := transport.FetchJSON[settingsResponse](ctx, s.transport, s.settingsPath(shop), transport.ReturnError)
	if err != nil {
		s.logger.DebugContext(ctx, "shop is not authenticated",
			logger.Component("auth"),
			logger.StatusCode(transport.StatusCode(err)),
			logger.Error(err),
		)
		return unauthenticated
	}

	status := Status{IsAuthenticated: true, ShopDomain: shop}
	if settings != nil {
		status.Scope = settings.Scope
	}
	return status
}

// settingsPath scopes the settings request to shop. When the page carries a
// session token but no shop, the transport cannot attach it, so the token is
// added here.
func (s *Service) settingsPath(shop string) string {
	q := url.Values{}
	q.Set(session.QueryShopDomain, shop)

	path := SettingsPath + "?" + q.Encode()
	if info := s.session.Info(); info.Session != "" && !info.Valid() {
		path += "&" + session.QuerySession + "=" + url.QueryEscape(info.Session)
	}
	return path
}

// InitiateURL returns the OAuth entry point for shop on the backend origin.
func (s *Service) InitiateURL(shop string) string {
	q := url.Values{}
	q.Set(session.ParamShop, shop)
	return s.transport.BaseURL() + InitiatePath + "?" + q.Encode()
}

// Initiate navigates the page to the OAuth entry point. Nothing after it
// matters: the page is unloading.
func (s *Service) Initiate(ctx context.Context, shop string) error {
	target := s.InitiateURL(shop)
	s.logger.InfoContext(tenant.WithShop(ctx, shop), "redirecting to authentication",
		logger.Component("auth"),
		logger.Redirect(target),
	)
	return s.loc.Assign(ctx, target)
}
