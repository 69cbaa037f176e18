package storefront

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrymomot/storefront/pkg/auth"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/navigation"
	"github.com/dmitrymomot/storefront/pkg/querycache"
	"github.com/dmitrymomot/storefront/pkg/requestid"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/tenant"
	"github.com/dmitrymomot/storefront/pkg/transport"
	"github.com/dmitrymomot/storefront/pkg/vendors"
)

// App is a fully wired client bound to one page location.
type App struct {
	Config    Config
	Location  navigation.Location
	Session   *session.Resolver
	Transport *transport.Client
	Auth      *auth.Service
	Vendors   *vendors.Service
	Cache     *querycache.Cache
	Logger    *slog.Logger

	httpClient    *http.Client
	vendorOptions []vendors.Option
}

// Option customizes New.
type Option func(*App)

// WithLogger replaces the logger built from Config.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.Logger = l
		}
	}
}

// WithHTTPClient sets the HTTP client used for every backend request.
func WithHTTPClient(c *http.Client) Option {
	return func(a *App) { a.httpClient = c }
}

// WithCache shares an existing query cache.
func WithCache(c *querycache.Cache) Option {
	return func(a *App) {
		if c != nil {
			a.Cache = c
		}
	}
}

// WithVendorOptions passes options through to the vendors service.
func WithVendorOptions(opts ...vendors.Option) Option {
	return func(a *App) { a.vendorOptions = append(a.vendorOptions, opts...) }
}

// New wires every component over loc.
func New(cfg Config, loc navigation.Location, opts ...Option) *App {
	a := &App{Config: cfg}
	for _, opt := range opts {
		opt(a)
	}

	if a.Logger == nil {
		a.Logger = newLogger(cfg)
	}
	if a.Cache == nil {
		a.Cache = querycache.New(querycache.WithLogger(a.Logger))
	}
	if a.httpClient == nil {
		a.httpClient = transport.NewHTTPClient()
	}

	a.bind(loc)
	return a
}

// ForRequest returns a copy of a bound to the page behind r. The copy shares
// the cache, connection pool and logger; redirects are written to w.
// Each copy gets its own cookie jar so credentials never cross requests.
func (a *App) ForRequest(w http.ResponseWriter, r *http.Request) *App {
	client := *a.httpClient
	client.Jar = nil

	c := &App{
		Config:        a.Config,
		Cache:         a.Cache,
		Logger:        a.Logger,
		httpClient:    &client,
		vendorOptions: a.vendorOptions,
	}
	c.bind(navigation.NewRequest(w, r))
	return c
}

func (a *App) bind(loc navigation.Location) {
	a.Location = loc
	a.Session = session.NewResolver(loc)
	a.Transport = transport.New(loc, a.Session,
		transport.WithBaseURL(a.Config.APIURL),
		transport.WithHTTPClient(a.httpClient),
		transport.WithLogger(a.Logger),
	)
	a.Auth = auth.New(a.Transport, a.Session, loc, auth.WithLogger(a.Logger))

	vendorOpts := append([]vendors.Option{vendors.WithLogger(a.Logger)}, a.vendorOptions...)
	a.Vendors = vendors.New(a.Transport, a.Session, a.Auth, a.Cache, vendorOpts...)
}

func newLogger(cfg Config) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(os.Stdout),
		logger.WithContextExtractors(
			tenant.LoggerExtractor(),
			requestid.LoggerExtractor(),
		),
	)
}
