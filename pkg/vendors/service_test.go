package vendors_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/auth"
	"github.com/dmitrymomot/storefront/pkg/navigation"
	"github.com/dmitrymomot/storefront/pkg/querycache"
	"github.com/dmitrymomot/storefront/pkg/retry"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/tenant"
	"github.com/dmitrymomot/storefront/pkg/transport"
	"github.com/dmitrymomot/storefront/pkg/vendors"
)

const authenticatedPage = "https://app.example.com/?shop=shop-a&session=abc123"

type fixture struct {
	svc   *vendors.Service
	loc   *navigation.Memory
	cache *querycache.Cache
}

func newFixture(t *testing.T, pageURL, baseURL string, opts ...vendors.Option) fixture {
	t.Helper()
	return newFixtureWithCache(t, pageURL, baseURL, querycache.New(), opts...)
}

func newFixtureWithCache(t *testing.T, pageURL, baseURL string, cache *querycache.Cache, opts ...vendors.Option) fixture {
	t.Helper()
	loc := navigation.NewMemory(pageURL)
	resolver := session.NewResolver(loc)
	tr := transport.New(loc, resolver, transport.WithBaseURL(baseURL))
	opts = append([]vendors.Option{vendors.WithBackoff(retry.None{})}, opts...)
	return fixture{
		svc:   vendors.New(tr, resolver, auth.New(tr, resolver, loc), cache, opts...),
		loc:   loc,
		cache: cache,
	}
}

func TestList_FetchesAndCaches(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, vendors.ListPath, r.URL.Path)
		assert.Equal(t, "shop-a", r.URL.Query().Get("shopDomain"))
		assert.Equal(t, "abc123", r.URL.Query().Get("session"))
		_, _ = w.Write([]byte(`{"vendors":["Nike","Adidas"]}`))
	}))
	defer server.Close()

	f := newFixture(t, authenticatedPage, server.URL)

	got, err := f.svc.List(context.Background(), "shop-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"Nike", "Adidas"}, got)

	got, err = f.svc.List(context.Background(), "shop-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"Nike", "Adidas"}, got)
	assert.Equal(t, int32(1), hits.Load())

	cached, ok := f.svc.Cached("shop-a")
	require.True(t, ok)
	assert.Equal(t, []string{"Nike", "Adidas"}, cached)
}

func TestList_EmptyPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	f := newFixture(t, authenticatedPage, server.URL)

	got, err := f.svc.List(context.Background(), "shop-a")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_ShopRequired(t *testing.T) {
	t.Parallel()

	f := newFixture(t, authenticatedPage, "http://127.0.0.1:1")

	_, err := f.svc.List(context.Background(), "  ")
	assert.ErrorIs(t, err, tenant.ErrShopRequired)

	_, err = f.svc.Refresh(context.Background(), "")
	assert.ErrorIs(t, err, tenant.ErrShopRequired)
}

func TestList_NoSessionRedirects(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	f := newFixture(t, "https://app.example.com/?shop=shop-a", server.URL)

	_, err := f.svc.List(context.Background(), "shop-a")
	require.ErrorIs(t, err, navigation.ErrRedirectInProgress)

	target, ok := f.loc.Last()
	require.True(t, ok)
	assert.Equal(t, server.URL+"/auth/initiate?shop=shop-a", target)
	assert.Len(t, f.loc.History(), 1)
	assert.Zero(t, hits.Load())
	assert.Zero(t, f.cache.Len())
}

func TestList_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	f := newFixture(t, authenticatedPage, server.URL)

	_, err := f.svc.List(context.Background(), "shop-a")
	require.Error(t, err)

	var httpErr *transport.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, int32(vendors.DefaultMaxAttempts), hits.Load())
	assert.Zero(t, f.cache.Len())
}

func TestList_RecoversAfterTransientFailure(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"vendors":["Puma"]}`))
	}))
	defer server.Close()

	f := newFixture(t, authenticatedPage, server.URL)

	got, err := f.svc.List(context.Background(), "shop-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"Puma"}, got)
	assert.Equal(t, int32(2), hits.Load())
}

func TestList_UnauthorizedIsNotRetried(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	f := newFixture(t, authenticatedPage, server.URL)

	_, err := f.svc.List(context.Background(), "shop-a")
	assert.True(t, transport.IsUnauthorized(err))
	assert.Equal(t, int32(1), hits.Load())
}

func TestList_MaxAttemptsOption(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	f := newFixture(t, authenticatedPage, server.URL, vendors.WithMaxAttempts(5))

	_, err := f.svc.List(context.Background(), "shop-a")
	assert.Equal(t, http.StatusBadGateway, transport.StatusCode(err))
	assert.Equal(t, int32(5), hits.Load())
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	assert.True(t, vendors.IsRetryable(&transport.HTTPError{StatusCode: 500}))
	assert.True(t, vendors.IsRetryable(&transport.NetworkError{Err: errors.New("dial")}))
	assert.False(t, vendors.IsRetryable(&transport.HTTPError{StatusCode: 401}))
	assert.False(t, vendors.IsRetryable(navigation.ErrRedirectInProgress))
}

func TestRefresh_EvictsRefetchesAndInvalidates(t *testing.T) {
	t.Parallel()

	var (
		hits    atomic.Int32
		present atomic.Bool
	)
	cache := querycache.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"vendors":["Old"]}`))
			return
		}
		_, ok := cache.Get(vendors.CacheKey("shop-a"))
		present.Store(ok)
		_, _ = w.Write([]byte(`{"vendors":["New"]}`))
	}))
	defer server.Close()

	f := newFixtureWithCache(t, authenticatedPage, server.URL, cache)
	f.cache.Set(vendors.CacheKey("shop-b"), json.RawMessage(`{"vendors":["Other"]}`))

	_, err := f.svc.List(context.Background(), "shop-a")
	require.NoError(t, err)

	var events []querycache.Event
	unsubscribe := f.cache.Subscribe(func(ev querycache.Event) { events = append(events, ev) })
	defer unsubscribe()

	got, err := f.svc.Refresh(context.Background(), "shop-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"New"}, got)
	assert.False(t, present.Load(), "entry must be evicted before the refetch")

	entry, ok := f.cache.Get(vendors.CacheKey("shop-a"))
	require.True(t, ok)
	assert.False(t, entry.Stale)
	assert.JSONEq(t, `{"vendors":["New"]}`, string(entry.Data))

	other, ok := f.cache.Get(vendors.CacheKey("shop-b"))
	require.True(t, ok)
	assert.True(t, other.Stale)

	require.NotEmpty(t, events)
	assert.Equal(t, querycache.Event{Type: querycache.EventRemoved, Key: vendors.CacheKey("shop-a")}, events[0])

	// The refreshed entry is fresh and served without a request.
	got, err = f.svc.List(context.Background(), "shop-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"New"}, got)
	assert.Equal(t, int32(2), hits.Load())
}

func TestRefresh_SessionExpiredRedirects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "401", status: http.StatusUnauthorized, body: "Unauthorized"},
		{name: "shop not authenticated", status: http.StatusForbidden, body: "Shop not authenticated"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var hits atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				http.Error(w, tt.body, tt.status)
			}))
			defer server.Close()

			f := newFixture(t, authenticatedPage, server.URL)

			_, err := f.svc.Refresh(context.Background(), "shop-a")
			assert.Equal(t, tt.status, transport.StatusCode(err))
			assert.Equal(t, int32(1), hits.Load())

			target, ok := f.loc.Last()
			require.True(t, ok)
			assert.Equal(t, server.URL+"/auth/initiate?shop=shop-a", target)
		})
	}
}

func TestRefresh_ServerErrorDoesNotRedirect(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := newFixture(t, authenticatedPage, server.URL)

	_, err := f.svc.Refresh(context.Background(), "shop-a")
	assert.Equal(t, http.StatusInternalServerError, transport.StatusCode(err))
	assert.Equal(t, int32(1), hits.Load())
	assert.Empty(t, f.loc.History())
}

func TestRefresh_NoSessionRedirects(t *testing.T) {
	t.Parallel()

	f := newFixture(t, "https://app.example.com/", "http://127.0.0.1:1")
	f.cache.Set(vendors.CacheKey("shop-a"), json.RawMessage(`{"vendors":["Kept"]}`))

	_, err := f.svc.Refresh(context.Background(), "shop-a")
	require.ErrorIs(t, err, navigation.ErrRedirectInProgress)

	_, ok := f.cache.Get(vendors.CacheKey("shop-a"))
	assert.True(t, ok)
	assert.Len(t, f.loc.History(), 1)
}

func TestExport(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, vendors.ExportPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req vendors.ExportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "shop-a", req.ShopDomain)
		assert.Equal(t, "Nike", req.Vendor)
		require.NotNil(t, req.Filters)
		assert.Equal(t, "active", req.Filters.Status)

		_, _ = w.Write([]byte(`{"jobId":"42"}`))
	}))
	defer server.Close()

	f := newFixture(t, authenticatedPage, server.URL)

	result, err := f.svc.Export(context.Background(), vendors.ExportRequest{
		ShopDomain: "shop-a",
		Vendor:     "Nike",
		Filters:    &vendors.Filters{Status: "active"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"jobId":"42"}`, string(result))
	assert.Zero(t, f.cache.Len())
}

func TestExport_OmitsEmptyFields(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(vendors.ExportRequest{ShopDomain: "shop-a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"shopDomain":"shop-a"}`, string(data))
}

func TestExport_SingleAttempt(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "export failed", http.StatusInternalServerError)
	}))
	defer server.Close()

	f := newFixture(t, authenticatedPage, server.URL)

	_, err := f.svc.Export(context.Background(), vendors.ExportRequest{ShopDomain: "shop-a"})

	var httpErr *transport.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, int32(1), hits.Load())
	assert.Empty(t, f.loc.History())
}

func TestAsyncVariants(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case vendors.ListPath:
			_, _ = w.Write([]byte(`{"vendors":["Vans"]}`))
		case vendors.ExportPath:
			_, _ = w.Write([]byte(`{"ok":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	f := newFixture(t, authenticatedPage, server.URL)
	ctx := context.Background()

	refresh := f.svc.RefreshAsync(ctx, "shop-a")
	export := f.svc.ExportAsync(ctx, vendors.ExportRequest{ShopDomain: "shop-a"})

	names, err := refresh.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vans"}, names)

	result, err := export.Await(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(result))
}
