package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/scriptsync/internal/logging"
	"github.com/aretw0/scriptsync/pkg/adapters/memory"
	"github.com/aretw0/scriptsync/pkg/adapters/redis"
	"github.com/aretw0/scriptsync/pkg/adapters/transifex"
	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/middleware"
	"github.com/aretw0/scriptsync/pkg/observability"
	"github.com/aretw0/scriptsync/pkg/ports/tests"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var res = domain.ResourceFor("src/user/script.yaml")

func TestCacheMiddleware_ReadThrough(t *testing.T) {
	vendor := memory.NewVendor()
	vendor.Seed(res.Slug, "en", map[string]string{"root/ab": "Hello"})
	cache := memory.NewCache()
	wrapped := middleware.NewCacheMiddleware(cache, logging.NewNop())(vendor)
	ctx := context.Background()

	first, err := wrapped.Pull(ctx, res, "en")
	require.NoError(t, err)
	second, err := wrapped.Pull(ctx, res, "en")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"root/ab": "Hello"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, vendor.Pulls())

	// Empty answers are cached too.
	_, err = wrapped.Pull(ctx, res, "ru")
	require.NoError(t, err)
	_, err = wrapped.Pull(ctx, res, "ru")
	require.NoError(t, err)
	assert.Equal(t, 2, vendor.Pulls())
}

func TestCacheMiddleware_PushBypassesCache(t *testing.T) {
	vendor := memory.NewVendor()
	wrapped := middleware.NewCacheMiddleware(memory.NewCache(), logging.NewNop())(vendor)

	require.NoError(t, wrapped.Push(context.Background(), res, map[string]string{"k": "v"}))
	pushed, ok := vendor.Pushed(res.Slug)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"k": "v"}, pushed)
}

func TestCacheMiddleware_BrokenCacheFallsBack(t *testing.T) {
	vendor := memory.NewVendor()
	vendor.Seed(res.Slug, "am", map[string]string{"k": "ቃል"})
	wrapped := middleware.NewCacheMiddleware(brokenCache{}, logging.NewNop())(vendor)

	got, err := wrapped.Pull(context.Background(), res, "am")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "ቃል"}, got)
}

func TestCacheMiddleware_VendorErrorNotCached(t *testing.T) {
	cache := memory.NewCache()
	wrapped := middleware.NewCacheMiddleware(cache, logging.NewNop())(failingVendor{})

	_, err := wrapped.Pull(context.Background(), res, "en")
	assert.ErrorIs(t, err, errVendorDown)

	_, ok, err := cache.Get(context.Background(), res.Slug, "en")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheMiddleware_VendorOutageNotCached(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("<html><body>Service Unavailable</body></html>"))
			return
		}
		_, _ = w.Write([]byte(`{"content":"he:\n  k: Hello\n"}`))
	}))
	defer srv.Close()

	cache := memory.NewCache()
	vendor := transifex.New("equalityorgil", "tok", transifex.WithBaseURL(srv.URL))
	wrapped := middleware.NewCacheMiddleware(cache, logging.NewNop())(vendor)
	ctx := context.Background()

	first, err := wrapped.Pull(ctx, res, "en")
	assert.ErrorIs(t, err, domain.ErrNoTranslations)
	assert.Empty(t, first)

	_, ok, err := cache.Get(ctx, res.Slug, "en")
	require.NoError(t, err)
	assert.False(t, ok)

	second, err := wrapped.Pull(ctx, res, "en")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "Hello"}, second)
	assert.Equal(t, 2, calls)
}

func TestCacheMiddleware_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.New(mr.Addr(), "", 0, redis.WithTTL(time.Hour))
	t.Cleanup(func() { _ = cache.Close() })

	vendor := memory.NewVendor()
	vendor.Seed(res.Slug, "ar", map[string]string{"k": "نص"})
	wrapped := middleware.NewCacheMiddleware(cache, logging.NewNop())(vendor)

	for range 3 {
		got, err := wrapped.Pull(context.Background(), res, "ar")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"k": "نص"}, got)
	}
	assert.Equal(t, 1, vendor.Pulls())
}

func TestLockMiddleware(t *testing.T) {
	locker := &recordingLocker{}
	vendor := memory.NewVendor()
	wrapped := middleware.NewLockMiddleware(locker, 0)(vendor)
	ctx := context.Background()

	require.NoError(t, wrapped.Push(ctx, res, map[string]string{"k": "v"}))
	_, err := wrapped.Pull(ctx, res, "en")
	require.NoError(t, err)

	assert.Equal(t, []string{"lock push:" + res.Slug, "unlock push:" + res.Slug}, locker.events)
}

func TestLockMiddleware_LockFailure(t *testing.T) {
	locker := &recordingLocker{fail: errors.New("busy")}
	vendor := memory.NewVendor()
	wrapped := middleware.NewLockMiddleware(locker, time.Second)(vendor)

	err := wrapped.Push(context.Background(), res, map[string]string{"k": "v"})
	require.Error(t, err)
	_, pushed := vendor.Pushed(res.Slug)
	assert.False(t, pushed)
}

func TestLockMiddleware_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })

	wrapped := middleware.NewLockMiddleware(cache.Locker(), time.Minute)(memory.NewVendor())
	tests.TranslationVendorContractTest(t, wrapped)

	// Released after each push.
	assert.Empty(t, mr.Keys())
}

func TestMetricsMiddleware(t *testing.T) {
	metrics := observability.NewMetrics()
	ctx := context.Background()

	ok := middleware.NewMetricsMiddleware(metrics)(memory.NewVendor())
	_, _ = ok.Pull(ctx, res, "en")
	_ = ok.Push(ctx, res, map[string]string{})

	bad := middleware.NewMetricsMiddleware(metrics)(failingVendor{})
	_, _ = bad.Pull(ctx, res, "en")

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.VendorRequests.WithLabelValues(observability.OpPull, observability.StatusOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.VendorRequests.WithLabelValues(observability.OpPush, observability.StatusOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.VendorRequests.WithLabelValues(observability.OpPull, observability.StatusError)))
}

func TestChain_Order(t *testing.T) {
	metrics := observability.NewMetrics()
	vendor := memory.NewVendor()
	wrapped := middleware.Chain(vendor,
		middleware.NewMetricsMiddleware(metrics),
		middleware.NewCacheMiddleware(memory.NewCache(), logging.NewNop()),
	)

	for range 2 {
		_, err := wrapped.Pull(context.Background(), res, "en")
		require.NoError(t, err)
	}
	// Metrics sit outside the cache and see both calls; the vendor sees one.
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.VendorRequests.WithLabelValues(observability.OpPull, observability.StatusOK)))
	assert.Equal(t, 1, vendor.Pulls())
}
