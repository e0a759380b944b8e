package middleware

import (
	"context"
	"log/slog"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/ports"
)

type cacheMiddleware struct {
	next   ports.TranslationVendor
	cache  ports.TranslationCache
	logger *slog.Logger
}

// NewCacheMiddleware serves pulls from cache when possible and stores the
// vendor's answers otherwise. Cache failures are logged and bypassed.
// Vendor errors, domain.ErrNoTranslations included, are never cached.
// Push always reaches the vendor.
func NewCacheMiddleware(cache ports.TranslationCache, logger *slog.Logger) Middleware {
	return func(next ports.TranslationVendor) ports.TranslationVendor {
		return &cacheMiddleware{next: next, cache: cache, logger: logger}
	}
}

func (m *cacheMiddleware) Pull(ctx context.Context, res domain.Resource, lang string) (map[string]string, error) {
	cached, ok, err := m.cache.Get(ctx, res.Slug, lang)
	if err != nil {
		m.logger.Warn("translation cache unavailable", "resource", res.Slug, "lang", lang, "err", err)
	} else if ok {
		m.logger.Debug("translations served from cache", "resource", res.Slug, "lang", lang)
		return cached, nil
	}

	translated, err := m.next.Pull(ctx, res, lang)
	if err != nil {
		return translated, err
	}
	if err := m.cache.Set(ctx, res.Slug, lang, translated); err != nil {
		m.logger.Warn("failed to cache translations", "resource", res.Slug, "lang", lang, "err", err)
	}
	return translated, nil
}

func (m *cacheMiddleware) Push(ctx context.Context, res domain.Resource, source map[string]string) error {
	return m.next.Push(ctx, res, source)
}
