package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/scriptsync/internal/config"
	"github.com/aretw0/scriptsync/pkg/adapters/firestore"
	"github.com/aretw0/scriptsync/pkg/adapters/redis"
	"github.com/aretw0/scriptsync/pkg/adapters/transifex"
	"github.com/aretw0/scriptsync/pkg/middleware"
	"github.com/aretw0/scriptsync/pkg/observability"
	"github.com/aretw0/scriptsync/pkg/ports"
)

// NewSource creates the editor document source described by cfg.
func NewSource(cfg *config.Config, logger *slog.Logger) ports.DocumentSource {
	return firestore.New(cfg.Firestore.Project,
		firestore.WithBaseURL(cfg.Firestore.BaseURL),
		firestore.WithCollection(cfg.Firestore.Collection),
		firestore.WithLogger(logger),
	)
}

// NewVendor creates the translation vendor described by cfg, decorated with
// metrics and, when a Redis address is configured, a pull cache and push locks.
// It returns a nil vendor when no credential is configured. The returned close
// function releases the Redis connection and is never nil.
func NewVendor(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (ports.TranslationVendor, func() error, error) {
	noop := func() error { return nil }
	if !cfg.SyncEnabled() {
		return nil, noop, nil
	}

	client := transifex.New(cfg.Transifex.Project, cfg.Transifex.Token,
		transifex.WithBaseURL(cfg.Transifex.BaseURL),
		transifex.WithSourceLanguage(cfg.Transifex.SourceLanguage),
		transifex.WithLogger(logger),
	)
	mws := []middleware.Middleware{middleware.NewMetricsMiddleware(metrics)}

	if cfg.Cache.RedisAddr == "" {
		return middleware.Chain(client, mws...), noop, nil
	}

	cache := redis.New(cfg.Cache.RedisAddr, cfg.Cache.Password, cfg.Cache.DB,
		redis.WithTTL(cfg.Cache.TTL),
		redis.WithPrefix(cfg.Cache.Prefix),
	)
	if err := cache.Ping(ctx); err != nil {
		_ = cache.Close()
		return nil, noop, fmt.Errorf("translation cache at %s: %w", cfg.Cache.RedisAddr, err)
	}
	logger.Debug("translation cache enabled", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL)

	mws = append(mws,
		middleware.NewLockMiddleware(cache.Locker(), cfg.Cache.LockTTL),
		middleware.NewCacheMiddleware(cache, logger),
	)
	return middleware.Chain(client, mws...), cache.Close, nil
}
