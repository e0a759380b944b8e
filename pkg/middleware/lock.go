package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/ports"
)

// DefaultLockTTL bounds how long a crashed run can hold an upload lock.
const DefaultLockTTL = 2 * time.Minute

type lockMiddleware struct {
	next   ports.TranslationVendor
	locker ports.Locker
	ttl    time.Duration
}

// NewLockMiddleware serializes pushes of the same resource through locker.
// A non-positive ttl selects DefaultLockTTL.
func NewLockMiddleware(locker ports.Locker, ttl time.Duration) Middleware {
	if ttl <= 0 {
		ttl = DefaultLockTTL
	}
	return func(next ports.TranslationVendor) ports.TranslationVendor {
		return &lockMiddleware{next: next, locker: locker, ttl: ttl}
	}
}

func (m *lockMiddleware) Pull(ctx context.Context, res domain.Resource, lang string) (map[string]string, error) {
	return m.next.Pull(ctx, res, lang)
}

func (m *lockMiddleware) Push(ctx context.Context, res domain.Resource, source map[string]string) (err error) {
	unlock, err := m.locker.Lock(ctx, "push:"+res.Slug, m.ttl)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", res.Slug, err)
	}
	defer func() {
		if uerr := unlock(context.WithoutCancel(ctx)); uerr != nil && err == nil {
			err = fmt.Errorf("failed to unlock %s: %w", res.Slug, uerr)
		}
	}()
	return m.next.Push(ctx, res, source)
}
