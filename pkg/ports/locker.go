package ports

import (
	"context"
	"time"
)

// UnlockFunc releases a lock acquired by a Locker.
type UnlockFunc func(ctx context.Context) error

// Locker serializes vendor uploads of the same resource across concurrent runs
// (for example two CI jobs syncing the same branch).
type Locker interface {
	// Lock blocks until the lock is acquired or ctx is done.
	// The lock expires after ttl if it is never released.
	Lock(ctx context.Context, key string, ttl time.Duration) (UnlockFunc, error)
}
