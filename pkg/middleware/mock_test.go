package middleware_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/ports"
)

var errVendorDown = errors.New("vendor down")

// failingVendor fails every call.
type failingVendor struct{}

func (failingVendor) Pull(context.Context, domain.Resource, string) (map[string]string, error) {
	return nil, errVendorDown
}

func (failingVendor) Push(context.Context, domain.Resource, map[string]string) error {
	return errVendorDown
}

// brokenCache fails every call.
type brokenCache struct{}

func (brokenCache) Get(context.Context, string, string) (map[string]string, bool, error) {
	return nil, false, errors.New("cache down")
}

func (brokenCache) Set(context.Context, string, string, map[string]string) error {
	return errors.New("cache down")
}

// recordingLocker records lock and unlock calls.
type recordingLocker struct {
	mu     sync.Mutex
	events []string
	fail   error
}

func (l *recordingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fail != nil {
		return nil, l.fail
	}
	l.events = append(l.events, "lock "+key)
	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.events = append(l.events, "unlock "+key)
		return nil
	}, nil
}

var (
	_ ports.TranslationVendor = failingVendor{}
	_ ports.TranslationCache  = brokenCache{}
	_ ports.Locker            = (*recordingLocker)(nil)
)
