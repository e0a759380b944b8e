package ports

import (
	"context"

	"github.com/aretw0/scriptsync/pkg/domain"
)

// TranslationVendor is the translation-management service.
type TranslationVendor interface {
	// Pull returns the translated strings of a resource for one language, keyed by
	// translation key. A resource without usable data yields an empty map, either
	// alone or with an error matching domain.ErrNoTranslations.
	Pull(ctx context.Context, res domain.Resource, lang string) (map[string]string, error)

	// Push uploads the full set of source strings of a resource, creating the
	// resource when the vendor does not know it yet.
	Push(ctx context.Context, res domain.Resource, strings map[string]string) error
}

// TranslationCache stores pulled translations per resource and language.
type TranslationCache interface {
	// Get reports false when nothing is cached for the pair.
	Get(ctx context.Context, slug, lang string) (map[string]string, bool, error)
	Set(ctx context.Context, slug, lang string, strings map[string]string) error
}
