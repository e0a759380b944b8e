package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/aretw0/scriptsync/pkg/domain"
)

// Vendor implements ports.TranslationVendor in memory.
// Translations are seeded per resource slug and language; pushes are recorded.
type Vendor struct {
	mu           sync.RWMutex
	translations map[string]map[string]map[string]string
	resources    map[string]map[string]string
	created      []string
	pulls        int
}

// NewVendor creates an empty in-memory vendor.
func NewVendor() *Vendor {
	return &Vendor{
		translations: make(map[string]map[string]map[string]string),
		resources:    make(map[string]map[string]string),
	}
}

// Seed registers translated strings for a resource and language.
func (v *Vendor) Seed(slug, lang string, strings map[string]string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	perLang, ok := v.translations[slug]
	if !ok {
		perLang = make(map[string]map[string]string)
		v.translations[slug] = perLang
	}
	perLang[lang] = maps.Clone(strings)
}

// Pull returns the seeded strings, without empty values.
func (v *Vendor) Pull(ctx context.Context, res domain.Resource, lang string) (map[string]string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pulls++

	out := make(map[string]string)
	for k, s := range v.translations[res.Slug][lang] {
		if s != "" {
			out[k] = s
		}
	}
	return out, nil
}

// Push stores the source strings of a resource.
func (v *Vendor) Push(ctx context.Context, res domain.Resource, strings map[string]string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.resources[res.Slug]; !ok {
		v.created = append(v.created, res.Slug)
	}
	v.resources[res.Slug] = maps.Clone(strings)
	return nil
}

// Pushed returns the last strings pushed for a resource slug.
func (v *Vendor) Pushed(slug string) (map[string]string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	strings, ok := v.resources[slug]
	return maps.Clone(strings), ok
}

// Created lists the resource slugs created by a push, in order.
func (v *Vendor) Created() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]string(nil), v.created...)
}

// Pulls counts the Pull calls served.
func (v *Vendor) Pulls() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.pulls
}
