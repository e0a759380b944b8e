package syncer

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/observability"
	"github.com/aretw0/scriptsync/pkg/txkey"
)

// translate pulls every language for the document, splices the translations
// into a copy of tree and pushes the document's source strings.
// Each top-level entry of a list is walked on its own, with a fresh key stack.
func (d *Driver) translate(ctx context.Context, doc *DocumentReport, tree any, opts txkey.Options) (any, error) {
	res := domain.ResourceFor(doc.Path)

	translations := make(domain.Translations)
	for _, lang := range d.cfg.Languages {
		pulled, err := d.vendor.Pull(ctx, res, lang)
		if errors.Is(err, domain.ErrNoTranslations) {
			continue
		}
		if err != nil {
			return nil, err
		}
		translations.Add(lang, pulled)
	}
	opts.Translations = translations

	catalog := txkey.NewCatalog()
	apply := func(v any) (any, error) {
		walked, err := txkey.Apply(v, opts)
		if err != nil {
			return nil, err
		}
		if err := catalog.AddAll(slices.Values(walked.Entries)); err != nil {
			return nil, err
		}
		doc.Spliced += walked.Spliced
		return walked.Tree, nil
	}

	var out any
	if list, ok := tree.([]any); ok {
		items := make([]any, len(list))
		for i, item := range list {
			translated, err := apply(item)
			if err != nil {
				return nil, err
			}
			items[i] = translated
		}
		out = items
	} else {
		translated, err := apply(tree)
		if err != nil {
			return nil, err
		}
		out = translated
	}

	if err := d.vendor.Push(ctx, res, catalog.Strings()); err != nil {
		return nil, fmt.Errorf("failed to push %s: %w", res.Slug, err)
	}

	doc.Keys = catalog.Len()
	doc.Synced = true
	d.record(func(m *observability.Metrics) {
		m.KeysDiscovered.WithLabelValues(string(doc.Kind)).Add(float64(doc.Keys))
		m.TranslationsSpliced.WithLabelValues(string(doc.Kind)).Add(float64(doc.Spliced))
	})
	d.logger.Info("Synced translations", "resource", res.Slug, "keys", doc.Keys, "spliced", doc.Spliced)
	return out, nil
}

// recordFields returns the translatable fields of a dataset: the fields of its first record.
func recordFields(items []any) []string {
	if len(items) == 0 {
		return nil
	}
	first, ok := items[0].(map[string]any)
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(first))
}
