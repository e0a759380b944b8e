package txkey

import (
	"iter"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/scriptsync/internal/logging"
	"github.com/aretw0/scriptsync/pkg/domain"
)

// uidSegment is the number of uid characters used as a key segment.
const uidSegment = 2

// Options controls a key walk.
type Options struct {
	// Stack seeds the key path.
	Stack []string
	// Fields lists the mapping fields whose strings are translatable.
	// Strings held directly by a sequence are always considered.
	Fields []string
	// FieldInKey appends the field name (or sequence index) to the key.
	FieldInKey bool
	// Translations are spliced by Apply; Walk ignores them.
	Translations domain.Translations
	// Detector selects the strings needing translation. Defaults to Hebrew.
	Detector Detector
	Logger   *slog.Logger
}

// Result is the outcome of Apply.
type Result struct {
	Tree    any
	Entries []domain.Entry
	// Spliced counts the strings replaced by a translation carrier.
	Spliced int
}

// Walk lazily yields the translatable strings of tree with their keys.
// The tree is not modified.
func Walk(tree any, opts Options) iter.Seq[domain.Entry] {
	return func(yield func(domain.Entry) bool) {
		w := newWalker(opts, false)
		w.walk(tree, slices.Clone(opts.Stack), slot{}, yield)
	}
}

// Apply walks a copy of tree, replacing every string whose key has a translation
// with a carrier object, and returns the copy with the discovered entries.
func Apply(tree any, opts Options) (*Result, error) {
	out, err := domain.Clone(tree)
	if err != nil {
		return nil, err
	}

	w := newWalker(opts, true)
	res := &Result{Tree: out}
	w.walk(out, slices.Clone(opts.Stack), slot{}, func(e domain.Entry) bool {
		res.Entries = append(res.Entries, e)
		return true
	})
	res.Spliced = w.spliced

	w.logger.Debug("translation keys walked", "entries", len(res.Entries), "spliced", res.Spliced)
	return res, nil
}

type walker struct {
	fields       map[string]bool
	fieldInKey   bool
	translations domain.Translations
	detect       Detector
	splice       bool
	spliced      int
	logger       *slog.Logger
}

func newWalker(opts Options, splice bool) *walker {
	w := &walker{
		fields:       make(map[string]bool, len(opts.Fields)),
		fieldInKey:   opts.FieldInKey,
		translations: opts.Translations,
		detect:       opts.Detector,
		splice:       splice,
		logger:       opts.Logger,
	}
	for _, f := range opts.Fields {
		w.fields[f] = true
	}
	if w.detect == nil {
		w.detect = Hebrew
	}
	if w.logger == nil {
		w.logger = logging.NewNop()
	}
	return w
}

// slot is the position holding the value being walked: a mapping field or a sequence index.
type slot struct {
	node  map[string]any
	field string
	list  []any
	index int
}

func (s slot) set() bool     { return s.node != nil || s.list != nil }
func (s slot) isField() bool { return s.node != nil }

func (s slot) segment() string {
	if s.isField() {
		return s.field
	}
	return strconv.Itoa(s.index)
}

func (s slot) replace(v any) {
	if s.isField() {
		s.node[s.field] = v
		return
	}
	s.list[s.index] = v
}

func (w *walker) walk(v any, stack []string, parent slot, yield func(domain.Entry) bool) bool {
	switch x := v.(type) {
	case map[string]any:
		stack = slices.Clip(stack)
		if s, ok := x[domain.FieldSlug].(string); ok && s != "" {
			stack = append(stack, s)
		} else if n, ok := x[domain.FieldName].(string); ok && n != "" {
			stack = append(stack, Slugify(n))
		}
		if uid, ok := x[domain.FieldUID].(string); ok {
			stack = append(stack, uid[:min(uidSegment, len(uid))])
		}

		for _, k := range slices.Sorted(maps.Keys(x)) {
			if k == domain.FieldSteps {
				// Steps are walked without a parent: a string directly under a
				// step mapping belongs to the step, not to "steps".
				children, ok := x[k].([]any)
				if !ok {
					if !w.walk(x[k], stack, slot{}, yield) {
						return false
					}
					continue
				}
				for _, child := range children {
					if !w.walk(child, stack, slot{}, yield) {
						return false
					}
				}
				continue
			}
			if !w.walk(x[k], stack, slot{node: x, field: k}, yield) {
				return false
			}
		}

	case []any:
		for i, item := range x {
			itemStack := append(slices.Clip(stack), strconv.Itoa(i))
			if !w.walk(item, itemStack, slot{list: x, index: i}, yield) {
				return false
			}
		}

	case string:
		return w.leaf(x, stack, parent, yield)
	}
	return true
}

func (w *walker) leaf(text string, stack []string, parent slot, yield func(domain.Entry) bool) bool {
	if !parent.set() || !w.detect(text) {
		return true
	}
	if parent.isField() && !w.fields[parent.field] {
		return true
	}

	segments := stack
	if w.fieldInKey {
		segments = append(slices.Clip(stack), parent.segment())
	}
	key := strings.Join(segments, "/")

	if !yield(domain.Entry{Key: key, Text: text}) {
		return false
	}

	if w.splice {
		if perLang, ok := w.translations[key]; ok {
			parent.replace(domain.Carrier(text, perLang))
			w.spliced++
		}
	}
	return true
}
