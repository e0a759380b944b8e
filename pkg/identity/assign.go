package identity

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/scriptsync/internal/logging"
	"github.com/aretw0/scriptsync/pkg/domain"
)

// DefaultFields are the identity-relevant field paths, in hashing order.
var DefaultFields = []string{
	"name",
	"wait.variable",
	"say",
	"switch.arg",
	"do.cmd",
	"do.variable",
	"match",
	"pattern",
	"default",
	"show",
}

// noPosition marks a UID computed for a node's own identity rather than its slot in "steps".
const noPosition = -1

// Result is a stamped copy of the input tree.
type Result struct {
	Tree any
	// Stamped counts the nodes that received a uid.
	Stamped int
}

// Assigner computes and writes node identifiers.
type Assigner struct {
	fields []string
	logger *slog.Logger
}

// Option configures an Assigner.
type Option func(*Assigner)

// WithFields replaces the identity-relevant field paths.
func WithFields(paths ...string) Option {
	return func(a *Assigner) {
		a.fields = slices.Clone(paths)
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assigner) {
		a.logger = logger
	}
}

// New creates an Assigner using DefaultFields.
func New(opts ...Option) *Assigner {
	a := &Assigner{
		fields: DefaultFields,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assign stamps a copy of tree using the default Assigner.
func Assign(tree any, stack ...string) (*Result, error) {
	return New().Assign(tree, stack...)
}

// Assign returns a copy of tree in which every node declaring "steps", and every
// mapping inside a "steps" sequence, carries a uid field. The input is not modified.
// stack seeds the hashing context, typically with the source document path.
func (a *Assigner) Assign(tree any, stack ...string) (*Result, error) {
	out, err := domain.Clone(tree)
	if err != nil {
		return nil, err
	}
	res := &Result{Tree: out}
	if err := a.walk(out, slices.Clone(stack), res); err != nil {
		return nil, err
	}
	return res, nil
}

func (a *Assigner) walk(v any, stack []string, res *Result) error {
	switch x := v.(type) {
	case map[string]any:
		return a.walkNode(x, stack, res)
	case []any:
		for _, item := range x {
			if err := a.walk(item, stack, res); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Assigner) walkNode(node map[string]any, stack []string, res *Result) error {
	steps, hasSteps, err := domain.Steps(node)
	if err != nil {
		return fmt.Errorf("%w at %s", err, location(stack))
	}

	var uid string
	if hasSteps {
		uid, err = a.uid(node, stack, noPosition)
		if err != nil {
			return err
		}

		for i, s := range steps {
			childStack := append(slices.Clip(stack), uid, strconv.Itoa(i))

			child, ok := s.(map[string]any)
			if !ok {
				if err := a.walk(s, childStack, res); err != nil {
					return err
				}
				continue
			}

			// A child with its own steps is stamped by its own walk.
			if _, nested := child[domain.FieldSteps]; !nested {
				childUID, err := a.uid(child, childStack, i)
				if err != nil {
					return err
				}
				child[domain.FieldUID] = childUID
				res.Stamped++
			}

			if err := a.walkNode(child, childStack, res); err != nil {
				return err
			}
		}
	}

	for _, k := range slices.Sorted(maps.Keys(node)) {
		if k == domain.FieldSteps {
			continue
		}
		if err := a.walk(node[k], stack, res); err != nil {
			return err
		}
	}

	if hasSteps {
		node[domain.FieldUID] = uid
		res.Stamped++
		a.logger.Debug("node stamped", "uid", uid, "children", len(steps), "depth", len(stack))
	}
	return nil
}

// uid hashes the node's present identity values together with its context.
func (a *Assigner) uid(node map[string]any, stack []string, position int) (string, error) {
	values := make([]string, 0, len(a.fields))
	for _, path := range a.fields {
		if v, ok := Lookup(node, path); ok {
			values = append(values, stringify(v))
		}
	}
	if len(values) == 0 {
		return "", fmt.Errorf("%w at %s: expected one of %s",
			domain.ErrMissingIdentity, location(stack), strings.Join(a.fields, ", "))
	}

	pos := "-"
	if position != noPosition {
		pos = strconv.Itoa(position)
	}
	key := strings.Join(stack, "") + "|" + strings.Join(values, ",") + "|" + pos
	return Hash(key), nil
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	}
	// Composite values: encoding/json sorts map keys, so the form is canonical.
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprint(v)
}

func location(stack []string) string {
	if len(stack) == 0 {
		return "<root>"
	}
	return strings.Join(stack, "/")
}
