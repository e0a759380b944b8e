package domain

import (
	"fmt"
	"reflect"
)

// Clone returns a deep copy of a decoded script tree.
//
// Mappings decoded with non-string keys (map[any]any) are normalized to Node.
// Clone fails with ErrNotATree when the same mapping or sequence is reachable
// through more than one path, which also rejects cycles.
func Clone(v any) (any, error) {
	c := cloner{seen: make(map[uintptr]bool)}
	return c.clone(v, "$")
}

type cloner struct {
	seen map[uintptr]bool
}

func (c *cloner) visit(v any, at string) error {
	ptr := reflect.ValueOf(v).Pointer()
	if ptr == 0 {
		return nil
	}
	if c.seen[ptr] {
		return fmt.Errorf("%w: shared or cyclic value at %s", ErrNotATree, at)
	}
	c.seen[ptr] = true
	return nil
}

func (c *cloner) clone(v any, at string) (any, error) {
	switch x := v.(type) {
	case map[string]any:
		if err := c.visit(x, at); err != nil {
			return nil, err
		}
		out := make(map[string]any, len(x))
		for k, child := range x {
			cv, err := c.clone(child, at+"."+k)
			if err != nil {
				return nil, err
			}
			out[k] = cv
		}
		return out, nil
	case map[any]any:
		if err := c.visit(x, at); err != nil {
			return nil, err
		}
		out := make(map[string]any, len(x))
		for k, child := range x {
			key := fmt.Sprint(k)
			cv, err := c.clone(child, at+"."+key)
			if err != nil {
				return nil, err
			}
			out[key] = cv
		}
		return out, nil
	case []any:
		if len(x) > 0 {
			if err := c.visit(x, at); err != nil {
				return nil, err
			}
		}
		out := make([]any, len(x))
		for i, child := range x {
			cv, err := c.clone(child, fmt.Sprintf("%s[%d]", at, i))
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	default:
		return v, nil
	}
}
