package domain

import "fmt"

// Node is one unit of a script: a step, a menu entry or a dataset record.
// Values keep the generic YAML/JSON shapes: strings, numbers, booleans,
// nested Nodes and []any sequences.
type Node = map[string]any

// Field names with structural meaning for the tree walks.
const (
	// FieldSteps holds the explicitly ordered children of a node.
	FieldSteps = "steps"
	// FieldUID receives the identifier stamped by the identity assigner.
	FieldUID = "uid"
	// FieldSlug is an author-provided key segment, preferred over FieldName.
	FieldSlug = "slug"
	// FieldName is the display name; its slug becomes a key segment.
	FieldName = "name"
)

// Steps returns the children of n and whether n declares a "steps" field at all.
// A declared field that is not a sequence fails with ErrInvalidSteps.
func Steps(n Node) (steps []any, declared bool, err error) {
	v, declared := n[FieldSteps]
	if !declared {
		return nil, false, nil
	}
	steps, ok := v.([]any)
	if !ok {
		return nil, true, fmt.Errorf("%w (got %T)", ErrInvalidSteps, v)
	}
	return steps, true, nil
}
