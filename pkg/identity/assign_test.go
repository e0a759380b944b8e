package identity

import (
	"testing"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = "src/user/script.yaml"

func exampleTree() map[string]any {
	return map[string]any{
		"name": "Root",
		"steps": []any{
			map[string]any{
				"say":  "שלום",
				"wait": map[string]any{"variable": "x"},
			},
		},
	}
}

func stepAt(tree any, path ...int) map[string]any {
	node := tree.(map[string]any)
	for _, i := range path {
		node = node["steps"].([]any)[i].(map[string]any)
	}
	return node
}

func TestAssign_EndToEndExample(t *testing.T) {
	res, err := Assign(exampleTree(), source)
	require.NoError(t, err)

	root := stepAt(res.Tree)
	step := stepAt(res.Tree, 0)

	rootUID := Hash(source + "|Root|-")
	assert.Equal(t, rootUID, root["uid"])
	assert.Equal(t, Hash(source+rootUID+"0"+"|x,שלום|0"), step["uid"])
	assert.Equal(t, 2, res.Stamped)
}

func TestAssign_DoesNotMutateInput(t *testing.T) {
	in := exampleTree()
	_, err := Assign(in, source)
	require.NoError(t, err)

	assert.NotContains(t, in, "uid")
	assert.NotContains(t, stepAt(in, 0), "uid")
}

func TestAssign_Deterministic(t *testing.T) {
	tree := map[string]any{
		"name": "Menu",
		"steps": []any{
			map[string]any{"say": "a"},
			map[string]any{
				"switch": map[string]any{
					"arg": "choice",
					"cases": []any{
						map[string]any{"match": "1", "steps": []any{map[string]any{"say": "one"}}},
						map[string]any{"match": "2", "steps": []any{map[string]any{"say": "two"}}},
					},
				},
			},
		},
	}

	first, err := Assign(tree, source)
	require.NoError(t, err)
	second, err := Assign(tree, source)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Tree, second.Tree); diff != "" {
		t.Errorf("repeated Assign differs (-first +second):\n%s", diff)
	}
}

func TestAssign_FieldSensitivity(t *testing.T) {
	base := map[string]any{
		"name": "Root",
		"steps": []any{
			map[string]any{"say": "first"},
			map[string]any{"say": "second"},
		},
	}
	edited := map[string]any{
		"name": "Root",
		"steps": []any{
			map[string]any{"say": "first, edited"},
			map[string]any{"say": "second"},
		},
	}

	a, err := Assign(base, source)
	require.NoError(t, err)
	b, err := Assign(edited, source)
	require.NoError(t, err)

	assert.NotEqual(t, stepAt(a.Tree, 0)["uid"], stepAt(b.Tree, 0)["uid"])
	assert.Equal(t, stepAt(a.Tree, 1)["uid"], stepAt(b.Tree, 1)["uid"], "sibling uid must not change")
	assert.Equal(t, stepAt(a.Tree)["uid"], stepAt(b.Tree)["uid"], "parent uid must not depend on children")
}

func TestAssign_PositionalSensitivity(t *testing.T) {
	tree := map[string]any{
		"name": "Root",
		"steps": []any{
			map[string]any{"say": "same"},
			map[string]any{"say": "same"},
		},
	}

	res, err := Assign(tree, source)
	require.NoError(t, err)
	assert.NotEqual(t, stepAt(res.Tree, 0)["uid"], stepAt(res.Tree, 1)["uid"])
}

func TestAssign_AncestrySensitivity(t *testing.T) {
	a, err := Assign(exampleTree(), "src/user/script.yaml")
	require.NoError(t, err)
	b, err := Assign(exampleTree(), "src/agent/script.yaml")
	require.NoError(t, err)

	assert.NotEqual(t, stepAt(a.Tree)["uid"], stepAt(b.Tree)["uid"])
	assert.NotEqual(t, stepAt(a.Tree, 0)["uid"], stepAt(b.Tree, 0)["uid"])
}

func TestAssign_GenericListsHaveNoPosition(t *testing.T) {
	// Two identical blocks inside a plain list hash the same: plain lists carry
	// no positional context, unlike "steps".
	block := func() map[string]any {
		return map[string]any{"match": "x", "steps": []any{map[string]any{"say": "hi"}}}
	}
	tree := map[string]any{
		"name": "Root",
		"steps": []any{
			map[string]any{
				"switch": map[string]any{"arg": "a", "cases": []any{block(), block()}},
			},
		},
	}

	res, err := Assign(tree, source)
	require.NoError(t, err)

	cases := stepAt(res.Tree, 0)["switch"].(map[string]any)["cases"].([]any)
	first := cases[0].(map[string]any)
	second := cases[1].(map[string]any)
	assert.Equal(t, first["uid"], second["uid"])
	assert.NotEmpty(t, first["uid"])

	// Swapping the elements of a plain list keeps every computed value.
	swapped := map[string]any{
		"name": "Root",
		"steps": []any{
			map[string]any{
				"switch": map[string]any{"arg": "a", "cases": []any{
					map[string]any{"match": "y", "steps": []any{map[string]any{"say": "b"}}},
					map[string]any{"match": "x", "steps": []any{map[string]any{"say": "a"}}},
				}},
			},
		},
	}
	ordered := map[string]any{
		"name": "Root",
		"steps": []any{
			map[string]any{
				"switch": map[string]any{"arg": "a", "cases": []any{
					map[string]any{"match": "x", "steps": []any{map[string]any{"say": "a"}}},
					map[string]any{"match": "y", "steps": []any{map[string]any{"say": "b"}}},
				}},
			},
		},
	}
	rs, err := Assign(swapped, source)
	require.NoError(t, err)
	ro, err := Assign(ordered, source)
	require.NoError(t, err)

	casesOf := func(tree any) []any {
		return stepAt(tree, 0)["switch"].(map[string]any)["cases"].([]any)
	}
	assert.Equal(t, casesOf(rs.Tree)[0], casesOf(ro.Tree)[1])
	assert.Equal(t, casesOf(rs.Tree)[1], casesOf(ro.Tree)[0])
}

func TestAssign_NestedStepsUseOwnIdentity(t *testing.T) {
	tree := map[string]any{
		"name": "Root",
		"steps": []any{
			map[string]any{
				"name":  "Inner",
				"steps": []any{map[string]any{"say": "deep"}},
			},
		},
	}

	res, err := Assign(tree, source)
	require.NoError(t, err)

	rootUID := Hash(source + "|Root|-")
	innerStack := source + rootUID + "0"
	innerUID := Hash(innerStack + "|Inner|-")
	assert.Equal(t, innerUID, stepAt(res.Tree, 0)["uid"])
	assert.Equal(t, Hash(innerStack+innerUID+"0"+"|deep|0"), stepAt(res.Tree, 0, 0)["uid"])
	assert.Equal(t, 3, res.Stamped)
}

func TestAssign_TopLevelSequence(t *testing.T) {
	tree := []any{exampleTree(), exampleTree()}

	res, err := Assign(tree, source)
	require.NoError(t, err)

	items := res.Tree.([]any)
	assert.Equal(t, items[0].(map[string]any)["uid"], items[1].(map[string]any)["uid"])
}

func TestAssign_MissingIdentity(t *testing.T) {
	tree := map[string]any{
		"name":  "Root",
		"steps": []any{map[string]any{"unrelated": "value"}},
	}

	_, err := Assign(tree, source)
	assert.ErrorIs(t, err, domain.ErrMissingIdentity)

	_, err = Assign(map[string]any{"steps": []any{}}, source)
	assert.ErrorIs(t, err, domain.ErrMissingIdentity)
}

func TestAssign_InvalidSteps(t *testing.T) {
	_, err := Assign(map[string]any{"name": "x", "steps": "oops"}, source)
	assert.ErrorIs(t, err, domain.ErrInvalidSteps)
}

func TestAssign_RejectsSharedNodes(t *testing.T) {
	shared := map[string]any{"say": "x"}
	tree := map[string]any{"name": "Root", "steps": []any{shared, shared}}

	_, err := Assign(tree, source)
	assert.ErrorIs(t, err, domain.ErrNotATree)
}

func TestAssign_WithFields(t *testing.T) {
	tree := map[string]any{"title": "T", "steps": []any{map[string]any{"title": "S"}}}

	_, err := Assign(tree, source)
	require.ErrorIs(t, err, domain.ErrMissingIdentity)

	res, err := New(WithFields("title")).Assign(tree, source)
	require.NoError(t, err)
	assert.Equal(t, Hash(source+"|T|-"), stepAt(res.Tree)["uid"])
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "true", stringify(true))
	assert.Equal(t, "42", stringify(42))
	assert.Equal(t, "1.5", stringify(1.5))
	assert.Equal(t, "3", stringify(float64(3)))
	assert.Equal(t, `{"a":1,"b":2}`, stringify(map[string]any{"b": 2, "a": 1}))
}
