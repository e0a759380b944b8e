package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_DeepCopy(t *testing.T) {
	src := map[string]any{
		"name": "Root",
		"steps": []any{
			map[string]any{"say": "hello"},
		},
	}

	out, err := Clone(src)
	require.NoError(t, err)
	assert.Equal(t, src, out)

	// Mutating the copy must not leak into the source.
	out.(map[string]any)["steps"].([]any)[0].(map[string]any)["say"] = "changed"
	assert.Equal(t, "hello", src["steps"].([]any)[0].(map[string]any)["say"])
}

func TestClone_NormalizesAnyKeys(t *testing.T) {
	src := map[any]any{"a": 1, 2: "two"}

	out, err := Clone(src)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "2": "two"}, out)
}

func TestClone_RejectsSharedNodes(t *testing.T) {
	shared := map[string]any{"say": "x"}
	src := map[string]any{
		"steps": []any{shared, shared},
	}

	_, err := Clone(src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotATree))
}

func TestClone_RejectsCycles(t *testing.T) {
	src := map[string]any{"name": "loop"}
	src["self"] = src

	_, err := Clone(src)
	assert.ErrorIs(t, err, ErrNotATree)
}

func TestClone_AllowsEmptySequences(t *testing.T) {
	src := map[string]any{"a": []any{}, "b": []any{}}

	_, err := Clone(src)
	assert.NoError(t, err)
}
