package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations_Add(t *testing.T) {
	tx := Translations{}
	tx.Add("en", map[string]string{"a/b": "Hello", "a/c": ""})
	tx.Add("ar", map[string]string{"a/b": "مرحبا"})

	assert.Equal(t, Translations{
		"a/b": {"en": "Hello", "ar": "مرحبا"},
	}, tx)
}

func TestCarrier(t *testing.T) {
	got := Carrier("שלום", map[string]string{"en": "Hello"})

	assert.Equal(t, map[string]any{
		".tx": map[string]any{"en": "Hello", "_": "שלום"},
	}, got)
}

func TestParseSource(t *testing.T) {
	for _, valid := range []string{"editor", "local"} {
		s, err := ParseSource(valid)
		assert.NoError(t, err)
		assert.Equal(t, Source(valid), s)
	}

	for _, invalid := range []string{"", "remote", "Editor"} {
		_, err := ParseSource(invalid)
		assert.ErrorIs(t, err, ErrUnknownSource, "input %q", invalid)
	}
}

func TestSteps(t *testing.T) {
	steps, ok, err := Steps(Node{"steps": []any{Node{}}})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, steps, 1)

	steps, ok, err = Steps(Node{"steps": "nope"})
	assert.ErrorIs(t, err, ErrInvalidSteps)
	assert.True(t, ok)
	assert.Nil(t, steps)

	_, ok, err = Steps(Node{"say": "x"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResourceFor(t *testing.T) {
	tests := []struct {
		path string
		want Resource
	}{
		{"src/user/script.yaml", Resource{Slug: "src_user_script_yaml", Name: "src/user/script.yaml"}},
		{"src/datasets/infocards.datapackage.json", Resource{
			Slug: "src_datasets_infocards_datapackage_json",
			Name: "src/datasets/infocards.datapackage.json",
		}},
		{"./src//agent/script.yaml", Resource{Slug: "src_agent_script_yaml", Name: "src/agent/script.yaml"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResourceFor(tt.path), tt.path)
	}
}
