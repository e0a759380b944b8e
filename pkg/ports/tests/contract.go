package tests

import (
	"context"
	"testing"

	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TranslationCacheContractTest verifies that an adapter complies with ports.TranslationCache.
func TranslationCacheContractTest(t *testing.T, cache ports.TranslationCache) {
	t.Helper()
	ctx := context.Background()

	t.Run("Get_Miss", func(t *testing.T) {
		got, ok, err := cache.Get(ctx, "contract_missing", "en")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("Set_Then_Get", func(t *testing.T) {
		want := map[string]string{"root/ab/cd": "Hello", "root/ab/ef": "مرحبا"}
		require.NoError(t, cache.Set(ctx, "contract_res", "en", want))

		got, ok, err := cache.Get(ctx, "contract_res", "en")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("Languages_Are_Isolated", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "contract_iso", "en", map[string]string{"k": "en"}))

		_, ok, err := cache.Get(ctx, "contract_iso", "ru")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Empty_Is_A_Hit", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "contract_empty", "am", map[string]string{}))

		got, ok, err := cache.Get(ctx, "contract_empty", "am")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, got)
	})
}

// TranslationVendorContractTest verifies that an adapter complies with ports.TranslationVendor.
// The vendor must start without the contract resource.
func TranslationVendorContractTest(t *testing.T, vendor ports.TranslationVendor) {
	t.Helper()
	ctx := context.Background()
	res := domain.ResourceFor("src/contract/script.yaml")

	t.Run("Pull_Unknown_Resource", func(t *testing.T) {
		got, err := vendor.Pull(ctx, res, "en")
		if err != nil {
			require.ErrorIs(t, err, domain.ErrNoTranslations)
		}
		assert.Empty(t, got)
	})

	t.Run("Push_Create_Then_Update", func(t *testing.T) {
		require.NoError(t, vendor.Push(ctx, res, map[string]string{"a": "אחת"}))
		require.NoError(t, vendor.Push(ctx, res, map[string]string{"a": "אחת", "b": "שתיים"}))
	})
}
