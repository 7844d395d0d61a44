package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunHeuristicCacheContract runs a suite of tests to verify that a
// HeuristicCache implementation adheres to the defined interface contract.
func RunHeuristicCacheContract(t *testing.T, cache HeuristicCache) {
	ctx := context.Background()
	keyPrefix := "contract-" + time.Now().Format("20060102150405") + "-"

	t.Run("Miss on unknown key", func(t *testing.T) {
		_, ok, err := cache.Get(ctx, keyPrefix+"unknown")
		require.NoError(t, err)
		assert.False(t, ok, "unknown key should miss")
	})

	t.Run("Put then Get", func(t *testing.T) {
		key := keyPrefix + "put-get"
		err := cache.Put(ctx, key, 7)
		require.NoError(t, err, "Put should not return error")

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		require.True(t, ok, "stored key should hit")
		assert.Equal(t, 7, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := keyPrefix + "overwrite"
		require.NoError(t, cache.Put(ctx, key, 1))
		require.NoError(t, cache.Put(ctx, key, 2))

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 2, got)
	})

	t.Run("Zero is a valid value", func(t *testing.T) {
		key := keyPrefix + "zero"
		require.NoError(t, cache.Put(ctx, key, 0))

		got, ok, err := cache.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, "a cached zero must still be a hit")
		assert.Equal(t, 0, got)
	})

	t.Run("Distinct keys are independent", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			require.NoError(t, cache.Put(ctx, fmt.Sprintf("%sk%d", keyPrefix, i), i))
		}
		for i := 0; i < 5; i++ {
			got, ok, err := cache.Get(ctx, fmt.Sprintf("%sk%d", keyPrefix, i))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, i, got)
		}
	})
}
