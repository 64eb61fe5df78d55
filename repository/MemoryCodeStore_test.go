package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryCodeStore exercises the CodeStore contract against the
// process-local implementation.
func TestMemoryCodeStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is absent", func(t *testing.T) {
		store := NewMemoryCodeStore()

		_, ok := store.Get(ctx, "verify_code_nobody@example.com")
		assert.False(t, ok)

		found, ok := store.Exists(ctx, "verify_code_nobody@example.com")
		assert.True(t, ok)
		assert.False(t, found)
	})

	t.Run("set then get", func(t *testing.T) {
		store := NewMemoryCodeStore()

		require.True(t, store.SetWithExpiry(ctx, "verify_code_a@example.com", "123456", time.Minute))

		val, ok := store.Get(ctx, "verify_code_a@example.com")
		require.True(t, ok)
		assert.Equal(t, "123456", val)

		found, ok := store.Exists(ctx, "verify_code_a@example.com")
		assert.True(t, ok)
		assert.True(t, found)
	})

	t.Run("a second set overwrites", func(t *testing.T) {
		store := NewMemoryCodeStore()

		require.True(t, store.SetWithExpiry(ctx, "verify_code_a@example.com", "111111", time.Minute))
		require.True(t, store.SetWithExpiry(ctx, "verify_code_a@example.com", "222222", time.Minute))

		val, ok := store.Get(ctx, "verify_code_a@example.com")
		require.True(t, ok)
		assert.Equal(t, "222222", val)
	})

	t.Run("key expires after its TTL", func(t *testing.T) {
		store := NewMemoryCodeStore()

		require.True(t, store.SetWithExpiry(ctx, "verify_code_a@example.com", "123456", 20*time.Millisecond))

		_, ok := store.Get(ctx, "verify_code_a@example.com")
		assert.True(t, ok)

		time.Sleep(40 * time.Millisecond)

		_, ok = store.Get(ctx, "verify_code_a@example.com")
		assert.False(t, ok, "expired key should be absent")
	})

	t.Run("always reports connected and healthy", func(t *testing.T) {
		store := NewMemoryCodeStore()
		assert.True(t, store.IsConnected())
		assert.True(t, store.Ping(ctx))
		store.Quit() // no-op, must not panic
	})
}
