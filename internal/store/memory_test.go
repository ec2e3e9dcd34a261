package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_HashOps(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.HSet(ctx, "h", map[string]string{"a": "1", "b": "2"}))

	fields, err := s.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, fields)

	v, err := s.HGet(ctx, "h", "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	// Missing field reads as empty, not an error.
	v, err = s.HGet(ctx, "h", "missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.HDel(ctx, "h", "a"))
	fields, err = s.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "2"}, fields)
}

func TestMemoryStore_HGetAllCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.HSet(ctx, "h", map[string]string{"a": "1"}))

	fields, err := s.HGetAll(ctx, "h")
	require.NoError(t, err)
	fields["a"] = "mutated"

	again, err := s.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, "1", again["a"])
}

func TestMemoryStore_ListOps(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.RPush(ctx, "l", "a"))
	require.NoError(t, s.RPush(ctx, "l", "b", "c"))

	items, err := s.LRange(ctx, "l")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items)

	require.NoError(t, s.LRem(ctx, "l", "b"))
	items, err = s.LRange(ctx, "l")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, items)
}

func TestMemoryStore_CounterOps(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	n, err := s.Incr(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.Incr(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.Decr(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	v, err := s.GetInt(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	// Missing counter reads as zero.
	v, err = s.GetInt(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestMemoryStore_KeysAndDel(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.HSet(ctx, "product:1", map[string]string{"a": "1"}))
	require.NoError(t, s.RPush(ctx, "product:ids", "1"))
	require.NoError(t, s.Set(ctx, "product:counter", "1"))
	require.NoError(t, s.Set(ctx, "other", "x"))

	keys, err := s.Keys(ctx, "product:*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"product:1", "product:ids", "product:counter"}, keys)

	require.NoError(t, s.Del(ctx, keys...))

	keys, err = s.Keys(ctx, "product:*")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.HGetAll(ctx, "h")
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, s.Ping(ctx), context.Canceled)
}
