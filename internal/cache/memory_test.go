package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "key", []byte("value"), time.Hour)
	got, ok := m.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), got)

	_, ok = m.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "key", []byte("value"), 10*time.Millisecond)
	_, ok := m.Get(ctx, "key")
	require.True(t, ok)

	time.Sleep(30 * time.Millisecond)
	_, ok = m.Get(ctx, "key")
	assert.False(t, ok)
	assert.Zero(t, m.Len())
}

func TestMemoryIgnoresNonPositiveTTL(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "key", []byte("value"), 0)
	_, ok := m.Get(ctx, "key")
	assert.False(t, ok)
	assert.Zero(t, m.Len())
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	m.Set(ctx, "key", []byte("one"), time.Hour)
	m.Set(ctx, "key", []byte("two"), time.Hour)
	got, ok := m.Get(ctx, "key")
	require.True(t, ok)
	assert.Equal(t, []byte("two"), got)
	assert.Equal(t, 1, m.Len())
}

func TestMemoryCloseIdempotent(t *testing.T) {
	m := NewMemory()
	m.Close()
	m.Close()
}
