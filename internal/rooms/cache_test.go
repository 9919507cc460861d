package rooms

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *ListCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewListCache(client)
}

func TestListCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	_, ok := cache.Get(ctx, 1)
	require.False(t, ok, "cold cache must miss")

	list := []Room{{Username: "alice", Title: "hi"}}
	cache.Set(ctx, 1, list)

	got, ok := cache.Get(ctx, 1)
	require.True(t, ok)
	require.Equal(t, list, got)

	_, ok = cache.Get(ctx, 2)
	require.False(t, ok, "pages are cached independently")
}

func TestListCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	cache.Set(ctx, 1, []Room{{Username: "alice"}})
	cache.Set(ctx, 2, []Room{{Username: "bob"}})

	cache.Invalidate(ctx)

	_, ok := cache.Get(ctx, 1)
	require.False(t, ok)
	_, ok = cache.Get(ctx, 2)
	require.False(t, ok)
}

func TestListCache_NilIsSafe(t *testing.T) {
	ctx := context.Background()

	var cache *ListCache
	_, ok := cache.Get(ctx, 1)
	require.False(t, ok)

	cache.Set(ctx, 1, []Room{{Username: "alice"}})
	cache.Invalidate(ctx)
}
