package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedItem struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rc := NewRedisCache(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rc.Close() })

	require.NoError(t, rc.Connect(context.Background()))
	return rc, mr
}

func TestRedisCache_SetGet(t *testing.T) {
	rc, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "item", cachedItem{Title: "sunset", Count: 2}, time.Minute))

	var got cachedItem
	found, err := rc.Get(ctx, "item", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cachedItem{Title: "sunset", Count: 2}, got)
}

func TestRedisCache_Miss(t *testing.T) {
	rc, _ := newTestCache(t)

	var got cachedItem
	found, err := rc.Get(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, cachedItem{}, got)
}

func TestRedisCache_DeleteAndExpire(t *testing.T) {
	rc, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, rc.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, rc.Set(ctx, "b", 2, time.Second))

	require.NoError(t, rc.Delete(ctx, "a"))
	assert.False(t, mr.Exists("a"))

	mr.FastForward(2 * time.Second)
	assert.False(t, mr.Exists("b"))

	assert.NoError(t, rc.Delete(ctx))
}

func TestRedisCache_PingFailsWhenServerDown(t *testing.T) {
	rc, mr := newTestCache(t)
	mr.Close()

	assert.Error(t, rc.Ping(context.Background()))
}

func TestRedisCache_IncrReadableByGet(t *testing.T) {
	rc, _ := newTestCache(t)
	ctx := context.Background()

	var gen int64
	found, err := rc.Get(ctx, "gen", &gen)
	require.NoError(t, err)
	assert.False(t, found)

	n, err := rc.Incr(ctx, "gen")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = rc.Incr(ctx, "gen")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	found, err = rc.Get(ctx, "gen", &gen)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(2), gen)
}
