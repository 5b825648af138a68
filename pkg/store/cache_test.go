package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return map[string]Cache{
		"memory": NewMemoryCache(),
		"redis":  NewRedisCache(client, "test:"),
	}
}

func TestCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	fetched := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, found := c.Get(ctx, "rollen:{}")
			assert.False(t, found)

			c.Set(ctx, "rollen:{}", Entry{Value: json.RawMessage(`[{"id":1}]`), FetchedAt: fetched})
			c.Set(ctx, "dagen:{}", Entry{Value: json.RawMessage(`[]`), FetchedAt: fetched})

			got, found := c.Get(ctx, "rollen:{}")
			require.True(t, found)
			assert.JSONEq(t, `[{"id":1}]`, string(got.Value))
			assert.True(t, fetched.Equal(got.FetchedAt))

			c.Clear(ctx)
			_, found = c.Get(ctx, "rollen:{}")
			assert.False(t, found)
			_, found = c.Get(ctx, "dagen:{}")
			assert.False(t, found)
		})
	}
}

func TestRedisClearKeepsForeignKeys(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, client.Set(ctx, "session:abc", "x", 0).Err())
	c := NewRedisCache(client, "lookup:")
	c.Set(ctx, "rollen:{}", Entry{Value: json.RawMessage(`[]`), FetchedAt: time.Now()})

	c.Clear(ctx)

	assert.True(t, mr.Exists("session:abc"))
	assert.False(t, mr.Exists("lookup:rollen:{}"))
}

func TestRedisFailureIsAMiss(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	c := NewRedisCache(client, "lookup:")
	mr.Close()

	c.Set(ctx, "rollen:{}", Entry{Value: json.RawMessage(`[]`)})
	_, found := c.Get(ctx, "rollen:{}")
	assert.False(t, found)
}

func TestNewCacheFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	assert.IsType(t, &MemoryCache{}, NewCache(ctx, "memory", nil))

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	defer client.Close()
	assert.IsType(t, &MemoryCache{}, NewCache(ctx, "redis", client))

	mr := miniredis.RunT(t)
	live := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer live.Close()
	assert.IsType(t, &RedisCache{}, NewCache(ctx, "redis", live))
}
