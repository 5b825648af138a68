package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisTTL = time.Hour

// RedisCache shares entries between instances. Keys carry a prefix so Clear
// only removes this cache's keys. A Redis failure reads as a miss.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, ttl: defaultRedisTTL}
}

func (r *RedisCache) Get(ctx context.Context, key string) (Entry, bool) {
	raw, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[WARN] lookup cache get %s: %v", key, err)
		}
		return Entry{}, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Entry{}, false
	}
	return entry, true
}

func (r *RedisCache) Set(ctx context.Context, key string, entry Entry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, raw, r.ttl).Err(); err != nil {
		log.Printf("[WARN] lookup cache set %s: %v", key, err)
	}
}

func (r *RedisCache) Clear(ctx context.Context) {
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("[WARN] lookup cache scan: %v", err)
	}
	if len(keys) > 0 {
		r.client.Del(ctx, keys...)
	}
}

// NewCache returns a Redis cache when driver is "redis" and the server
// answers, the memory cache otherwise.
func NewCache(ctx context.Context, driver string, client *redis.Client) Cache {
	if driver == "redis" && client != nil {
		if err := client.Ping(ctx).Err(); err == nil {
			return NewRedisCache(client, "lookup:")
		}
		log.Printf("[WARN] redis unavailable, lookup cache falls back to memory")
	}
	return NewMemoryCache()
}
