package store

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryCache keeps entries in process. Entries never expire on their own;
// staleness is decided from Entry.FetchedAt.
type MemoryCache struct {
	items *cache.Cache
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: cache.New(cache.NoExpiration, 0)}
}

func (m *MemoryCache) Get(ctx context.Context, key string) (Entry, bool) {
	v, found := m.items.Get(key)
	if !found {
		return Entry{}, false
	}
	return v.(Entry), true
}

func (m *MemoryCache) Set(ctx context.Context, key string, entry Entry) {
	m.items.Set(key, entry, cache.NoExpiration)
}

func (m *MemoryCache) Clear(ctx context.Context) {
	m.items.Flush()
}
