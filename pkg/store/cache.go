// Package store holds the lookup cache backends.
package store

import (
	"context"
	"encoding/json"
	"time"
)

// Entry is a cached value with the moment it was fetched. Freshness is judged
// by the reader, so one entry can serve lookups with different lifetimes.
type Entry struct {
	Value     json.RawMessage `json:"value"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Cache is the capability the lookup service depends on. Clear drops every
// entry and exists mainly as a reset hook for tests.
type Cache interface {
	Get(ctx context.Context, key string) (Entry, bool)
	Set(ctx context.Context, key string, entry Entry)
	Clear(ctx context.Context)
}
