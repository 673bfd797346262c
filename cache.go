package revodoc

import (
	"context"
	"encoding/json"
	"time"
)

// CacheEntry represents a cached API payload. Data is the raw JSON response
// body; Timestamp is when the payload was fetched. For a given key the
// timestamp never decreases without a fresh network write.
type CacheEntry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// Age returns the entry's age relative to now.
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.Timestamp)
}

// CacheStore is a two-tier read-through cache keyed by request URL.
// Set never fails the caller: durable-tier errors degrade the cache to
// in-process-only for that write.
type CacheStore interface {
	// Get returns the entry for key if present and within the TTL window,
	// consulting the in-process tier first and hydrating it from the
	// durable tier on a miss. Expired entries are not returned.
	Get(ctx context.Context, key string) (*CacheEntry, bool)

	// GetDurable returns the durable-tier entry for key regardless of age.
	// This is the stale-fallback read used when a network fetch fails.
	GetDurable(ctx context.Context, key string) (*CacheEntry, bool)

	// Set writes the entry to both tiers with the current timestamp,
	// overwriting any prior entry for the key.
	Set(ctx context.Context, key string, data json.RawMessage)
}

// DurableStore persists cache entries across process restarts.
// Implementations live in subpackages (e.g., sqlite).
type DurableStore interface {
	// GetEntry retrieves the entry for key.
	// Returns ENOTFOUND if no entry exists.
	GetEntry(ctx context.Context, key string) (*CacheEntry, error)

	// SetEntry stores the entry for key, overwriting any prior entry.
	SetEntry(ctx context.Context, key string, entry *CacheEntry) error
}
