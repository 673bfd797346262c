package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/revoapp/revodoc"
	"github.com/revoapp/revodoc/cache"
	"github.com/revoapp/revodoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source for TTL tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// memDurable is an in-memory revodoc.DurableStore for round-trip tests.
func memDurable() (*mock.DurableStore, map[string]*revodoc.CacheEntry) {
	entries := make(map[string]*revodoc.CacheEntry)
	store := &mock.DurableStore{
		GetEntryFn: func(_ context.Context, key string) (*revodoc.CacheEntry, error) {
			entry, ok := entries[key]
			if !ok {
				return nil, revodoc.Errorf(revodoc.ENOTFOUND, "cache entry %q not found", key)
			}
			return entry, nil
		},
		SetEntryFn: func(_ context.Context, key string, entry *revodoc.CacheEntry) error {
			entries[key] = entry
			return nil
		},
	}
	return store, entries
}

func TestStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("round-trips within TTL", func(t *testing.T) {
		t.Parallel()

		clock := &fakeClock{now: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
		durable, _ := memDurable()
		store := cache.New(durable, cache.WithClock(clock.Now))
		ctx := context.Background()

		store.Set(ctx, "https://api.github.com/releases", json.RawMessage(`[{"tag_name":"v2.1.0"}]`))

		clock.Advance(9 * time.Minute)
		entry, ok := store.Get(ctx, "https://api.github.com/releases")

		require.True(t, ok)
		assert.JSONEq(t, `[{"tag_name":"v2.1.0"}]`, string(entry.Data))
	})

	t.Run("does not return expired entries", func(t *testing.T) {
		t.Parallel()

		clock := &fakeClock{now: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
		durable, _ := memDurable()
		store := cache.New(durable, cache.WithClock(clock.Now))
		ctx := context.Background()

		store.Set(ctx, "key", json.RawMessage(`{}`))
		clock.Advance(cache.DefaultTTL)

		_, ok := store.Get(ctx, "key")
		assert.False(t, ok)
	})

	t.Run("hydrates in-process tier from durable tier", func(t *testing.T) {
		t.Parallel()

		clock := &fakeClock{now: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
		reads := 0
		durable := &mock.DurableStore{
			GetEntryFn: func(_ context.Context, key string) (*revodoc.CacheEntry, error) {
				reads++
				return &revodoc.CacheEntry{Data: json.RawMessage(`{"n":1}`), Timestamp: clock.Now()}, nil
			},
		}
		store := cache.New(durable, cache.WithClock(clock.Now))
		ctx := context.Background()

		entry, ok := store.Get(ctx, "key")
		require.True(t, ok)
		assert.JSONEq(t, `{"n":1}`, string(entry.Data))
		assert.Equal(t, 1, reads)

		// Second read is served from the hydrated map.
		_, ok = store.Get(ctx, "key")
		require.True(t, ok)
		assert.Equal(t, 1, reads)
	})

	t.Run("ignores stale durable entries", func(t *testing.T) {
		t.Parallel()

		clock := &fakeClock{now: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
		durable := &mock.DurableStore{
			GetEntryFn: func(_ context.Context, key string) (*revodoc.CacheEntry, error) {
				return &revodoc.CacheEntry{Data: json.RawMessage(`{}`), Timestamp: clock.Now().Add(-time.Hour)}, nil
			},
		}
		store := cache.New(durable, cache.WithClock(clock.Now))

		_, ok := store.Get(context.Background(), "key")
		assert.False(t, ok)
	})

	t.Run("misses with nil durable store", func(t *testing.T) {
		t.Parallel()

		store := cache.New(nil)

		_, ok := store.Get(context.Background(), "key")
		assert.False(t, ok)
	})
}

func TestStore_GetDurable(t *testing.T) {
	t.Parallel()

	t.Run("returns entries regardless of age", func(t *testing.T) {
		t.Parallel()

		clock := &fakeClock{now: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
		durable, _ := memDurable()
		store := cache.New(durable, cache.WithClock(clock.Now))
		ctx := context.Background()

		store.Set(ctx, "key", json.RawMessage(`{"stale":true}`))
		clock.Advance(24 * time.Hour)

		entry, ok := store.GetDurable(ctx, "key")

		require.True(t, ok)
		assert.JSONEq(t, `{"stale":true}`, string(entry.Data))
	})

	t.Run("misses when durable read fails", func(t *testing.T) {
		t.Parallel()

		durable := &mock.DurableStore{
			GetEntryFn: func(_ context.Context, key string) (*revodoc.CacheEntry, error) {
				return nil, revodoc.Errorf(revodoc.EUNAVAILABLE, "storage unavailable")
			},
		}
		store := cache.New(durable)

		_, ok := store.GetDurable(context.Background(), "key")
		assert.False(t, ok)
	})
}

func TestStore_Set(t *testing.T) {
	t.Parallel()

	t.Run("writes through to durable tier with prefixed key", func(t *testing.T) {
		t.Parallel()

		durable, entries := memDurable()
		store := cache.New(durable)

		store.Set(context.Background(), "https://api.github.com/releases", json.RawMessage(`[]`))

		require.Len(t, entries, 1)
		assert.Contains(t, entries, cache.KeyPrefix+"https://api.github.com/releases")
	})

	t.Run("overwrite advances the timestamp", func(t *testing.T) {
		t.Parallel()

		clock := &fakeClock{now: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)}
		durable, entries := memDurable()
		store := cache.New(durable, cache.WithClock(clock.Now))
		ctx := context.Background()

		store.Set(ctx, "key", json.RawMessage(`1`))
		first := entries[cache.KeyPrefix+"key"].Timestamp

		clock.Advance(time.Minute)
		store.Set(ctx, "key", json.RawMessage(`2`))
		second := entries[cache.KeyPrefix+"key"].Timestamp

		assert.True(t, second.After(first))
	})

	t.Run("swallows durable write failures", func(t *testing.T) {
		t.Parallel()

		durable := &mock.DurableStore{
			SetEntryFn: func(_ context.Context, key string, entry *revodoc.CacheEntry) error {
				return revodoc.Errorf(revodoc.EUNAVAILABLE, "quota exceeded")
			},
		}
		store := cache.New(durable)
		ctx := context.Background()

		store.Set(ctx, "key", json.RawMessage(`{"kept":true}`))

		// The in-process tier still serves the write.
		entry, ok := store.Get(ctx, "key")
		require.True(t, ok)
		assert.JSONEq(t, `{"kept":true}`, string(entry.Data))
	})
}
