package mock

import (
	"context"
	"encoding/json"

	"github.com/revoapp/revodoc"
)

var _ revodoc.CacheStore = (*CacheStore)(nil)

// CacheStore is a mock implementation of revodoc.CacheStore.
type CacheStore struct {
	GetFn        func(ctx context.Context, key string) (*revodoc.CacheEntry, bool)
	GetDurableFn func(ctx context.Context, key string) (*revodoc.CacheEntry, bool)
	SetFn        func(ctx context.Context, key string, data json.RawMessage)
}

func (s *CacheStore) Get(ctx context.Context, key string) (*revodoc.CacheEntry, bool) {
	return s.GetFn(ctx, key)
}

func (s *CacheStore) GetDurable(ctx context.Context, key string) (*revodoc.CacheEntry, bool) {
	return s.GetDurableFn(ctx, key)
}

func (s *CacheStore) Set(ctx context.Context, key string, data json.RawMessage) {
	s.SetFn(ctx, key, data)
}

var _ revodoc.DurableStore = (*DurableStore)(nil)

// DurableStore is a mock implementation of revodoc.DurableStore.
type DurableStore struct {
	GetEntryFn func(ctx context.Context, key string) (*revodoc.CacheEntry, error)
	SetEntryFn func(ctx context.Context, key string, entry *revodoc.CacheEntry) error
}

func (s *DurableStore) GetEntry(ctx context.Context, key string) (*revodoc.CacheEntry, error) {
	return s.GetEntryFn(ctx, key)
}

func (s *DurableStore) SetEntry(ctx context.Context, key string, entry *revodoc.CacheEntry) error {
	return s.SetEntryFn(ctx, key, entry)
}
