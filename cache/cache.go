// Package cache provides the two-tier cache store used by the data client:
// an in-process map in front of a durable store, with a shared TTL.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/revoapp/revodoc"
)

// DefaultTTL is how long an entry is considered fresh.
const DefaultTTL = 10 * time.Minute

// KeyPrefix namespaces durable-tier keys so the store can share a database
// with other application state.
const KeyPrefix = "revo_cache_v1::"

// Ensure Store implements revodoc.CacheStore at compile time.
var _ revodoc.CacheStore = (*Store)(nil)

// Store is a two-tier cache: an in-process map hydrated from a durable
// store. Durable-tier failures never propagate to callers; the cache
// degrades to in-process-only for the affected operation.
type Store struct {
	mu      sync.Mutex
	entries map[string]*revodoc.CacheEntry

	durable revodoc.DurableStore
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the freshness window. Defaults to DefaultTTL (10m).
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithClock sets the time source. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger for durable-tier failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store over the given durable tier. A nil durable store is
// allowed and yields an in-process-only cache.
func New(durable revodoc.DurableStore, opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]*revodoc.CacheEntry),
		durable: durable,
		ttl:     DefaultTTL,
		now:     time.Now,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL returns the configured freshness window.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Get returns the entry for key if present and fresh. The in-process tier
// is consulted first; on a miss a fresh durable entry hydrates the map.
func (s *Store) Get(ctx context.Context, key string) (*revodoc.CacheEntry, bool) {
	now := s.now()

	s.mu.Lock()
	if entry, ok := s.entries[key]; ok && entry.Age(now) < s.ttl {
		s.mu.Unlock()
		return entry, true
	}
	s.mu.Unlock()

	entry, ok := s.GetDurable(ctx, key)
	if !ok || entry.Age(now) >= s.ttl {
		return nil, false
	}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()

	return entry, true
}

// GetDurable returns the durable-tier entry for key regardless of age.
// Lookup failures are logged and reported as a miss.
func (s *Store) GetDurable(ctx context.Context, key string) (*revodoc.CacheEntry, bool) {
	if s.durable == nil {
		return nil, false
	}

	entry, err := s.durable.GetEntry(ctx, KeyPrefix+key)
	if err != nil {
		if revodoc.ErrorCode(err) != revodoc.ENOTFOUND {
			s.logger.Debug("durable cache read failed", "key", key, "err", err)
		}
		return nil, false
	}
	return entry, true
}

// Set writes data to both tiers with the current timestamp. Durable-tier
// write failures are logged and swallowed.
func (s *Store) Set(ctx context.Context, key string, data json.RawMessage) {
	entry := &revodoc.CacheEntry{Data: data, Timestamp: s.now()}

	s.mu.Lock()
	s.entries[key] = entry
	s.mu.Unlock()

	if s.durable == nil {
		return
	}
	if err := s.durable.SetEntry(ctx, KeyPrefix+key, entry); err != nil {
		s.logger.Debug("durable cache write failed", "key", key, "err", err)
	}
}
