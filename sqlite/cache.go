package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/revoapp/revodoc"
)

// Compile-time interface verification.
var _ revodoc.DurableStore = (*CacheService)(nil)

// CacheService implements revodoc.DurableStore using SQLite.
type CacheService struct {
	db *DB
}

// NewCacheService creates a new CacheService.
func NewCacheService(db *DB) *CacheService {
	return &CacheService{db: db}
}

// hashData computes xxHash of data and returns hex string.
func hashData(data []byte) string {
	h := xxhash.Sum64(data)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// GetEntry retrieves the cache entry for key.
func (s *CacheService) GetEntry(ctx context.Context, key string) (*revodoc.CacheEntry, error) {
	var data string
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT data, created_at
		FROM cache_entries
		WHERE key = ?
	`, key).Scan(&data, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, revodoc.Errorf(revodoc.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	timestamp, err := parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &revodoc.CacheEntry{
		Data:      json.RawMessage(data),
		Timestamp: timestamp,
	}, nil
}

// SetEntry stores the entry for key, overwriting any prior entry.
func (s *CacheService) SetEntry(ctx context.Context, key string, entry *revodoc.CacheEntry) error {
	if key == "" {
		return revodoc.Errorf(revodoc.EINVALID, "cache key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cache_entries (key, data, content_hash, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			content_hash = excluded.content_hash,
			created_at = excluded.created_at
	`, key, string(entry.Data), hashData(entry.Data), entry.Timestamp.UTC().Format(time.RFC3339))

	return err
}
