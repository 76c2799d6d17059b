package repository

import (
	"context"
	"time"
)

// CacheStore abstracts ephemeral key-value state: cached analytics snapshots
// and refresh-token revocation markers.
// Implementations: Redis (production) or in-memory (local dev / single-instance).
type CacheStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
