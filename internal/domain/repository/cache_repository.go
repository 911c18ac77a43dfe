package repository

import (
	"context"
	"time"
)

// CacheRepository is a time-expiring key/value store for provider responses.
type CacheRepository interface {
	// Get returns the payload stored at key. found is false for missing and expired entries alike.
	Get(ctx context.Context, key string, now time.Time) (payload []byte, found bool, err error)

	// Put stores payload at key until expiresAt, replacing any existing entry.
	Put(ctx context.Context, key string, payload []byte, expiresAt time.Time) error

	// DeleteExpired purges entries that expired at or before now and reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
