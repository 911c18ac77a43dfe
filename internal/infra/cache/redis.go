package cache

import (
	"context"
	"time"

	"justchoose/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore keeps entries in Redis with a native expiry on each key.
type redisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore wraps client. Keys are namespaced with prefix.
func NewRedisStore(client redis.UniversalClient, prefix string) repository.CacheRepository {
	return &redisStore{client: client, prefix: prefix}
}

func (s *redisStore) Get(ctx context.Context, key string, _ time.Time) ([]byte, bool, error) {
	payload, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read cache entry from redis")
	}

	return payload, true, nil
}

func (s *redisStore) Put(ctx context.Context, key string, payload []byte, expiresAt time.Time) error {
	if err := s.client.SetArgs(ctx, s.prefix+key, payload, redis.SetArgs{ExpireAt: expiresAt}).Err(); err != nil {
		return errors.Wrap(err, "failed to write cache entry to redis")
	}

	return nil
}

// DeleteExpired is a no-op: Redis evicts expired keys itself.
func (s *redisStore) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}
