// Package cache selects and runs the result cache backend.
package cache

import (
	"context"
	"log/slog"
	"time"

	"justchoose/config"
	"justchoose/internal/domain/constants"
	"justchoose/internal/domain/lifecycle"
	"justchoose/internal/domain/repository"
	"justchoose/internal/domain/service"
	"justchoose/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	redisKeyPrefix = "justchoose:"

	// purgeInterval is how often expired rows are removed from stores without native expiry.
	purgeInterval = time.Hour
)

// Params holds dependencies for the cache store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Clock  service.Clock
}

// NewStore returns the CacheRepository for the configured backend and schedules
// the periodic purge of expired entries.
func NewStore(params Params) (repository.CacheRepository, error) {
	cfg := params.Config.Cache
	logger := params.Logger.With(slog.String("component", "cache"))

	backend := constants.CacheBackendPostgres
	if cfg != nil && cfg.Backend != "" {
		backend = cfg.Backend
	}

	var store repository.CacheRepository

	switch backend {
	case constants.CacheBackendPostgres:
		store = postgres.NewCacheRepository(params.DB)

	case constants.CacheBackendRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis cache backend")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return errors.Wrap(client.Ping(ctx).Err(), "failed to ping redis")
			},
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		store = NewRedisStore(client, redisKeyPrefix)

	case constants.CacheBackendMemory:
		store = NewMemoryStore()

	default:
		return nil, errors.Errorf("unknown cache backend: %s", backend)
	}

	logger.Info("Result cache configured", slog.String("backend", backend))

	purgeCtx, cancelPurge := context.WithCancel(context.Background())
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go purgeExpired(purgeCtx, logger, store, params.Clock, purgeInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			cancelPurge()

			return nil
		},
	})

	return store, nil
}

func purgeExpired(ctx context.Context, logger *slog.Logger, store repository.CacheRepository, clock service.Clock, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := store.DeleteExpired(ctx, clock.Now())
			if err != nil {
				logger.Warn("Failed to purge expired cache entries", slog.Any("error", err))

				continue
			}
			if removed > 0 {
				logger.Debug("Purged expired cache entries", slog.Int64("removed", removed))
			}
		}
	}
}

// Module provides the result cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
