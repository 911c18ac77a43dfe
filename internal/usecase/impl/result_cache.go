package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "justchoose/internal/delivery/context"
	"justchoose/internal/domain/repository"
	"justchoose/internal/domain/service"
	"justchoose/internal/infra/metrics"
)

// Cache entry kinds, used as metric labels.
const (
	cacheKindSearch  = "search"
	cacheKindGeocode = "geocode"
)

// resultCache stores JSON payloads with a uniform TTL. Store failures degrade
// to a miss on read and are dropped on write.
type resultCache struct {
	store  repository.CacheRepository
	clock  service.Clock
	ttl    time.Duration
	logger *slog.Logger
}

func newResultCache(store repository.CacheRepository, clock service.Clock, ttl time.Duration, logger *slog.Logger) *resultCache {
	return &resultCache{
		store:  store,
		clock:  clock,
		ttl:    ttl,
		logger: logger,
	}
}

// get decodes the live entry at key into out and reports whether there was one.
func (c *resultCache) get(ctx context.Context, kind, key string, out any) bool {
	log := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	payload, found, err := c.store.Get(ctx, key, c.clock.Now())
	if err != nil {
		log.Warn("Cache read failed", slog.String("key", key), slog.Any("error", err))
		metrics.ObserveCacheLookup(kind, false)

		return false
	}
	if !found {
		metrics.ObserveCacheLookup(kind, false)

		return false
	}

	if err := json.Unmarshal(payload, out); err != nil {
		log.Warn("Discarding undecodable cache entry", slog.String("key", key), slog.Any("error", err))
		metrics.ObserveCacheLookup(kind, false)

		return false
	}

	metrics.ObserveCacheLookup(kind, true)

	return true
}

// put overwrites key with value, expiring one TTL from now.
func (c *resultCache) put(ctx context.Context, key string, value any) {
	log := deliverycontext.GetLoggerOrDefault(ctx, c.logger)

	payload, err := json.Marshal(value)
	if err != nil {
		log.Warn("Cache payload encoding failed", slog.String("key", key), slog.Any("error", err))

		return
	}

	if err := c.store.Put(ctx, key, payload, c.clock.Now().Add(c.ttl)); err != nil {
		log.Warn("Cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
