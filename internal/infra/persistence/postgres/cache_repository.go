package postgres

import (
	"context"
	"time"

	"justchoose/internal/domain/repository"
	"justchoose/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cacheRepository implements the repository.CacheRepository interface on the places_cache table.
type cacheRepository struct {
	db *gorm.DB
}

// NewCacheRepository is the constructor for cacheRepository.
func NewCacheRepository(db *gorm.DB) repository.CacheRepository {
	return &cacheRepository{
		db: db,
	}
}

// Get returns the payload stored at key if it has not expired at now.
func (repo *cacheRepository) Get(ctx context.Context, key string, now time.Time) ([]byte, bool, error) {
	var entryM model.CacheEntryModel

	if err := repo.db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, now).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to read cache entry")
	}

	return entryM.Payload, true, nil
}

// Put stores payload at key until expiresAt, replacing any existing entry.
func (repo *cacheRepository) Put(ctx context.Context, key string, payload []byte, expiresAt time.Time) error {
	entryM := &model.CacheEntryModel{
		Key:       key,
		Payload:   datatypes.JSON(payload),
		ExpiresAt: expiresAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "expires_at"}),
		}).
		Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to write cache entry")
	}

	return nil
}

// DeleteExpired purges entries that expired before now and returns how many were removed.
func (repo *cacheRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&model.CacheEntryModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge expired cache entries")
	}

	return result.RowsAffected, nil
}
