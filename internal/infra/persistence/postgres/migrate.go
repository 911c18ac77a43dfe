package postgres

import (
	"context"

	"justchoose/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Models lists every table owned by the service, in creation order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.SpinModel{},
		&model.FavoriteModel{},
		&model.CacheEntryModel{},
	}
}

// Migrate creates or updates the schema for Models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
