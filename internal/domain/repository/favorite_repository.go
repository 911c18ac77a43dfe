package repository

import (
	"context"

	"justchoose/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository stores at most one favorite per (user, place).
type FavoriteRepository interface {
	// Upsert inserts the favorite or replaces the snapshot of the existing one.
	Upsert(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite if present.
	Delete(ctx context.Context, userID uuid.UUID, placeID string) error

	// ListByUser returns the user's favorites, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)
}
