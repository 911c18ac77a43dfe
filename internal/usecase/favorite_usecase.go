package usecase

import (
	"context"

	"justchoose/internal/domain/entity"
)

// AddFavoriteInput is a place to save with the display attributes the client has.
type AddFavoriteInput struct {
	PlaceID  string
	Snapshot entity.PlaceSnapshot
}

// FavoriteOutput reports the resulting favorite and whether it reached storage.
type FavoriteOutput struct {
	Favorite  *entity.Favorite
	Persisted bool
}

// FavoriteUsecase manages a user's saved places.
type FavoriteUsecase interface {
	Add(ctx context.Context, caller *entity.Caller, input *AddFavoriteInput) (*FavoriteOutput, error)
	Remove(ctx context.Context, caller *entity.Caller, placeID string) (persisted bool, err error)
	List(ctx context.Context, caller *entity.Caller) ([]*entity.Favorite, error)
}
