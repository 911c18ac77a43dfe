package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "justchoose/internal/delivery/context"
	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/repository"
	"justchoose/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxRating = 5

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	gateway      usecase.ProviderGateway
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Gateway      usecase.ProviderGateway
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		gateway:      params.Gateway,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add saves a place for the caller, replacing the snapshot of an existing favorite.
// A failed write is logged and reported through Persisted only.
func (srv *favoriteService) Add(ctx context.Context, caller *entity.Caller, input *usecase.AddFavoriteInput) (*usecase.FavoriteOutput, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	placeID := strings.TrimSpace(input.PlaceID)
	if placeID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("placeId is required")
	}
	if err := validateSnapshot(&input.Snapshot); err != nil {
		return nil, err
	}

	favorite := &entity.Favorite{
		UserID:   caller.UserID,
		PlaceID:  placeID,
		Snapshot: srv.snapshot(ctx, caller, placeID, input.Snapshot),
	}

	if err := srv.favoriteRepo.Upsert(ctx, favorite); err != nil {
		srv.log(ctx).Error("Failed to save favorite",
			slog.String("userID", caller.UserID.String()),
			slog.String("placeID", placeID),
			slog.Any("error", err),
		)

		return &usecase.FavoriteOutput{Favorite: favorite, Persisted: false}, nil
	}

	return &usecase.FavoriteOutput{Favorite: favorite, Persisted: true}, nil
}

// snapshot refreshes the client's snapshot from Google place details for premium callers.
func (srv *favoriteService) snapshot(ctx context.Context, caller *entity.Caller, placeID string, fallback entity.PlaceSnapshot) entity.PlaceSnapshot {
	if entity.IsOSMPlaceID(placeID) || !srv.gateway.Choose(ctx, caller).IsPremium() {
		return fallback
	}

	place, err := srv.gateway.PlaceDetails(ctx, placeID)
	if err != nil {
		srv.log(ctx).Warn("Place details unavailable, keeping client snapshot",
			slog.String("placeID", placeID),
			slog.Any("error", err),
		)

		return fallback
	}

	return place.Snapshot()
}

// Remove deletes the caller's favorite. A failed delete is logged and reported as not persisted.
func (srv *favoriteService) Remove(ctx context.Context, caller *entity.Caller, placeID string) (bool, error) {
	if caller == nil {
		return false, domainerrors.ErrUnauthorized
	}

	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return false, domainerrors.ErrValidationFailed.WithDetails("place_id is required")
	}

	if err := srv.favoriteRepo.Delete(ctx, caller.UserID, placeID); err != nil {
		srv.log(ctx).Error("Failed to remove favorite",
			slog.String("userID", caller.UserID.String()),
			slog.String("placeID", placeID),
			slog.Any("error", err),
		)

		return false, nil
	}

	return true, nil
}

// List returns the caller's favorites, newest first.
func (srv *favoriteService) List(ctx context.Context, caller *entity.Caller) ([]*entity.Favorite, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	favorites, err := srv.favoriteRepo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

func validateSnapshot(snapshot *entity.PlaceSnapshot) error {
	snapshot.Name = strings.TrimSpace(snapshot.Name)
	if snapshot.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("snapshot name is required")
	}
	if snapshot.Rating != nil && (*snapshot.Rating < 0 || *snapshot.Rating > maxRating) {
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 0 and 5")
	}
	if snapshot.PriceTier != nil && (*snapshot.PriceTier < entity.MinPriceTier || *snapshot.PriceTier > entity.MaxPriceTier) {
		return domainerrors.ErrValidationFailed.WithDetails("price tier must be between 1 and 4")
	}

	return nil
}
