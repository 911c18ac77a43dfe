package postgres

import (
	"context"
	"encoding/json"

	"justchoose/internal/domain/entity"
	domainerrors "justchoose/internal/domain/errors"
	"justchoose/internal/domain/repository"
	"justchoose/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Upsert saves the favorite, refreshing the snapshot when (user_id, place_id) already exists.
func (repo *favoriteRepository) Upsert(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM, err := fromFavoriteDomain(favorite)
	if err != nil {
		return err
	}
	if favoriteM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate favorite id")
		}
		favoriteM.ID = id
	}

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "place_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"snapshot", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(favoriteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt
	favorite.UpdatedAt = favoriteM.UpdatedAt

	return nil
}

// Delete removes the favorite if present.
func (repo *favoriteRepository) Delete(ctx context.Context, userID uuid.UUID, placeID string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorite")
	}

	return nil
}

// ListByUser returns the user's favorites, newest first.
func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorite, err := toFavoriteDomain(favoriteM)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, favorite)
	}

	return favorites, nil
}

// --- Mapper Functions ---

func toFavoriteDomain(data *model.FavoriteModel) (*entity.Favorite, error) {
	var snapshot entity.PlaceSnapshot
	if err := json.Unmarshal(data.Snapshot, &snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to decode snapshot of favorite %s", data.ID)
	}

	return &entity.Favorite{
		ID:        data.ID,
		UserID:    data.UserID,
		PlaceID:   data.PlaceID,
		Snapshot:  snapshot,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func fromFavoriteDomain(data *entity.Favorite) (*model.FavoriteModel, error) {
	snapshot, err := json.Marshal(data.Snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode favorite snapshot")
	}

	return &model.FavoriteModel{
		ID:       data.ID,
		UserID:   data.UserID,
		PlaceID:  data.PlaceID,
		Snapshot: datatypes.JSON(snapshot),
	}, nil
}
