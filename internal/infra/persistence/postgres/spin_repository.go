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
	"gorm.io/plugin/dbresolver"
)

// spinRepository implements the repository.SpinRepository interface.
type spinRepository struct {
	db *gorm.DB
}

// NewSpinRepository is the constructor for spinRepository.
func NewSpinRepository(db *gorm.DB) repository.SpinRepository {
	return &spinRepository{
		db: db,
	}
}

// Create stores a spin. A redelivered spin with an existing ID is ignored.
func (repo *spinRepository) Create(ctx context.Context, spin *entity.SpinRecord) error {
	spinM, err := fromSpinDomain(spin)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(spinM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required spin information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create spin")
	}

	return nil
}

// FindByID retrieves a spin by its ID.
func (repo *spinRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SpinRecord, error) {
	var spinM model.SpinModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&spinM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpinNotFound
		}

		return nil, errors.Wrap(err, "failed to find spin by id")
	}

	return toSpinDomain(&spinM)
}

// ListByOwner returns the owner's latest spins from the primary so a spin
// recorded a moment ago is visible.
func (repo *spinRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.SpinRecord, error) {
	var spinModels []*model.SpinModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&spinModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list spins by owner")
	}

	spins := make([]*entity.SpinRecord, 0, len(spinModels))
	for _, spinM := range spinModels {
		spin, err := toSpinDomain(spinM)
		if err != nil {
			return nil, err
		}
		spins = append(spins, spin)
	}

	return spins, nil
}

// --- Mapper Functions ---

func toSpinDomain(data *model.SpinModel) (*entity.SpinRecord, error) {
	var options []entity.Place
	if err := json.Unmarshal(data.Options, &options); err != nil {
		return nil, errors.Wrapf(err, "failed to decode options of spin %s", data.ID)
	}

	return &entity.SpinRecord{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Seed:       data.Seed,
		Options:    options,
		SelectedID: data.SelectedID,
		CreatedAt:  data.CreatedAt,
	}, nil
}

func fromSpinDomain(data *entity.SpinRecord) (*model.SpinModel, error) {
	options, err := json.Marshal(data.Options)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode spin options")
	}

	return &model.SpinModel{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		Seed:       data.Seed,
		Options:    datatypes.JSON(options),
		SelectedID: data.SelectedID,
		CreatedAt:  data.CreatedAt,
	}, nil
}
