package repository

import (
	"context"
	"errors"

	"justchoose/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSpinNotFound is returned when no spin exists with the requested ID.
var ErrSpinNotFound = errors.New("spin not found")

// SpinRepository is the append-only spin history.
type SpinRepository interface {
	// Create stores a spin. Storing an ID that already exists is a no-op.
	Create(ctx context.Context, spin *entity.SpinRecord) error

	// FindByID retrieves a spin by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SpinRecord, error)

	// ListByOwner returns the owner's latest spins, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.SpinRecord, error)
}
