// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"justchoose/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when a Google account is already linked to a user.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByGoogleSubject retrieves the user linked to a Google account.
	FindByGoogleSubject(ctx context.Context, subject string) (*entity.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile refreshes email, name and image. The entitlement flag is left untouched.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// SetGoogleAPIAccess changes the premium entitlement. Administrative only.
	SetGoogleAPIAccess(ctx context.Context, id uuid.UUID, access bool) error

	// List returns all users, newest first.
	List(ctx context.Context) ([]*entity.User, error)
}
