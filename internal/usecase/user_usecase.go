package usecase

import (
	"context"
	"time"

	"justchoose/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// GoogleLoginInput carries the ID token obtained by Google Sign-In on the client.
type GoogleLoginInput struct {
	IDToken string
}

// SetAccessInput changes the premium entitlement of a user.
type SetAccessInput struct {
	UserID          uuid.UUID
	GoogleAPIAccess bool
}

// --- Output DTOs ---

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *entity.User
	IsAdmin     bool
}

// AccessOutput describes what the current user may use.
type AccessOutput struct {
	GoogleAPIAccess bool
	IsAdmin         bool
}

// UserUsecase handles sign-in and entitlements.
type UserUsecase interface {
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*LoginOutput, error)
	GetAccess(ctx context.Context, caller *entity.Caller) (*AccessOutput, error)
	ListUsers(ctx context.Context, caller *entity.Caller) ([]*entity.User, error)
	SetAccess(ctx context.Context, caller *entity.Caller, input *SetAccessInput) error
}
