package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account created on first Google sign-in.
type User struct {
	ID              uuid.UUID `json:"id"`
	GoogleSubject   string    `json:"-"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	ImageURL        string    `json:"image_url,omitempty"`
	GoogleAPIAccess bool      `json:"google_api_access"` // Premium entitlement, changed only by administrators.
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Caller is the identity attached to a request. A nil *Caller means anonymous.
type Caller struct {
	UserID uuid.UUID
	Email  string
}
