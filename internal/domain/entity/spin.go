package entity

import (
	"time"

	"github.com/google/uuid"
)

// SpinRecord is one settled spin with the candidate list exactly as presented.
type SpinRecord struct {
	ID         uuid.UUID  `json:"id"`
	OwnerID    *uuid.UUID `json:"owner_id,omitempty"` // nil for anonymous spins.
	Seed       string     `json:"seed"`
	Options    []Place    `json:"options"`
	SelectedID string     `json:"selected_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Selected returns the winning option, or nil if SelectedID is not in Options.
func (r *SpinRecord) Selected() *Place {
	for i := range r.Options {
		if r.Options[i].ID == r.SelectedID {
			return &r.Options[i]
		}
	}

	return nil
}

// Favorite is a saved place, unique per (UserID, PlaceID).
type Favorite struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	PlaceID   string        `json:"place_id"`
	Snapshot  PlaceSnapshot `json:"snapshot"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
