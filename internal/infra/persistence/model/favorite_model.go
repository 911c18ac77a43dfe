package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FavoriteModel mirrors the 'favorites' table. (user_id, place_id) is unique.
type FavoriteModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_place,priority:1"`
	PlaceID   string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorites_user_place,priority:2"`
	Snapshot  datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
