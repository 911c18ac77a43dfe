package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs default to gen_random_uuid() when not assigned by the application.
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GoogleSubject   string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email           string    `gorm:"type:varchar(255);not null"`
	Name            string    `gorm:"type:varchar(255)"`
	ImageURL        string    `gorm:"type:text"`
	GoogleAPIAccess bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
