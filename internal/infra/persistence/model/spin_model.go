package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SpinModel mirrors the 'spins' table. Options hold the candidate list as presented, in order.
type SpinModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OwnerID    *uuid.UUID     `gorm:"type:uuid;index:idx_spins_owner_created,priority:1"`
	Seed       string         `gorm:"type:varchar(32);not null"`
	Options    datatypes.JSON `gorm:"type:jsonb;not null"`
	SelectedID string         `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time      `gorm:"not null;index:idx_spins_owner_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (SpinModel) TableName() string {
	return "spins"
}
