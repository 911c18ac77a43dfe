package model

import (
	"time"

	"gorm.io/datatypes"
)

// CacheEntryModel mirrors the 'places_cache' table.
type CacheEntryModel struct {
	Key       string         `gorm:"type:text;primaryKey"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	ExpiresAt time.Time      `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CacheEntryModel) TableName() string {
	return "places_cache"
}
