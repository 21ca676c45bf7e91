package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand represents a promoted brand shown in the public directory
// Table: brands
// Unique by UUID and by Name (display string)
// Category stores one of the six storable Category values
// Timestamps default to UTC at DB level
type Brand struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_brands_uuid" json:"uuid"`

	Name        string  `gorm:"size:255;not null;uniqueIndex:uk_brands_name" json:"name"`
	Category    string  `gorm:"size:32;not null;index:idx_brands_category" json:"category"`
	LogoURL     *string `gorm:"size:1024" json:"logo_url,omitempty"`
	OfficialURL *string `gorm:"size:1024" json:"official_url,omitempty"`

	IsActive  *bool     `gorm:"default:true;index:idx_brands_is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (Brand) TableName() string { return "brands" }

// BrandFilter represents filter criteria for brand queries
type BrandFilter struct {
	ID       *uint
	UUID     *uuid.UUID
	Name     *string
	Category *string
	IsActive *bool
}
