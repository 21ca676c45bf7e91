package models

import (
	"time"

	"github.com/google/uuid"
)

// UserFavorite marks a user's favorite brand. Rows are written by the
// consumer app; this service only reads them for admin presentation.
// Table: user_favorites
type UserFavorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_favorites_user_id" json:"user_id"`
	BrandID   uint      `gorm:"not null;index:idx_user_favorites_brand_id" json:"brand_id"`
	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
}

func (UserFavorite) TableName() string { return "user_favorites" }

// UserFavoriteFilter represents filter criteria for favorite queries
type UserFavoriteFilter struct {
	UserID  *uuid.UUID
	BrandID *uint
}

// UserProfile carries the display name shown next to a favorite marker.
// Read-only from this service's perspective.
// Table: user_profiles
type UserProfile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_user_profiles_user_id" json:"user_id"`
	DisplayName *string   `gorm:"size:255" json:"display_name,omitempty"`
	CreatedAt   time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }

// UserProfileFilter represents filter criteria for profile queries
type UserProfileFilter struct {
	UserID  *uuid.UUID
	UserIDs []uuid.UUID
}
