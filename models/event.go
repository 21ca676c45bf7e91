package models

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a time-bounded brand promotion
// Table: events
// Unique by UUID; BrandID references brands.id with cascade delete
// StartDate/EndDate are canonical YYYY-MM-DD date columns (inclusive range);
// end >= start is not enforced at write time, normalization is read-side
// Category and EventType columns hold free text and are canonicalized on read
type Event struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_events_uuid" json:"uuid"`

	BrandID uint  `gorm:"not null;index:idx_events_brand_id" json:"brand_id"`
	Brand   Brand `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE" json:"brand,omitempty"`

	Title       string  `gorm:"size:512;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	StartDate string `gorm:"type:date;not null;index:idx_events_start_date" json:"start_date"`
	EndDate   string `gorm:"type:date;not null;index:idx_events_end_date" json:"end_date"`

	Category  *string `gorm:"size:64" json:"category,omitempty"`
	EventType *string `gorm:"size:64" json:"event_type,omitempty"`
	Source    *string `gorm:"size:512" json:"source,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`
}

func (Event) TableName() string { return "events" }

// EventFilter represents filter criteria for event queries
type EventFilter struct {
	ID      *uint
	UUID    *uuid.UUID
	BrandID *uint

	// Window selects events whose [StartDate, EndDate] interval overlaps
	// [WindowStart, WindowEnd]: end_date >= WindowStart AND start_date <= WindowEnd.
	WindowStart *string
	WindowEnd   *string
}
