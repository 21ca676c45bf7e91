// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/hye2gold/Salendar/app/dto"
	"github.com/hye2gold/Salendar/models"
	"github.com/hye2gold/Salendar/utils"
)

const RequestIDKey = "X-Request-ID"

// ToBrandDTO converts a brand model to its public representation
func ToBrandDTO(brand models.Brand) dto.BrandDTO {
	return dto.BrandDTO{
		ID:          brand.ID,
		UUID:        brand.UUID.String(),
		Name:        brand.Name,
		Category:    brand.Category,
		LogoURL:     brand.LogoURL,
		OfficialURL: brand.OfficialURL,
		IsActive:    utils.IsTrue(brand.IsActive),
		CreatedAt:   brand.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   brand.UpdatedAt.Format(time.RFC3339),
	}
}

// ToAdminEventDTO converts an event model to its admin representation.
// Category and event type are canonicalized the same way the public feed
// renders them, so the dashboard never shows raw scraper values.
func ToAdminEventDTO(event models.Event, brand models.Brand) dto.AdminEventDTO {
	return dto.AdminEventDTO{
		ID:          event.ID,
		UUID:        event.UUID.String(),
		BrandID:     brand.ID,
		BrandUUID:   brand.UUID.String(),
		BrandName:   brand.Name,
		Title:       event.Title,
		Description: event.Description,
		StartDate:   event.StartDate,
		EndDate:     event.EndDate,
		Category:    models.ResolveCategory(utils.Deref(event.Category), brand.Category).String(),
		EventType:   models.NormalizeEventType(utils.Deref(event.EventType)).String(),
		Source:      event.Source,
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   event.UpdatedAt.Format(time.RFC3339),
	}
}
