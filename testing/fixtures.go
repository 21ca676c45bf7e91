// Package testing provides test utilities and database setup for testing the calendar service
package testing

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/hye2gold/Salendar/models"
	"github.com/hye2gold/Salendar/utils"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestBrand creates an active brand with a unique name in the given category
func (tf *TestFixtures) CreateTestBrand(category models.Category) (*models.Brand, error) {
	name := fmt.Sprintf("Brand %06d", rand.Intn(900000)+100000)
	logoURL := fmt.Sprintf("https://cdn.example.com/logos/%s.png", uuid.NewString())

	brand := &models.Brand{
		UUID:        uuid.New(),
		Name:        name,
		Category:    category.String(),
		LogoURL:     &logoURL,
		OfficialURL: utils.ToPtr("https://example.com"),
		IsActive:    utils.ToPtr(true),
		CreatedAt:   utils.UTCNow(),
		UpdatedAt:   utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(brand).Error; err != nil {
		return nil, fmt.Errorf("failed to create test brand: %w", err)
	}

	return brand, nil
}

// CreateTestEvent creates an event for the given brand spanning [startDate, endDate]
func (tf *TestFixtures) CreateTestEvent(brand *models.Brand, startDate, endDate string) (*models.Event, error) {
	event := &models.Event{
		UUID:      uuid.New(),
		BrandID:   brand.ID,
		Title:     fmt.Sprintf("%s 할인 행사", brand.Name),
		StartDate: startDate,
		EndDate:   endDate,
		EventType: utils.ToPtr(models.EventTypeDiscount.String()),
		CreatedAt: utils.UTCNow(),
		UpdatedAt: utils.UTCNow(),
	}

	if err := tf.DB.DB.Create(event).Error; err != nil {
		return nil, fmt.Errorf("failed to create test event: %w", err)
	}

	return event, nil
}

// CreateTestFavorite marks a brand as favorited by a fresh user with a profile row
func (tf *TestFixtures) CreateTestFavorite(brand *models.Brand, displayName string) (*models.UserFavorite, error) {
	userID := uuid.New()

	profile := &models.UserProfile{
		UserID:      userID,
		DisplayName: &displayName,
		CreatedAt:   utils.UTCNow(),
	}
	if err := tf.DB.DB.Create(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create test profile: %w", err)
	}

	favorite := &models.UserFavorite{
		UserID:    userID,
		BrandID:   brand.ID,
		CreatedAt: utils.UTCNow(),
	}
	if err := tf.DB.DB.Create(favorite).Error; err != nil {
		return nil, fmt.Errorf("failed to create test favorite: %w", err)
	}

	return favorite, nil
}
