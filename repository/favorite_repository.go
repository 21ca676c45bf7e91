// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hye2gold/Salendar/models"
	"gorm.io/gorm"
)

// FavoriteRepositoryImpl implements FavoriteRepository interface.
// Favorites and profiles are written by the consumer app; this service
// only reads them, so there are no write methods here.
type FavoriteRepositoryImpl struct {
	DB *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &FavoriteRepositoryImpl{DB: db}
}

func (r *FavoriteRepositoryImpl) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(TxContextKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.DB
}

// ListByBrandID retrieves the favorite markers for a brand
func (r *FavoriteRepositoryImpl) ListByBrandID(ctx context.Context, brandID uint) ([]*models.UserFavorite, error) {
	db := r.getDB(ctx)

	var favorites []*models.UserFavorite
	err := db.Model(&models.UserFavorite{}).
		Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return favorites, nil
}

// DisplayNamesByUserIDs resolves display names for a set of users
func (r *FavoriteRepositoryImpl) DisplayNamesByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(userIDs))
	if len(userIDs) == 0 {
		return names, nil
	}

	db := r.getDB(ctx)

	var profiles []*models.UserProfile
	err := db.Model(&models.UserProfile{}).
		Where("user_id IN ?", userIDs).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	for _, p := range profiles {
		if p.DisplayName != nil {
			names[p.UserID] = *p.DisplayName
		}
	}

	return names, nil
}
