// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hye2gold/Salendar/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
}

// BrandRepository defines operations for brands
type BrandRepository interface {
	Repository[models.Brand, models.BrandFilter]
	ByUUID(ctx context.Context, uuid string) (*models.Brand, error)
	ListAll(ctx context.Context) ([]*models.Brand, error)
	ListActive(ctx context.Context) ([]*models.Brand, error)
	Update(ctx context.Context, brand models.Brand) error
	Delete(ctx context.Context, id uint) error
}

// EventRepository defines operations for events
type EventRepository interface {
	Repository[models.Event, models.EventFilter]
	ByUUID(ctx context.Context, uuid string) (*models.Event, error)
	ListByBrandID(ctx context.Context, brandID uint) ([]*models.Event, error)
	ListOverlappingWindow(ctx context.Context, windowStart, windowEnd string) ([]*models.Event, error)
	Update(ctx context.Context, event models.Event) error
	Delete(ctx context.Context, id uint) error
	DeleteByBrandID(ctx context.Context, brandID uint) error
}

// FavoriteRepository defines read-only operations for user favorites and the
// display-name lookup joined for admin presentation
type FavoriteRepository interface {
	ListByBrandID(ctx context.Context, brandID uint) ([]*models.UserFavorite, error)
	DisplayNamesByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error)
}
