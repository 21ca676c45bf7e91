// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"

	"github.com/hye2gold/Salendar/models"
	"github.com/hye2gold/Salendar/utils"
	"gorm.io/gorm"
)

// BrandRepositoryImpl implements BrandRepository interface
type BrandRepositoryImpl struct {
	*BaseRepository[models.Brand, models.BrandFilter]
}

// NewBrandRepository creates a new brand repository
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &BrandRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Brand, models.BrandFilter](db),
	}
}

// ByUUID retrieves a brand by UUID
func (r *BrandRepositoryImpl) ByUUID(ctx context.Context, uuidStr string) (*models.Brand, error) {
	parsedUUID, err := utils.ParseUUID(uuidStr)
	if err != nil {
		return nil, err
	}

	filter := models.BrandFilter{UUID: &parsedUUID}
	brands, err := r.ByFilter(ctx, filter, "", 1, 0)
	if err != nil {
		return nil, err
	}

	if len(brands) == 0 {
		return nil, nil
	}

	return brands[0], nil
}

// ListAll retrieves every brand, name-sorted, for the admin console
func (r *BrandRepositoryImpl) ListAll(ctx context.Context) ([]*models.Brand, error) {
	return r.ByFilter(ctx, models.BrandFilter{}, "name ASC", 0, 0)
}

// ListActive retrieves active brands, name-sorted, for the public directory
func (r *BrandRepositoryImpl) ListActive(ctx context.Context) ([]*models.Brand, error) {
	filter := models.BrandFilter{IsActive: utils.ToPtr(true)}
	return r.ByFilter(ctx, filter, "name ASC", 0, 0)
}

// applyFilter applies filter criteria to a GORM query
func (r *BrandRepositoryImpl) applyFilter(query *gorm.DB, filter models.BrandFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	return query
}

// ByFilter retrieves brands based on filter criteria
func (r *BrandRepositoryImpl) ByFilter(ctx context.Context, filter models.BrandFilter, orderBy string, limit, offset int) ([]*models.Brand, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Brand{})

	query = r.applyFilter(query, filter)

	// Apply ordering (default to id DESC)
	if orderBy == "" {
		orderBy = "id DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var brands []*models.Brand
	if err := query.Find(&brands).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return brands, nil
}

// Update updates a brand
func (r *BrandRepositoryImpl) Update(ctx context.Context, brand models.Brand) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	brand.UpdatedAt = utils.UTCNow()

	err = db.Save(&brand).Error
	if err != nil {
		return err
	}

	return nil
}

// Delete removes a brand row. Child events are removed by the caller inside
// the same transaction; see BrandAdminFlow.DeleteBrand.
func (r *BrandRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Delete(&models.Brand{}, id).Error
	if err != nil {
		return err
	}

	return nil
}
