// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"

	"github.com/hye2gold/Salendar/models"
	"github.com/hye2gold/Salendar/utils"
	"gorm.io/gorm"
)

// EventRepositoryImpl implements EventRepository interface
type EventRepositoryImpl struct {
	*BaseRepository[models.Event, models.EventFilter]
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &EventRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Event, models.EventFilter](db),
	}
}

// ByUUID retrieves an event by UUID
func (r *EventRepositoryImpl) ByUUID(ctx context.Context, uuidStr string) (*models.Event, error) {
	parsedUUID, err := utils.ParseUUID(uuidStr)
	if err != nil {
		return nil, err
	}

	filter := models.EventFilter{UUID: &parsedUUID}
	events, err := r.ByFilter(ctx, filter, "", 1, 0)
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, nil
	}

	return events[0], nil
}

// ListByBrandID retrieves a brand's events sorted by start date
func (r *EventRepositoryImpl) ListByBrandID(ctx context.Context, brandID uint) ([]*models.Event, error) {
	filter := models.EventFilter{BrandID: &brandID}
	return r.ByFilter(ctx, filter, "start_date ASC", 0, 0)
}

// ListOverlappingWindow retrieves every event whose [start_date, end_date]
// interval intersects the window: overlap, not containment, so multi-day
// events that merely touch the month are included.
func (r *EventRepositoryImpl) ListOverlappingWindow(ctx context.Context, windowStart, windowEnd string) ([]*models.Event, error) {
	filter := models.EventFilter{WindowStart: &windowStart, WindowEnd: &windowEnd}
	return r.ByFilter(ctx, filter, "start_date ASC", 0, 0)
}

// applyFilter applies filter criteria to a GORM query
func (r *EventRepositoryImpl) applyFilter(query *gorm.DB, filter models.EventFilter) *gorm.DB {
	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		query = query.Where("uuid = ?", *filter.UUID)
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.WindowStart != nil {
		query = query.Where("end_date >= ?", *filter.WindowStart)
	}
	if filter.WindowEnd != nil {
		query = query.Where("start_date <= ?", *filter.WindowEnd)
	}
	return query
}

// ByFilter retrieves events based on filter criteria
func (r *EventRepositoryImpl) ByFilter(ctx context.Context, filter models.EventFilter, orderBy string, limit, offset int) ([]*models.Event, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Event{})

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

	var events []*models.Event
	if err := query.Find(&events).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return events, nil
}

// Update updates an event
func (r *EventRepositoryImpl) Update(ctx context.Context, event models.Event) error {
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

	event.UpdatedAt = utils.UTCNow()

	err = db.Save(&event).Error
	if err != nil {
		return err
	}

	return nil
}

// Delete removes an event
func (r *EventRepositoryImpl) Delete(ctx context.Context, id uint) error {
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

	err = db.Delete(&models.Event{}, id).Error
	if err != nil {
		return err
	}

	return nil
}

// DeleteByBrandID removes every event owned by a brand
func (r *EventRepositoryImpl) DeleteByBrandID(ctx context.Context, brandID uint) error {
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

	err = db.Where("brand_id = ?", brandID).Delete(&models.Event{}).Error
	if err != nil {
		return err
	}

	return nil
}
