package businessflow

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hye2gold/Salendar/app/dto"
	"github.com/hye2gold/Salendar/calendar"
	"github.com/hye2gold/Salendar/models"
	"github.com/hye2gold/Salendar/repository"
	"github.com/hye2gold/Salendar/utils"
	"github.com/xuri/excelize/v2"
)

// AdminEventFlow covers the dashboard's event management operations
type AdminEventFlow interface {
	ListEvents(ctx context.Context) (*dto.AdminEventListResponse, error)
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.AdminEventDTO, error)
	UpdateEvent(ctx context.Context, eventUUID string, req *dto.UpdateEventRequest) (*dto.AdminEventDTO, error)
	DeleteEvent(ctx context.Context, eventUUID string) error
	ExportEventsExcel(ctx context.Context) (string, []byte, error)
}

type AdminEventFlowImpl struct {
	eventRepo repository.EventRepository
	brandRepo repository.BrandRepository
	cache     *EventCache
}

func NewAdminEventFlow(
	eventRepo repository.EventRepository,
	brandRepo repository.BrandRepository,
	cache *EventCache,
) AdminEventFlow {
	return &AdminEventFlowImpl{
		eventRepo: eventRepo,
		brandRepo: brandRepo,
		cache:     cache,
	}
}

func (f *AdminEventFlowImpl) ListEvents(ctx context.Context) (*dto.AdminEventListResponse, error) {
	events, err := f.eventRepo.ByFilter(ctx, models.EventFilter{}, "start_date ASC, id ASC", 0, 0)
	if err != nil {
		return nil, NewBusinessError("FETCH_EVENTS_FAILED", "Failed to fetch events", err)
	}

	brandByID, err := f.brandMap(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AdminEventDTO, 0, len(events))
	for _, e := range events {
		brand := brandForEvent(brandByID, e.BrandID)
		items = append(items, ToAdminEventDTO(*e, brand))
	}

	return &dto.AdminEventListResponse{Events: items, Total: len(items)}, nil
}

func (f *AdminEventFlowImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.AdminEventDTO, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, NewBusinessError("VALIDATION_ERROR", "event title is required", ErrEventTitleRequired)
	}

	brand, err := f.brandRepo.ByUUID(ctx, req.BrandUUID)
	if err != nil {
		return nil, NewBusinessError("FETCH_BRANDS_FAILED", "Failed to fetch brand", err)
	}
	if brand == nil {
		return nil, NewBusinessErrorf("BRAND_NOT_FOUND", "brand %s not found", ErrBrandNotFound, req.BrandUUID)
	}

	startDate := calendar.ToDateString(req.StartDate)
	if startDate == "" {
		return nil, NewBusinessErrorf("VALIDATION_ERROR", "start date %q is invalid", ErrEventDateInvalid, req.StartDate)
	}

	// A missing end date makes the event single-day
	endDate := startDate
	if req.EndDate != nil && strings.TrimSpace(*req.EndDate) != "" {
		endDate = calendar.ToDateString(*req.EndDate)
		if endDate == "" {
			return nil, NewBusinessErrorf("VALIDATION_ERROR", "end date %q is invalid", ErrEventDateInvalid, *req.EndDate)
		}
	}

	event := &models.Event{
		UUID:        uuid.New(),
		BrandID:     brand.ID,
		Title:       title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Category:    req.Category,
		EventType:   req.EventType,
		Source:      req.Source,
		CreatedAt:   utils.UTCNow(),
		UpdatedAt:   utils.UTCNow(),
	}

	if err := f.eventRepo.Save(ctx, event); err != nil {
		return nil, NewBusinessError("CREATE_EVENT_FAILED", "Failed to create event", err)
	}

	f.cache.Invalidate(ctx)

	result := ToAdminEventDTO(*event, *brand)
	return &result, nil
}

func (f *AdminEventFlowImpl) UpdateEvent(ctx context.Context, eventUUID string, req *dto.UpdateEventRequest) (*dto.AdminEventDTO, error) {
	event, err := f.findEvent(ctx, eventUUID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, NewBusinessError("VALIDATION_ERROR", "event title is required", ErrEventTitleRequired)
	}
	event.Title = title

	startDate := calendar.ToDateString(req.StartDate)
	if startDate == "" {
		return nil, NewBusinessErrorf("VALIDATION_ERROR", "start date %q is invalid", ErrEventDateInvalid, req.StartDate)
	}
	event.StartDate = startDate

	// An omitted end date resets the event to single-day
	endDate := startDate
	if req.EndDate != nil && strings.TrimSpace(*req.EndDate) != "" {
		endDate = calendar.ToDateString(*req.EndDate)
		if endDate == "" {
			return nil, NewBusinessErrorf("VALIDATION_ERROR", "end date %q is invalid", ErrEventDateInvalid, *req.EndDate)
		}
	}
	event.EndDate = endDate

	if req.BrandUUID != nil {
		brand, err := f.brandRepo.ByUUID(ctx, *req.BrandUUID)
		if err != nil {
			return nil, NewBusinessError("FETCH_BRANDS_FAILED", "Failed to fetch brand", err)
		}
		if brand == nil {
			return nil, NewBusinessErrorf("BRAND_NOT_FOUND", "brand %s not found", ErrBrandNotFound, *req.BrandUUID)
		}
		event.BrandID = brand.ID
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.Category != nil {
		event.Category = req.Category
	}
	if req.EventType != nil {
		event.EventType = req.EventType
	}
	if req.Source != nil {
		event.Source = req.Source
	}

	if err := f.eventRepo.Update(ctx, *event); err != nil {
		return nil, NewBusinessError("UPDATE_EVENT_FAILED", "Failed to update event", err)
	}

	f.cache.Invalidate(ctx)

	brand, err := f.brandRepo.ByID(ctx, event.BrandID)
	if err != nil || brand == nil {
		brand = &models.Brand{}
	}
	result := ToAdminEventDTO(*event, *brand)
	return &result, nil
}

func (f *AdminEventFlowImpl) DeleteEvent(ctx context.Context, eventUUID string) error {
	event, err := f.findEvent(ctx, eventUUID)
	if err != nil {
		return err
	}

	if err := f.eventRepo.Delete(ctx, event.ID); err != nil {
		return NewBusinessError("DELETE_EVENT_FAILED", "Failed to delete event", err)
	}

	f.cache.Invalidate(ctx)

	return nil
}

// ExportEventsExcel builds a single-sheet workbook with one row per event
func (f *AdminEventFlowImpl) ExportEventsExcel(ctx context.Context) (string, []byte, error) {
	events, err := f.eventRepo.ByFilter(ctx, models.EventFilter{}, "start_date ASC, id ASC", 0, 0)
	if err != nil {
		return "", nil, NewBusinessError("FETCH_EVENTS_FAILED", "Failed to fetch events", err)
	}

	brandByID, err := f.brandMap(ctx)
	if err != nil {
		return "", nil, err
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "events"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{"id", "uuid", "brand", "title", "description", "start_date", "end_date", "category", "event_type", "source"}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	for ri, e := range events {
		brand := brandForEvent(brandByID, e.BrandID)
		record := []string{
			strconv.FormatUint(uint64(e.ID), 10),
			e.UUID.String(),
			brand.Name,
			e.Title,
			utils.Deref(e.Description),
			e.StartDate,
			e.EndDate,
			models.ResolveCategory(utils.Deref(e.Category), brand.Category).String(),
			models.NormalizeEventType(utils.Deref(e.EventType)).String(),
			utils.Deref(e.Source),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(sheet, cellRef, &record)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}
	return "events.xlsx", buf.Bytes(), nil
}

func (f *AdminEventFlowImpl) findEvent(ctx context.Context, eventUUID string) (*models.Event, error) {
	if strings.TrimSpace(eventUUID) == "" {
		return nil, NewBusinessError("VALIDATION_ERROR", "event UUID is required", ErrEventUUIDRequired)
	}
	event, err := f.eventRepo.ByUUID(ctx, eventUUID)
	if err != nil {
		return nil, NewBusinessError("FETCH_EVENTS_FAILED", "Failed to fetch event", err)
	}
	if event == nil {
		return nil, NewBusinessErrorf("EVENT_NOT_FOUND", "event %s not found", ErrEventNotFound, eventUUID)
	}
	return event, nil
}

func (f *AdminEventFlowImpl) brandMap(ctx context.Context) (map[uint]*models.Brand, error) {
	brands, err := f.brandRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("FETCH_BRANDS_FAILED", "Failed to fetch brands", err)
	}
	brandByID := make(map[uint]*models.Brand, len(brands))
	for _, b := range brands {
		brandByID[b.ID] = b
	}
	return brandByID, nil
}

func brandForEvent(brandByID map[uint]*models.Brand, brandID uint) models.Brand {
	if b, ok := brandByID[brandID]; ok && b != nil {
		return *b
	}
	return models.Brand{Name: fallbackBrandName}
}
