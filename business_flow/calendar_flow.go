package businessflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hye2gold/Salendar/app/dto"
	"github.com/hye2gold/Salendar/calendar"
	"github.com/hye2gold/Salendar/models"
	"github.com/hye2gold/Salendar/repository"
	"github.com/hye2gold/Salendar/utils"
	"github.com/redis/go-redis/v9"
)

// fallbackBrandName is shown when an event's brand row is gone
const fallbackBrandName = "브랜드"

// EventCache is a thin Redis wrapper around the month-window feed.
// A nil client degrades every operation to a no-op so the DB path
// keeps serving when Redis is absent.
type EventCache struct {
	rc  *redis.Client
	ttl time.Duration
}

func NewEventCache(rc *redis.Client, ttl time.Duration) *EventCache {
	if ttl <= 0 {
		ttl = utils.EventsCacheTTL
	}
	return &EventCache{rc: rc, ttl: ttl}
}

func monthCacheKey(year, month int) string {
	return fmt.Sprintf("%s%d-%d", utils.EventsCacheKeyPrefix, year, month)
}

func (c *EventCache) Get(ctx context.Context, year, month int) (*dto.EventsResponse, bool) {
	if c == nil || c.rc == nil {
		return nil, false
	}
	bs, err := c.rc.Get(ctx, monthCacheKey(year, month)).Bytes()
	if err != nil || len(bs) == 0 {
		return nil, false
	}
	var resp dto.EventsResponse
	if err := json.Unmarshal(bs, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *EventCache) Set(ctx context.Context, year, month int, resp *dto.EventsResponse) {
	if c == nil || c.rc == nil || resp == nil {
		return
	}
	bs, err := json.Marshal(resp)
	if err != nil {
		return
	}
	_ = c.rc.Set(ctx, monthCacheKey(year, month), bs, c.ttl).Err()
}

// Invalidate drops every cached month window. Admin writes call this;
// the key space is tiny (one entry per queried month) so a scan is fine.
func (c *EventCache) Invalidate(ctx context.Context) {
	if c == nil || c.rc == nil {
		return
	}
	iter := c.rc.Scan(ctx, 0, utils.EventsCacheKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rc.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("event cache: failed to delete key %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("event cache: scan failed: %v", err)
	}
}

// CalendarFlow serves the public month-windowed event feed
type CalendarFlow interface {
	MonthEvents(ctx context.Context, year, month int) (*dto.EventsResponse, error)
}

type CalendarFlowImpl struct {
	eventRepo repository.EventRepository
	brandRepo repository.BrandRepository
	cache     *EventCache
}

func NewCalendarFlow(
	eventRepo repository.EventRepository,
	brandRepo repository.BrandRepository,
	cache *EventCache,
) CalendarFlow {
	return &CalendarFlowImpl{
		eventRepo: eventRepo,
		brandRepo: brandRepo,
		cache:     cache,
	}
}

// MonthEvents returns every event overlapping the requested month, each row
// normalized for display: category falls back from row to brand to 기타,
// raw event-type strings collapse to the canonical set, and unparseable
// dates are substituted with the window bound on their side.
func (f *CalendarFlowImpl) MonthEvents(ctx context.Context, year, month int) (*dto.EventsResponse, error) {
	if year < 2000 || year > 2100 {
		return nil, NewBusinessError("VALIDATION_ERROR", "year is out of range", ErrYearOutOfRange)
	}
	if month < 1 || month > 12 {
		return nil, NewBusinessError("VALIDATION_ERROR", "month must be between 1 and 12", ErrMonthOutOfRange)
	}

	if cached, ok := f.cache.Get(ctx, year, month); ok {
		return cached, nil
	}

	window := calendar.MonthBounds(year, month)

	brands, err := f.brandRepo.ListAll(ctx)
	if err != nil {
		return nil, NewBusinessError("FETCH_BRANDS_FAILED", "Failed to fetch brands", err)
	}

	brandByID := make(map[uint]*models.Brand, len(brands))
	brandLogos := make(map[string]string)
	for _, b := range brands {
		brandByID[b.ID] = b
		if b.LogoURL != nil && *b.LogoURL != "" {
			brandLogos[b.Name] = *b.LogoURL
		}
	}

	rows, err := f.eventRepo.ListOverlappingWindow(ctx, window.Start, window.End)
	if err != nil {
		return nil, NewBusinessError("FETCH_EVENTS_FAILED", "Failed to fetch events", err)
	}

	events := make([]dto.PromotionEventDTO, 0, len(rows))
	for _, row := range rows {
		events = append(events, normalizeEventRow(row, brandByID[row.BrandID], window))
	}

	resp := &dto.EventsResponse{
		Events:     events,
		BrandLogos: brandLogos,
		Sources:    []string{},
	}

	f.cache.Set(ctx, year, month, resp)

	return resp, nil
}

func normalizeEventRow(row *models.Event, brand *models.Brand, window calendar.Window) dto.PromotionEventDTO {
	brandName := fallbackBrandName
	brandCategory := ""
	if brand != nil {
		brandName = brand.Name
		brandCategory = brand.Category
	}

	title := row.Title
	if title == "" {
		title = "Event"
	}

	startDate := calendar.ToDateString(row.StartDate)
	if startDate == "" {
		startDate = window.Start
	}
	endDate := calendar.ToDateString(row.EndDate)
	if endDate == "" {
		endDate = window.End
	}

	return dto.PromotionEventDTO{
		ID:          row.UUID.String(),
		Brand:       brandName,
		Title:       title,
		Description: utils.Deref(row.Description),
		StartDate:   startDate,
		EndDate:     endDate,
		Category:    models.ResolveCategory(utils.Deref(row.Category), brandCategory).String(),
		Type:        models.NormalizeEventType(utils.Deref(row.EventType)).String(),
	}
}
