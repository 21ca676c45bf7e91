package businessflow

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hye2gold/Salendar/app/dto"
	"github.com/hye2gold/Salendar/models"
	"github.com/hye2gold/Salendar/utils"
)

func newEventFlowFixture() (*stubBrandRepo, *stubEventRepo, AdminEventFlow, *models.Brand) {
	brand := newTestBrand(1, "올리브영", "뷰티", nil)
	brandRepo := &stubBrandRepo{brands: []*models.Brand{brand}}
	eventRepo := &stubEventRepo{}
	flow := NewAdminEventFlow(eventRepo, brandRepo, nil)
	return brandRepo, eventRepo, flow, brand
}

func TestCreateEvent(t *testing.T) {
	t.Run("creates a single-day event when end date is missing", func(t *testing.T) {
		_, eventRepo, flow, brand := newEventFlowFixture()

		result, err := flow.CreateEvent(context.Background(), &dto.CreateEventRequest{
			BrandUUID: brand.UUID.String(),
			Title:     "  여름 세일  ",
			StartDate: "2025-07-10",
		})

		require.NoError(t, err)
		assert.Equal(t, "여름 세일", result.Title, "title is trimmed")
		assert.Equal(t, "2025-07-10", result.StartDate)
		assert.Equal(t, "2025-07-10", result.EndDate)
		assert.Equal(t, brand.UUID.String(), result.BrandUUID)
		assert.Equal(t, "올리브영", result.BrandName)
		assert.Len(t, eventRepo.events, 1)
	})

	t.Run("timestamp dates are coerced to calendar dates", func(t *testing.T) {
		_, _, flow, brand := newEventFlowFixture()

		result, err := flow.CreateEvent(context.Background(), &dto.CreateEventRequest{
			BrandUUID: brand.UUID.String(),
			Title:     "세일",
			StartDate: "2025-07-10T00:00:00Z",
			EndDate:   utils.ToPtr("2025-07-12T23:59:59Z"),
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-07-10", result.StartDate)
		assert.Equal(t, "2025-07-12", result.EndDate)
	})

	t.Run("category and type are canonicalized in the response", func(t *testing.T) {
		_, _, flow, brand := newEventFlowFixture()

		result, err := flow.CreateEvent(context.Background(), &dto.CreateEventRequest{
			BrandUUID: brand.UUID.String(),
			Title:     "세일",
			StartDate: "2025-07-10",
			EventType: utils.ToPtr("타임 딜 안내"),
		})

		require.NoError(t, err)
		assert.Equal(t, "뷰티", result.Category, "missing row category falls back to the brand")
		assert.Equal(t, "타임딜", result.EventType)
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		_, _, flow, brand := newEventFlowFixture()

		_, err := flow.CreateEvent(context.Background(), &dto.CreateEventRequest{
			BrandUUID: brand.UUID.String(),
			Title:     "   ",
			StartDate: "2025-07-10",
		})

		assert.ErrorIs(t, err, ErrEventTitleRequired)
	})

	t.Run("unknown brand is rejected", func(t *testing.T) {
		_, _, flow, _ := newEventFlowFixture()

		_, err := flow.CreateEvent(context.Background(), &dto.CreateEventRequest{
			BrandUUID: uuid.New().String(),
			Title:     "세일",
			StartDate: "2025-07-10",
		})

		assert.ErrorIs(t, err, ErrBrandNotFound)
	})

	t.Run("invalid start date is rejected", func(t *testing.T) {
		_, _, flow, brand := newEventFlowFixture()

		_, err := flow.CreateEvent(context.Background(), &dto.CreateEventRequest{
			BrandUUID: brand.UUID.String(),
			Title:     "세일",
			StartDate: "2025/07/10",
		})

		assert.ErrorIs(t, err, ErrEventDateInvalid)
	})
}

func TestUpdateEvent(t *testing.T) {
	setup := func(t *testing.T) (AdminEventFlow, *dto.AdminEventDTO) {
		t.Helper()
		_, _, flow, brand := newEventFlowFixture()
		created, err := flow.CreateEvent(context.Background(), &dto.CreateEventRequest{
			BrandUUID: brand.UUID.String(),
			Title:     "여름 세일",
			StartDate: "2025-07-10",
			EndDate:   utils.ToPtr("2025-07-12"),
		})
		require.NoError(t, err)
		return flow, created
	}

	t.Run("rewrites the schedule and patches the optional fields", func(t *testing.T) {
		flow, created := setup(t)

		result, err := flow.UpdateEvent(context.Background(), created.UUID, &dto.UpdateEventRequest{
			Title:       "연장 세일",
			StartDate:   "2025-07-10",
			EndDate:     utils.ToPtr("2025-07-20"),
			Description: utils.ToPtr("기간 연장"),
		})

		require.NoError(t, err)
		assert.Equal(t, "연장 세일", result.Title)
		assert.Equal(t, "2025-07-10", result.StartDate)
		assert.Equal(t, "2025-07-20", result.EndDate)
		assert.Equal(t, "기간 연장", result.Description)
	})

	t.Run("update without a title is rejected", func(t *testing.T) {
		flow, created := setup(t)

		_, err := flow.UpdateEvent(context.Background(), created.UUID, &dto.UpdateEventRequest{
			StartDate:   "2025-07-10",
			Description: utils.ToPtr("설명만 보낸 요청"),
		})

		assert.ErrorIs(t, err, ErrEventTitleRequired)
	})

	t.Run("update without a start date is rejected", func(t *testing.T) {
		flow, created := setup(t)

		_, err := flow.UpdateEvent(context.Background(), created.UUID, &dto.UpdateEventRequest{
			Title:       "연장 세일",
			Description: utils.ToPtr("설명만 보낸 요청"),
		})

		assert.ErrorIs(t, err, ErrEventDateInvalid)
	})

	t.Run("omitted end date resets the event to single-day", func(t *testing.T) {
		flow, created := setup(t)
		require.Equal(t, "2025-07-12", created.EndDate)

		result, err := flow.UpdateEvent(context.Background(), created.UUID, &dto.UpdateEventRequest{
			Title:     "여름 세일",
			StartDate: "2025-07-11",
		})

		require.NoError(t, err)
		assert.Equal(t, "2025-07-11", result.StartDate)
		assert.Equal(t, "2025-07-11", result.EndDate, "end date follows the new start date")
	})

	t.Run("invalid end date is rejected", func(t *testing.T) {
		flow, created := setup(t)

		_, err := flow.UpdateEvent(context.Background(), created.UUID, &dto.UpdateEventRequest{
			Title:     "세일",
			StartDate: "2025-07-10",
			EndDate:   utils.ToPtr("next week"),
		})

		assert.ErrorIs(t, err, ErrEventDateInvalid)
	})

	t.Run("unknown event yields not found", func(t *testing.T) {
		flow, _ := setup(t)

		_, err := flow.UpdateEvent(context.Background(), uuid.New().String(), &dto.UpdateEventRequest{
			Title:     "x",
			StartDate: "2025-07-10",
		})

		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestDeleteEvent(t *testing.T) {
	_, eventRepo, flow, brand := newEventFlowFixture()

	created, err := flow.CreateEvent(context.Background(), &dto.CreateEventRequest{
		BrandUUID: brand.UUID.String(),
		Title:     "세일",
		StartDate: "2025-07-10",
	})
	require.NoError(t, err)
	require.Len(t, eventRepo.events, 1)

	require.NoError(t, flow.DeleteEvent(context.Background(), created.UUID))
	assert.Empty(t, eventRepo.events)

	err = flow.DeleteEvent(context.Background(), created.UUID)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestExportEventsExcel(t *testing.T) {
	_, _, flow, brand := newEventFlowFixture()

	_, err := flow.CreateEvent(context.Background(), &dto.CreateEventRequest{
		BrandUUID: brand.UUID.String(),
		Title:     "여름 세일",
		StartDate: "2025-07-10",
		EndDate:   utils.ToPtr("2025-07-12"),
	})
	require.NoError(t, err)

	filename, data, err := flow.ExportEventsExcel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "events.xlsx", filename)
	require.NotEmpty(t, data)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("events")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus one data row")

	assert.Equal(t, []string{"id", "uuid", "brand", "title", "description", "start_date", "end_date", "category", "event_type", "source"}, rows[0])
	assert.Equal(t, "올리브영", rows[1][2])
	assert.Equal(t, "여름 세일", rows[1][3])
}
