package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventColumns() []string {
	return []string{"id", "uuid", "brand_id", "title", "description", "start_date", "end_date", "category", "event_type", "source", "created_at", "updated_at"}
}

func eventRow(id, brandID int64, title, start, end string) []driver.Value {
	now := time.Now().UTC()
	return []driver.Value{id, uuid.New().String(), brandID, title, nil, start, end, nil, nil, nil, now, now}
}

func TestEventRepository_ListOverlappingWindow(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewEventRepository(gormDB)

	rows := sqlmock.NewRows(eventColumns()).
		AddRow(eventRow(1, 1, "여름 세일", "2025-06-28", "2025-07-02")...).
		AddRow(eventRow(2, 2, "7월 증정 행사", "2025-07-10", "2025-07-12")...)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE end_date >= \$1 AND start_date <= \$2 ORDER BY start_date ASC`).
		WithArgs("2025-07-01", "2025-07-31").
		WillReturnRows(rows)

	events, err := repo.ListOverlappingWindow(context.Background(), "2025-07-01", "2025-07-31")

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "여름 세일", events[0].Title, "events touching the window from outside are included")
	assert.Equal(t, "2025-06-28", events[0].StartDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListByBrandID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewEventRepository(gormDB)

	rows := sqlmock.NewRows(eventColumns()).
		AddRow(eventRow(3, 7, "상반기 행사", "2025-03-01", "2025-03-10")...).
		AddRow(eventRow(4, 7, "하반기 행사", "2025-09-01", "2025-09-10")...)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE brand_id = \$1 ORDER BY start_date ASC`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	events, err := repo.ListByBrandID(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].StartDate <= events[1].StartDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ByUUID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewEventRepository(gormDB)

	missing := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE uuid = \$1 ORDER BY id DESC LIMIT \$2`).
		WithArgs(missing, 1).
		WillReturnRows(sqlmock.NewRows(eventColumns()))

	event, err := repo.ByUUID(context.Background(), missing.String())

	require.NoError(t, err)
	assert.Nil(t, event)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewEventRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events" WHERE "events"\."id" = \$1`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_DeleteByBrandID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewEventRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events" WHERE brand_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	err := repo.DeleteByBrandID(context.Background(), 7)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepository_DisplayNamesByUserIDs(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewFavoriteRepository(gormDB)

	t.Run("empty input skips the query", func(t *testing.T) {
		names, err := repo.DisplayNamesByUserIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("profiles without display names are omitted", func(t *testing.T) {
		withName := uuid.New()
		without := uuid.New()
		now := time.Now().UTC()

		rows := sqlmock.NewRows([]string{"id", "user_id", "display_name", "created_at"}).
			AddRow(int64(1), withName.String(), "민지", now).
			AddRow(int64(2), without.String(), nil, now)

		mock.ExpectQuery(`SELECT \* FROM "user_profiles" WHERE user_id IN \(\$1,\$2\)`).
			WithArgs(withName, without).
			WillReturnRows(rows)

		names, err := repo.DisplayNamesByUserIDs(context.Background(), []uuid.UUID{withName, without})

		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]string{withName: "민지"}, names)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
