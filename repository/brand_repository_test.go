package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hye2gold/Salendar/models"
	"github.com/hye2gold/Salendar/utils"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to open mock database")

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to create GORM instance")

	t.Cleanup(func() {
		sqlDB, _ := gormDB.DB()
		sqlDB.Close()
	})

	return gormDB, mock
}

func brandColumns() []string {
	return []string{"id", "uuid", "name", "category", "logo_url", "official_url", "is_active", "created_at", "updated_at"}
}

func brandRow(id int64, name, category string, isActive bool) []driver.Value {
	now := time.Now().UTC()
	return []driver.Value{id, uuid.New().String(), name, category, nil, nil, isActive, now, now}
}

func TestBrandRepository_ListActive(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewBrandRepository(gormDB)

	rows := sqlmock.NewRows(brandColumns()).
		AddRow(brandRow(1, "올리브영", "뷰티", true)...).
		AddRow(brandRow(2, "지그재그", "패션", true)...)

	mock.ExpectQuery(`SELECT \* FROM "brands" WHERE is_active = \$1 ORDER BY name ASC`).
		WithArgs(true).
		WillReturnRows(rows)

	brands, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "올리브영", brands[0].Name)
	assert.Equal(t, "지그재그", brands[1].Name)
	assert.True(t, utils.IsTrue(brands[0].IsActive))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_ListAll(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewBrandRepository(gormDB)

	rows := sqlmock.NewRows(brandColumns()).
		AddRow(brandRow(1, "올리브영", "뷰티", true)...).
		AddRow(brandRow(2, "휴면브랜드", "기타", false)...)

	mock.ExpectQuery(`SELECT \* FROM "brands" ORDER BY name ASC`).
		WillReturnRows(rows)

	brands, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, brands, 2, "inactive brands are included for the admin console")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_ByUUID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewBrandRepository(gormDB)

	brandUUID := uuid.New()

	t.Run("found", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows(brandColumns()).
			AddRow(int64(7), brandUUID.String(), "올리브영", "뷰티", nil, nil, true, now, now)

		mock.ExpectQuery(`SELECT \* FROM "brands" WHERE uuid = \$1 ORDER BY id DESC LIMIT \$2`).
			WithArgs(brandUUID, 1).
			WillReturnRows(rows)

		brand, err := repo.ByUUID(context.Background(), brandUUID.String())

		require.NoError(t, err)
		require.NotNil(t, brand)
		assert.Equal(t, uint(7), brand.ID)
		assert.Equal(t, brandUUID, brand.UUID)
	})

	t.Run("not found returns nil without error", func(t *testing.T) {
		missing := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "brands" WHERE uuid = \$1 ORDER BY id DESC LIMIT \$2`).
			WithArgs(missing, 1).
			WillReturnRows(sqlmock.NewRows(brandColumns()))

		brand, err := repo.ByUUID(context.Background(), missing.String())

		require.NoError(t, err)
		assert.Nil(t, brand)
	})

	t.Run("malformed uuid fails before touching the database", func(t *testing.T) {
		brand, err := repo.ByUUID(context.Background(), "not-a-uuid")

		assert.Error(t, err)
		assert.Nil(t, brand)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_ByFilter_DatabaseError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewBrandRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "brands"`).
		WillReturnError(errors.New("connection refused"))

	brands, err := repo.ByFilter(context.Background(), models.BrandFilter{}, "", 0, 0)

	assert.Error(t, err)
	assert.Nil(t, brands)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_Delete(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewBrandRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "brands" WHERE "brands"\."id" = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 5)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandRepository_DeleteUsesAmbientTransaction(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewBrandRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events" WHERE brand_id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "brands" WHERE "brands"\."id" = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	eventRepo := NewEventRepository(gormDB)

	err := WithTransaction(context.Background(), gormDB, func(txCtx context.Context) error {
		if err := eventRepo.DeleteByBrandID(txCtx, 5); err != nil {
			return err
		}
		return repo.Delete(txCtx, 5)
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
