package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gormDB, mock
}

func carRow(carUID uuid.UUID, available bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"car_uid", "brand", "model", "registration_number", "power", "price", "type", "available", "created_at", "updated_at",
	}).AddRow(carUID, "Mercedes Benz", "GLA 250", "LO777X", 249, 100, "SEDAN", available, now, now)
}

func TestReserve_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewCarRepository(gormDB)
	carUID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cars"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Reserve(context.Background(), carUID)
	assert.NoError(t, err)
}

// A reservation that matches zero rows while the car exists lost the race to
// another rental and must surface as ErrCarUnavailable, not success.
func TestReserve_LostRaceIsUnavailable(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewCarRepository(gormDB)
	carUID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cars"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cars"`)).
		WillReturnRows(carRow(carUID, false))

	err := repo.Reserve(context.Background(), carUID)
	assert.ErrorIs(t, err, repository.ErrCarUnavailable)
}

func TestReserve_MissingCarIsNotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewCarRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cars"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cars"`)).
		WillReturnRows(sqlmock.NewRows([]string{}))

	err := repo.Reserve(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRelease_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewCarRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cars"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Release(context.Background(), uuid.New())
	assert.NoError(t, err)
}

func TestRelease_MissingCarIsNotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewCarRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "cars"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Release(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindByUID_Success(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewCarRepository(gormDB)
	carUID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cars"`)).
		WillReturnRows(carRow(carUID, true))

	car, err := repo.FindByUID(context.Background(), carUID)
	assert.NoError(t, err)
	assert.Equal(t, carUID, car.CarUID)
	assert.True(t, car.Available)
}

func TestFindPage_FiltersUnavailable(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := repository.NewCarRepository(gormDB)
	carUID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "cars" WHERE available = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cars" WHERE available = $1`)).
		WillReturnRows(carRow(carUID, true))

	cars, total, err := repo.FindPage(context.Background(), 1, 10, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, cars, 1)
}
