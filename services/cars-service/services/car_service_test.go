package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/models"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/repository"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mockRepo fakes the repository with per-method hooks.
type mockRepo struct {
	createFn   func(ctx context.Context, car *models.Car) error
	findFn     func(ctx context.Context, carUID uuid.UUID) (*models.Car, error)
	findPageFn func(ctx context.Context, page, size int, showAll bool) ([]models.Car, int64, error)
	reserveFn  func(ctx context.Context, carUID uuid.UUID) error
	releaseFn  func(ctx context.Context, carUID uuid.UUID) error
}

func (m *mockRepo) Create(ctx context.Context, car *models.Car) error {
	return m.createFn(ctx, car)
}

func (m *mockRepo) FindByUID(ctx context.Context, carUID uuid.UUID) (*models.Car, error) {
	return m.findFn(ctx, carUID)
}

func (m *mockRepo) FindPage(ctx context.Context, page, size int, showAll bool) ([]models.Car, int64, error) {
	return m.findPageFn(ctx, page, size, showAll)
}

func (m *mockRepo) Reserve(ctx context.Context, carUID uuid.UUID) error {
	return m.reserveFn(ctx, carUID)
}

func (m *mockRepo) Release(ctx context.Context, carUID uuid.UUID) error {
	return m.releaseFn(ctx, carUID)
}

// mockCache records hits and invalidations.
type mockCache struct {
	car          *models.Car
	list         *models.PaginationResponse
	invalidated  []uuid.UUID
	setCarCalls  int
	setListCalls int
}

func (m *mockCache) GetCar(_ context.Context, _ uuid.UUID) (*models.Car, bool) {
	if m.car == nil {
		return nil, false
	}
	return m.car, true
}

func (m *mockCache) SetCarAsync(_ *models.Car) { m.setCarCalls++ }

func (m *mockCache) GetList(_ context.Context, _, _ int, _ bool) (*models.PaginationResponse, bool) {
	if m.list == nil {
		return nil, false
	}
	return m.list, true
}

func (m *mockCache) SetListAsync(_, _ int, _ bool, _ *models.PaginationResponse) { m.setListCalls++ }

func (m *mockCache) InvalidateCar(_ context.Context, carUID uuid.UUID) {
	m.invalidated = append(m.invalidated, carUID)
}

func testCar(available bool) *models.Car {
	return &models.Car{
		CarUID:             uuid.New(),
		Brand:              "Mercedes Benz",
		Model:              "GLA 250",
		RegistrationNumber: "LO777X",
		Price:              100,
		Type:               models.CarTypeSedan,
		Available:          available,
	}
}

func newService(repo repository.CarRepository, cache services.Cache) services.CarService {
	logger, _ := zap.NewDevelopment()
	return services.NewCarService(repo, cache, logger)
}

func TestGetCar_CacheHitSkipsRepository(t *testing.T) {
	car := testCar(true)
	cache := &mockCache{car: car}
	repo := &mockRepo{
		findFn: func(context.Context, uuid.UUID) (*models.Car, error) {
			t.Fatal("repository must not be hit on a cache hit")
			return nil, nil
		},
	}
	svc := newService(repo, cache)

	got, svcErr := svc.GetCar(context.Background(), car.CarUID)

	assert.Nil(t, svcErr)
	assert.Equal(t, car, got)
}

func TestGetCar_CacheMissReadsThrough(t *testing.T) {
	car := testCar(true)
	cache := &mockCache{}
	repo := &mockRepo{
		findFn: func(context.Context, uuid.UUID) (*models.Car, error) { return car, nil },
	}
	svc := newService(repo, cache)

	got, svcErr := svc.GetCar(context.Background(), car.CarUID)

	assert.Nil(t, svcErr)
	assert.Equal(t, car, got)
	assert.Equal(t, 1, cache.setCarCalls)
}

func TestGetCar_NotFound(t *testing.T) {
	repo := &mockRepo{
		findFn: func(context.Context, uuid.UUID) (*models.Car, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newService(repo, nil)

	_, svcErr := svc.GetCar(context.Background(), uuid.New())

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestListCars_NilCacheReadsRepository(t *testing.T) {
	car := testCar(true)
	repo := &mockRepo{
		findPageFn: func(_ context.Context, page, size int, showAll bool) ([]models.Car, int64, error) {
			assert.Equal(t, 1, page)
			assert.Equal(t, 10, size)
			assert.False(t, showAll)
			return []models.Car{*car}, 1, nil
		},
	}
	svc := newService(repo, nil)

	response, svcErr := svc.ListCars(context.Background(), 1, 10, false)

	assert.Nil(t, svcErr)
	assert.Equal(t, int64(1), response.TotalElements)
	assert.Len(t, response.Items, 1)
}

func TestSetAvailability_ReserveConflict(t *testing.T) {
	cache := &mockCache{}
	repo := &mockRepo{
		reserveFn: func(context.Context, uuid.UUID) error { return repository.ErrCarUnavailable },
	}
	svc := newService(repo, cache)

	_, svcErr := svc.SetAvailability(context.Background(), uuid.New(), false)

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
	assert.Equal(t, "Car is not available", svcErr.Message)
	assert.Empty(t, cache.invalidated, "a denied reservation must not invalidate the cache")
}

func TestSetAvailability_ReserveSuccessInvalidatesCache(t *testing.T) {
	car := testCar(false)
	cache := &mockCache{}
	repo := &mockRepo{
		reserveFn: func(context.Context, uuid.UUID) error { return nil },
		findFn:    func(context.Context, uuid.UUID) (*models.Car, error) { return car, nil },
	}
	svc := newService(repo, cache)

	got, svcErr := svc.SetAvailability(context.Background(), car.CarUID, false)

	assert.Nil(t, svcErr)
	assert.False(t, got.Available)
	assert.Equal(t, []uuid.UUID{car.CarUID}, cache.invalidated)
}

func TestSetAvailability_ReleaseMissingCar(t *testing.T) {
	repo := &mockRepo{
		releaseFn: func(context.Context, uuid.UUID) error { return gorm.ErrRecordNotFound },
	}
	svc := newService(repo, nil)

	_, svcErr := svc.SetAvailability(context.Background(), uuid.New(), true)

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestCreateCar_DefaultsToAvailable(t *testing.T) {
	var created *models.Car
	repo := &mockRepo{
		createFn: func(_ context.Context, car *models.Car) error {
			created = car
			return nil
		},
	}
	svc := newService(repo, nil)

	power := 249
	car, svcErr := svc.CreateCar(context.Background(), &models.CreateCarRequest{
		Brand:              "BMW",
		Model:              "M5",
		RegistrationNumber: "X123YZ",
		Power:              &power,
		Price:              250,
		Type:               models.CarTypeSedan,
	})

	assert.Nil(t, svcErr)
	assert.True(t, car.Available)
	assert.NotEqual(t, uuid.Nil, car.CarUID)
	assert.Equal(t, created, car)
}

func TestCreateCar_DuplicateRegistration(t *testing.T) {
	repo := &mockRepo{
		createFn: func(context.Context, *models.Car) error { return gorm.ErrDuplicatedKey },
	}
	svc := newService(repo, nil)

	_, svcErr := svc.CreateCar(context.Background(), &models.CreateCarRequest{
		Brand:              "BMW",
		Model:              "M5",
		RegistrationNumber: "X123YZ",
		Price:              250,
		Type:               models.CarTypeSedan,
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
}
