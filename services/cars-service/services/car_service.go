package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/models"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ServiceError carries an HTTP status alongside a client-facing message.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Cache is the caching surface the service needs. The Redis implementation
// lives in the cache package; the service tolerates a nil Cache and simply
// reads through to Postgres.
type Cache interface {
	GetCar(ctx context.Context, carUID uuid.UUID) (*models.Car, bool)
	SetCarAsync(car *models.Car)
	GetList(ctx context.Context, page, size int, showAll bool) (*models.PaginationResponse, bool)
	SetListAsync(page, size int, showAll bool, response *models.PaginationResponse)
	InvalidateCar(ctx context.Context, carUID uuid.UUID)
}

type CarService interface {
	ListCars(ctx context.Context, page, size int, showAll bool) (*models.PaginationResponse, *ServiceError)
	GetCar(ctx context.Context, carUID uuid.UUID) (*models.Car, *ServiceError)
	CreateCar(ctx context.Context, req *models.CreateCarRequest) (*models.Car, *ServiceError)
	SetAvailability(ctx context.Context, carUID uuid.UUID, available bool) (*models.Car, *ServiceError)
}

type carServiceImpl struct {
	repo   repository.CarRepository
	cache  Cache
	logger *zap.Logger
}

func NewCarService(repo repository.CarRepository, cache Cache, logger *zap.Logger) CarService {
	return &carServiceImpl{repo: repo, cache: cache, logger: logger}
}

func (s *carServiceImpl) ListCars(ctx context.Context, page, size int, showAll bool) (*models.PaginationResponse, *ServiceError) {
	if s.cache != nil {
		if cached, ok := s.cache.GetList(ctx, page, size, showAll); ok {
			return cached, nil
		}
	}

	cars, total, err := s.repo.FindPage(ctx, page, size, showAll)
	if err != nil {
		s.logger.Error("Failed to list cars", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to list cars"}
	}

	response := &models.PaginationResponse{
		Page:          page,
		PageSize:      size,
		TotalElements: total,
		Items:         cars,
	}
	if s.cache != nil {
		s.cache.SetListAsync(page, size, showAll, response)
	}
	return response, nil
}

func (s *carServiceImpl) GetCar(ctx context.Context, carUID uuid.UUID) (*models.Car, *ServiceError) {
	if s.cache != nil {
		if cached, ok := s.cache.GetCar(ctx, carUID); ok {
			return cached, nil
		}
	}

	car, err := s.repo.FindByUID(ctx, carUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Car not found"}
		}
		s.logger.Error("Failed to fetch car", zap.Error(err), zap.String("car_uid", carUID.String()))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch car"}
	}

	if s.cache != nil {
		s.cache.SetCarAsync(car)
	}
	return car, nil
}

func (s *carServiceImpl) CreateCar(ctx context.Context, req *models.CreateCarRequest) (*models.Car, *ServiceError) {
	car := &models.Car{
		CarUID:             uuid.New(),
		Brand:              req.Brand,
		Model:              req.Model,
		RegistrationNumber: req.RegistrationNumber,
		Power:              req.Power,
		Price:              req.Price,
		Type:               req.Type,
		Available:          true,
	}

	if err := s.repo.Create(ctx, car); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ServiceError{StatusCode: http.StatusConflict, Message: "Registration number already in use"}
		}
		s.logger.Error("Failed to create car", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create car"}
	}

	s.logger.Info("Car created",
		zap.String("car_uid", car.CarUID.String()),
		zap.String("registration_number", car.RegistrationNumber))

	if s.cache != nil {
		s.cache.InvalidateCar(ctx, car.CarUID)
	}
	return car, nil
}

// SetAvailability flips a car's availability. Reserving (available=false) is
// conditional: it only succeeds if the car is still available, so concurrent
// reservations of the same car cannot both win. Releasing (available=true) is
// idempotent.
func (s *carServiceImpl) SetAvailability(ctx context.Context, carUID uuid.UUID, available bool) (*models.Car, *ServiceError) {
	var err error
	if available {
		err = s.repo.Release(ctx, carUID)
	} else {
		err = s.repo.Reserve(ctx, carUID)
	}

	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Car not found"}
	case errors.Is(err, repository.ErrCarUnavailable):
		s.logger.Warn("Reservation lost the availability race", zap.String("car_uid", carUID.String()))
		return nil, &ServiceError{StatusCode: http.StatusConflict, Message: "Car is not available"}
	default:
		s.logger.Error("Failed to update availability", zap.Error(err), zap.String("car_uid", carUID.String()))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update availability"}
	}

	if s.cache != nil {
		s.cache.InvalidateCar(ctx, carUID)
	}

	car, err := s.repo.FindByUID(ctx, carUID)
	if err != nil {
		s.logger.Error("Failed to reload car after availability update", zap.Error(err), zap.String("car_uid", carUID.String()))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch car"}
	}

	s.logger.Info("Car availability updated",
		zap.String("car_uid", carUID.String()),
		zap.Bool("available", available))
	return car, nil
}
