package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/models"
	"gorm.io/gorm"
)

// ErrCarUnavailable is returned by Reserve when the car exists but is
// already held by another rental.
var ErrCarUnavailable = errors.New("car is not available")

type CarRepository interface {
	Create(ctx context.Context, car *models.Car) error
	FindByUID(ctx context.Context, carUID uuid.UUID) (*models.Car, error)
	FindPage(ctx context.Context, page, size int, showAll bool) ([]models.Car, int64, error)
	Reserve(ctx context.Context, carUID uuid.UUID) error
	Release(ctx context.Context, carUID uuid.UUID) error
}

type carRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *models.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

func (r *carRepository) FindByUID(ctx context.Context, carUID uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, "car_uid = ?", carUID).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *carRepository) FindPage(ctx context.Context, page, size int, showAll bool) ([]models.Car, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Car{})
	if !showAll {
		query = query.Where("available = ?", true)
	}
	// Session makes the chain reusable for both the count and the page query.
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	cars := make([]models.Car, 0, size)
	err := query.
		Order("registration_number").
		Offset((page - 1) * size).
		Limit(size).
		Find(&cars).Error
	if err != nil {
		return nil, 0, err
	}
	return cars, total, nil
}

// Reserve flips available to false only if the car is still available at the
// moment of the write. Two concurrent reservations of the same car resolve in
// the database: the second update matches zero rows and fails with
// ErrCarUnavailable.
func (r *carRepository) Reserve(ctx context.Context, carUID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.Car{}).
		Where("car_uid = ? AND available = ?", carUID, true).
		Update("available", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Zero rows is either a missing car or a lost race; look again to
		// tell the two apart.
		if _, err := r.FindByUID(ctx, carUID); err != nil {
			return err
		}
		return ErrCarUnavailable
	}
	return nil
}

// Release marks the car available again. Releasing an already-available car
// is a no-op success so compensations can be retried safely.
func (r *carRepository) Release(ctx context.Context, carUID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&models.Car{}).
		Where("car_uid = ?", carUID).
		Update("available", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
