package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/models"
	"gorm.io/gorm"
)

// ErrRentalNotActive is returned by Transition when the rental exists for the
// user but already reached a terminal status.
var ErrRentalNotActive = errors.New("rental is not in progress")

type RentalRepository interface {
	Create(ctx context.Context, rental *models.Rental) error
	FindByUID(ctx context.Context, rentalUID uuid.UUID, username string) (*models.Rental, error)
	FindAllByUsername(ctx context.Context, username string) ([]models.Rental, error)
	Transition(ctx context.Context, rentalUID uuid.UUID, username string, to models.RentalStatus) error
}

type rentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rental *models.Rental) error {
	return r.db.WithContext(ctx).Create(rental).Error
}

// FindByUID is ownership-scoped: a rental belonging to another user is
// indistinguishable from a missing one.
func (r *rentalRepository) FindByUID(ctx context.Context, rentalUID uuid.UUID, username string) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.WithContext(ctx).
		First(&rental, "rental_uid = ? AND username = ?", rentalUID, username).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *rentalRepository) FindAllByUsername(ctx context.Context, username string) ([]models.Rental, error) {
	var rentals []models.Rental
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at").
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

// Transition moves a rental out of IN_PROGRESS. The status guard is part of
// the WHERE clause, so a rental that already reached a terminal status cannot
// transition again even under concurrent requests.
func (r *rentalRepository) Transition(ctx context.Context, rentalUID uuid.UUID, username string, to models.RentalStatus) error {
	res := r.db.WithContext(ctx).
		Model(&models.Rental{}).
		Where("rental_uid = ? AND username = ? AND status = ?", rentalUID, username, models.RentalStatusInProgress).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByUID(ctx, rentalUID, username); err != nil {
			return err
		}
		return ErrRentalNotActive
	}
	return nil
}
