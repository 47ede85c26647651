package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yashrajoria/car-rental-backend/gateway/clients"
	"github.com/yashrajoria/car-rental-backend/gateway/models"
	"github.com/yashrajoria/car-rental-backend/gateway/services"
	"go.uber.org/zap"
)

// casInventory models the cars service with the conditional availability
// update: a reservation only succeeds if the car is still available at the
// moment of the write.
type casInventory struct {
	mu  sync.Mutex
	car models.Car
}

func (f *casInventory) ListCars(_ context.Context, page, size int, _ bool) (*models.PaginationResponse, error) {
	return &models.PaginationResponse{Page: page, PageSize: size, TotalElements: 1, Items: []models.Car{f.car}}, nil
}

func (f *casInventory) GetCar(_ context.Context, _ uuid.UUID) (*models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	car := f.car
	return &car, nil
}

func (f *casInventory) SetAvailability(_ context.Context, _ uuid.UUID, available bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if available {
		f.car.Available = true
		return nil
	}
	if !f.car.Available {
		return fmt.Errorf("%w: car already reserved", clients.ErrConflict)
	}
	f.car.Available = false
	return nil
}

// countingPayments hands out PAID payments and records cancellations.
type countingPayments struct {
	mu       sync.Mutex
	created  int
	canceled int
}

func (f *countingPayments) CreatePayment(_ context.Context, price int) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	return &models.Payment{PaymentUID: uuid.New(), Status: models.PaymentStatusPaid, Price: price}, nil
}

func (f *countingPayments) GetPayment(_ context.Context, _ uuid.UUID) (*models.Payment, error) {
	return nil, fmt.Errorf("%w: not tracked", clients.ErrNotFound)
}

func (f *countingPayments) CancelPayment(_ context.Context, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.canceled++
	return nil
}

// recordingLedger appends created rentals.
type recordingLedger struct {
	mu      sync.Mutex
	rentals []models.Rental
}

func (f *recordingLedger) CreateRental(_ context.Context, record models.CreateRentalRecord) (*models.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rental := models.Rental{
		RentalUID:  uuid.New(),
		Username:   record.Username,
		PaymentUID: record.PaymentUID,
		CarUID:     record.CarUID,
		DateFrom:   record.DateFrom,
		DateTo:     record.DateTo,
		Status:     models.RentalStatusInProgress,
	}
	f.rentals = append(f.rentals, rental)
	return &rental, nil
}

func (f *recordingLedger) GetRental(_ context.Context, _ uuid.UUID, _ string) (*models.Rental, error) {
	return nil, fmt.Errorf("%w: not tracked", clients.ErrNotFound)
}

func (f *recordingLedger) ListRentals(_ context.Context, _ string) ([]models.Rental, error) {
	return nil, nil
}

func (f *recordingLedger) CancelRental(_ context.Context, _ uuid.UUID, _ string) error { return nil }
func (f *recordingLedger) FinishRental(_ context.Context, _ uuid.UUID, _ string) error { return nil }

// Two create-rental workflows race on the same car. The conditional
// availability update must let exactly one of them through; the loser's
// payment must be compensated.
func TestCreateRental_ConcurrentRequestsSameCar(t *testing.T) {
	inventory := &casInventory{car: *testCar()}
	payments := &countingPayments{}
	ledger := &recordingLedger{}
	logger, _ := zap.NewDevelopment()
	svc := services.NewRentalOrchestrator(inventory, payments, ledger, logger)

	const workflows = 2
	var wg sync.WaitGroup
	errs := make([]*services.ServiceError, workflows)

	for i := 0; i < workflows; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateRental(context.Background(), fmt.Sprintf("user-%d", i), createRequest())
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}

	assert.Equal(t, 1, successes, "exactly one workflow may win the reservation")
	assert.Len(t, ledger.rentals, 1)
	assert.False(t, inventory.car.Available)
	assert.Equal(t, workflows, payments.created)
	assert.Equal(t, workflows-1, payments.canceled)
}
