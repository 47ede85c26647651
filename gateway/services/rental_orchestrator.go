package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/gateway/clients"
	"github.com/yashrajoria/car-rental-backend/gateway/models"
	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// CarsClient is the slice of the cars service the orchestrator needs.
type CarsClient interface {
	ListCars(ctx context.Context, page, size int, showAll bool) (*models.PaginationResponse, error)
	GetCar(ctx context.Context, carUID uuid.UUID) (*models.Car, error)
	SetAvailability(ctx context.Context, carUID uuid.UUID, available bool) error
}

// PaymentClient is the slice of the payment service the orchestrator needs.
type PaymentClient interface {
	CreatePayment(ctx context.Context, price int) (*models.Payment, error)
	GetPayment(ctx context.Context, paymentUID uuid.UUID) (*models.Payment, error)
	CancelPayment(ctx context.Context, paymentUID uuid.UUID) error
}

// RentalClient is the slice of the rental service the orchestrator needs.
type RentalClient interface {
	CreateRental(ctx context.Context, record models.CreateRentalRecord) (*models.Rental, error)
	GetRental(ctx context.Context, rentalUID uuid.UUID, username string) (*models.Rental, error)
	ListRentals(ctx context.Context, username string) ([]models.Rental, error)
	CancelRental(ctx context.Context, rentalUID uuid.UUID, username string) error
	FinishRental(ctx context.Context, rentalUID uuid.UUID, username string) error
}

// RentalOrchestrator coordinates the create/cancel/finish/read workflows
// across the cars, payment and rental services. There is no shared
// transaction between the three; partial progress is unwound with
// compensating actions.
type RentalOrchestrator interface {
	ListCars(ctx context.Context, page, size int, showAll bool) (*models.PaginationResponse, *ServiceError)
	CreateRental(ctx context.Context, username string, req *models.CreateRentalRequest) (*models.CreateRentalResponse, *ServiceError)
	GetRental(ctx context.Context, username string, rentalUID uuid.UUID) (*models.RentalResponse, *ServiceError)
	ListRentals(ctx context.Context, username string) ([]models.RentalResponse, *ServiceError)
	CancelRental(ctx context.Context, username string, rentalUID uuid.UUID) *ServiceError
	FinishRental(ctx context.Context, username string, rentalUID uuid.UUID) *ServiceError
}

type rentalOrchestratorImpl struct {
	cars     CarsClient
	payments PaymentClient
	rentals  RentalClient
	logger   *zap.Logger
}

// NewRentalOrchestrator creates a RentalOrchestrator. The orchestrator holds
// no mutable state of its own; its methods are reentrant.
func NewRentalOrchestrator(cars CarsClient, payments PaymentClient, rentals RentalClient, logger *zap.Logger) RentalOrchestrator {
	return &rentalOrchestratorImpl{
		cars:     cars,
		payments: payments,
		rentals:  rentals,
		logger:   logger,
	}
}

// ListCars proxies the paginated car listing from the cars service.
func (o *rentalOrchestratorImpl) ListCars(ctx context.Context, page, size int, showAll bool) (*models.PaginationResponse, *ServiceError) {
	cars, err := o.cars.ListCars(ctx, page, size, showAll)
	if err != nil {
		o.logger.Error("ListCars failed", zap.Error(err))
		return nil, downstreamError(err, "Cars service error")
	}
	return cars, nil
}

// CreateRental runs the create-rental saga:
//
//  1. fetch the car
//  2. price the date range
//  3. create the payment
//  4. reserve the car (conditional on availability)
//  5. create the rental record
//
// After steps 3 and 4 commit, their undo actions are pushed onto a
// compensation stack; any later failure unwinds the stack in reverse order.
func (o *rentalOrchestratorImpl) CreateRental(ctx context.Context, username string, req *models.CreateRentalRequest) (*models.CreateRentalResponse, *ServiceError) {
	car, err := o.cars.GetCar(ctx, req.CarUID)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Car not found"}
		}
		o.logger.Error("CreateRental: car lookup failed", zap.String("car_uid", req.CarUID.String()), zap.Error(err))
		return nil, downstreamError(err, "Cars service error")
	}

	dateFrom, parseErr := ParseRentalDate(req.DateFrom)
	if parseErr != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid dateFrom"}
	}
	dateTo, parseErr := ParseRentalDate(req.DateTo)
	if parseErr != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid dateTo"}
	}
	totalPrice := RentalPrice(dateFrom, dateTo, car.Price)

	var undo compensationStack

	payment, err := o.payments.CreatePayment(ctx, totalPrice)
	if err != nil {
		// Nothing committed yet, plain abort.
		o.logger.Error("CreateRental: payment creation failed", zap.Int("price", totalPrice), zap.Error(err))
		return nil, downstreamError(err, "Payment service error")
	}
	undo.push("cancel payment", func(ctx context.Context) error {
		return o.payments.CancelPayment(ctx, payment.PaymentUID)
	})

	if err := o.cars.SetAvailability(ctx, req.CarUID, false); err != nil {
		o.logger.Error("CreateRental: reservation failed",
			zap.String("car_uid", req.CarUID.String()),
			zap.Error(err),
		)
		undo.unwind(ctx, o.logger)
		return nil, downstreamError(err, "Failed to reserve car")
	}
	undo.push("release car", func(ctx context.Context) error {
		return o.cars.SetAvailability(ctx, req.CarUID, true)
	})

	rental, err := o.rentals.CreateRental(ctx, models.CreateRentalRecord{
		Username:   username,
		PaymentUID: payment.PaymentUID,
		CarUID:     req.CarUID,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
	})
	if err != nil {
		o.logger.Error("CreateRental: rental creation failed",
			zap.String("car_uid", req.CarUID.String()),
			zap.Error(err),
		)
		undo.unwind(ctx, o.logger)
		return nil, downstreamError(err, "Rental service error")
	}

	return &models.CreateRentalResponse{
		RentalUID: rental.RentalUID,
		Status:    rental.Status,
		CarUID:    req.CarUID,
		DateFrom:  req.DateFrom,
		DateTo:    req.DateTo,
		Payment: models.PaymentInfo{
			PaymentUID: payment.PaymentUID,
			Status:     payment.Status,
			Price:      payment.Price,
		},
	}, nil
}

// GetRental returns one rental enriched with car and payment summaries.
func (o *rentalOrchestratorImpl) GetRental(ctx context.Context, username string, rentalUID uuid.UUID) (*models.RentalResponse, *ServiceError) {
	rental, err := o.rentals.GetRental(ctx, rentalUID, username)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Rental not found"}
		}
		o.logger.Error("GetRental failed", zap.String("rental_uid", rentalUID.String()), zap.Error(err))
		return nil, downstreamError(err, "Rental service error")
	}

	resp := o.enrich(ctx, rental)
	return &resp, nil
}

// ListRentals returns all of the caller's rentals, each enriched with car and
// payment summaries.
func (o *rentalOrchestratorImpl) ListRentals(ctx context.Context, username string) ([]models.RentalResponse, *ServiceError) {
	rentals, err := o.rentals.ListRentals(ctx, username)
	if err != nil {
		o.logger.Error("ListRentals failed", zap.String("username", username), zap.Error(err))
		return nil, downstreamError(err, "Rental service error")
	}

	result := make([]models.RentalResponse, 0, len(rentals))
	for i := range rentals {
		result = append(result, o.enrich(ctx, &rentals[i]))
	}
	return result, nil
}

// enrich attaches car and payment summaries to a rental. The read path
// favors availability over completeness: a failed lookup degrades to the
// identifiers already on the rental record with zero-valued descriptive
// fields.
func (o *rentalOrchestratorImpl) enrich(ctx context.Context, rental *models.Rental) models.RentalResponse {
	carInfo := models.CarInfo{CarUID: rental.CarUID}
	if car, err := o.cars.GetCar(ctx, rental.CarUID); err == nil {
		carInfo.Brand = car.Brand
		carInfo.Model = car.Model
		carInfo.RegistrationNumber = car.RegistrationNumber
	} else {
		o.logger.Warn("rental enrichment: car lookup failed",
			zap.String("rental_uid", rental.RentalUID.String()),
			zap.String("car_uid", rental.CarUID.String()),
			zap.Error(err),
		)
	}

	paymentInfo := models.PaymentInfo{PaymentUID: rental.PaymentUID}
	if payment, err := o.payments.GetPayment(ctx, rental.PaymentUID); err == nil {
		paymentInfo.Status = payment.Status
		paymentInfo.Price = payment.Price
	} else {
		o.logger.Warn("rental enrichment: payment lookup failed",
			zap.String("rental_uid", rental.RentalUID.String()),
			zap.String("payment_uid", rental.PaymentUID.String()),
			zap.Error(err),
		)
	}

	return models.RentalResponse{
		RentalUID: rental.RentalUID,
		Status:    rental.Status,
		DateFrom:  rental.DateFrom,
		DateTo:    rental.DateTo,
		Car:       carInfo,
		Payment:   paymentInfo,
	}
}

// CancelRental cancels a rental in the ledger, then releases the car and
// voids the payment. The ledger transition is authoritative: once it
// commits, release and void failures are logged but do not fail the
// workflow (both cleanups are idempotent and retryable out of band).
func (o *rentalOrchestratorImpl) CancelRental(ctx context.Context, username string, rentalUID uuid.UUID) *ServiceError {
	rental, err := o.rentals.GetRental(ctx, rentalUID, username)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Rental not found"}
		}
		o.logger.Error("CancelRental: rental lookup failed", zap.String("rental_uid", rentalUID.String()), zap.Error(err))
		return downstreamError(err, "Rental service error")
	}

	if err := o.rentals.CancelRental(ctx, rentalUID, username); err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Rental not found"}
		}
		o.logger.Error("CancelRental: ledger cancel failed", zap.String("rental_uid", rentalUID.String()), zap.Error(err))
		return downstreamError(err, "Failed to cancel rental")
	}

	if err := o.cars.SetAvailability(ctx, rental.CarUID, true); err != nil {
		o.logger.Warn("CancelRental: car release failed, needs reconciliation",
			zap.String("rental_uid", rentalUID.String()),
			zap.String("car_uid", rental.CarUID.String()),
			zap.Error(err),
		)
	}

	if err := o.payments.CancelPayment(ctx, rental.PaymentUID); err != nil {
		o.logger.Warn("CancelRental: payment cancel failed, needs reconciliation",
			zap.String("rental_uid", rentalUID.String()),
			zap.String("payment_uid", rental.PaymentUID.String()),
			zap.Error(err),
		)
	}

	return nil
}

// FinishRental completes a rental in the ledger and releases the car. The
// payment stays PAID: a finished rental is a successful, paid transaction.
func (o *rentalOrchestratorImpl) FinishRental(ctx context.Context, username string, rentalUID uuid.UUID) *ServiceError {
	rental, err := o.rentals.GetRental(ctx, rentalUID, username)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Rental not found"}
		}
		o.logger.Error("FinishRental: rental lookup failed", zap.String("rental_uid", rentalUID.String()), zap.Error(err))
		return downstreamError(err, "Rental service error")
	}

	if err := o.rentals.FinishRental(ctx, rentalUID, username); err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Rental not found"}
		}
		o.logger.Error("FinishRental: ledger finish failed", zap.String("rental_uid", rentalUID.String()), zap.Error(err))
		return downstreamError(err, "Failed to finish rental")
	}

	if err := o.cars.SetAvailability(ctx, rental.CarUID, true); err != nil {
		o.logger.Warn("FinishRental: car release failed, needs reconciliation",
			zap.String("rental_uid", rentalUID.String()),
			zap.String("car_uid", rental.CarUID.String()),
			zap.Error(err),
		)
	}

	return nil
}

// downstreamError maps a client error to a ServiceError. Conflicts (a lost
// reservation race, a terminal rental) keep their 409, transport failures
// read as 502, everything else as 500.
func downstreamError(err error, message string) *ServiceError {
	switch {
	case errors.Is(err, clients.ErrConflict):
		return &ServiceError{StatusCode: http.StatusConflict, Message: message}
	case errors.Is(err, clients.ErrUnavailable):
		return &ServiceError{StatusCode: http.StatusBadGateway, Message: message}
	default:
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: message}
	}
}
