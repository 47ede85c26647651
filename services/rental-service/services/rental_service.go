package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/pkg/aws"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/models"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/repository"
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

type RentalService interface {
	CreateRental(ctx context.Context, record *models.CreateRentalRecord) (*models.RentalView, *ServiceError)
	GetRental(ctx context.Context, rentalUID uuid.UUID, username string) (*models.RentalView, *ServiceError)
	ListRentals(ctx context.Context, username string) ([]models.RentalView, *ServiceError)
	CancelRental(ctx context.Context, rentalUID uuid.UUID, username string) *ServiceError
	FinishRental(ctx context.Context, rentalUID uuid.UUID, username string) *ServiceError
}

type rentalServiceImpl struct {
	repo        repository.RentalRepository
	snsClient   aws.SNSPublisher
	snsTopicArn string
	logger      *zap.Logger
}

func NewRentalService(repo repository.RentalRepository, snsClient aws.SNSPublisher, snsTopicArn string, logger *zap.Logger) RentalService {
	return &rentalServiceImpl{
		repo:        repo,
		snsClient:   snsClient,
		snsTopicArn: snsTopicArn,
		logger:      logger,
	}
}

// CreateRental opens an IN_PROGRESS ledger row. The ledger trusts the
// orchestrator for car and payment references; it only validates the dates.
func (s *rentalServiceImpl) CreateRental(ctx context.Context, record *models.CreateRentalRecord) (*models.RentalView, *ServiceError) {
	dateFrom, err := time.Parse(models.DateLayout, record.DateFrom)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "dateFrom must use the YYYY-MM-DD format"}
	}
	dateTo, err := time.Parse(models.DateLayout, record.DateTo)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "dateTo must use the YYYY-MM-DD format"}
	}

	rental := &models.Rental{
		RentalUID:  uuid.New(),
		Username:   record.Username,
		PaymentUID: record.PaymentUID,
		CarUID:     record.CarUID,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Status:     models.RentalStatusInProgress,
	}

	if err := s.repo.Create(ctx, rental); err != nil {
		s.logger.Error("Failed to create rental", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create rental"}
	}

	s.logger.Info("Rental created",
		zap.String("rental_uid", rental.RentalUID.String()),
		zap.String("username", rental.Username))

	s.publishEvent(ctx, models.EventRentalCreated, rental)

	view := rental.View()
	return &view, nil
}

func (s *rentalServiceImpl) GetRental(ctx context.Context, rentalUID uuid.UUID, username string) (*models.RentalView, *ServiceError) {
	rental, err := s.repo.FindByUID(ctx, rentalUID, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Rental not found"}
		}
		s.logger.Error("Failed to fetch rental", zap.Error(err), zap.String("rental_uid", rentalUID.String()))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch rental"}
	}

	view := rental.View()
	return &view, nil
}

func (s *rentalServiceImpl) ListRentals(ctx context.Context, username string) ([]models.RentalView, *ServiceError) {
	rentals, err := s.repo.FindAllByUsername(ctx, username)
	if err != nil {
		s.logger.Error("Failed to list rentals", zap.Error(err), zap.String("username", username))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to list rentals"}
	}

	views := make([]models.RentalView, 0, len(rentals))
	for _, rental := range rentals {
		views = append(views, rental.View())
	}
	return views, nil
}

func (s *rentalServiceImpl) CancelRental(ctx context.Context, rentalUID uuid.UUID, username string) *ServiceError {
	return s.transition(ctx, rentalUID, username, models.RentalStatusCanceled, models.EventRentalCanceled)
}

func (s *rentalServiceImpl) FinishRental(ctx context.Context, rentalUID uuid.UUID, username string) *ServiceError {
	return s.transition(ctx, rentalUID, username, models.RentalStatusFinished, models.EventRentalFinished)
}

func (s *rentalServiceImpl) transition(ctx context.Context, rentalUID uuid.UUID, username string, to models.RentalStatus, eventType string) *ServiceError {
	err := s.repo.Transition(ctx, rentalUID, username, to)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Rental not found"}
	case errors.Is(err, repository.ErrRentalNotActive):
		return &ServiceError{StatusCode: http.StatusConflict, Message: "Rental is not in progress"}
	default:
		s.logger.Error("Failed to transition rental", zap.Error(err),
			zap.String("rental_uid", rentalUID.String()),
			zap.String("to", string(to)))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update rental"}
	}

	s.logger.Info("Rental transitioned",
		zap.String("rental_uid", rentalUID.String()),
		zap.String("status", string(to)))

	if rental, err := s.repo.FindByUID(ctx, rentalUID, username); err == nil {
		s.publishEvent(ctx, eventType, rental)
	}
	return nil
}

// publishEvent marshals an event and publishes it to SNS (non-fatal on error).
func (s *rentalServiceImpl) publishEvent(ctx context.Context, eventType string, rental *models.Rental) {
	if s.snsClient == nil || s.snsTopicArn == "" {
		return
	}

	event := models.RentalEvent{
		EventType:  eventType,
		RentalUID:  rental.RentalUID,
		Username:   rental.Username,
		CarUID:     rental.CarUID,
		PaymentUID: rental.PaymentUID,
		Status:     rental.Status,
		Timestamp:  time.Now().UTC(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("Failed to marshal rental event", zap.Error(err))
		return
	}
	if err := s.snsClient.Publish(ctx, s.snsTopicArn, b); err != nil {
		s.logger.Error("Failed to publish rental event", zap.Error(err),
			zap.String("event_type", eventType))
		return
	}
	s.logger.Info("Published rental event",
		zap.String("event_type", eventType),
		zap.String("rental_uid", rental.RentalUID.String()))
}
