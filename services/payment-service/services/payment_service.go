package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/services/payment-service/models"
	"github.com/yashrajoria/car-rental-backend/services/payment-service/repository"
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

type PaymentService interface {
	CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, *ServiceError)
	GetPayment(ctx context.Context, paymentUID uuid.UUID) (*models.Payment, *ServiceError)
	CancelPayment(ctx context.Context, paymentUID uuid.UUID) *ServiceError
}

type paymentServiceImpl struct {
	repo   repository.PaymentRepository
	logger *zap.Logger
}

func NewPaymentService(repo repository.PaymentRepository, logger *zap.Logger) PaymentService {
	return &paymentServiceImpl{repo: repo, logger: logger}
}

// CreatePayment settles the charge immediately; there is no external payment
// provider, so a created payment is already PAID.
func (s *paymentServiceImpl) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, *ServiceError) {
	payment := &models.Payment{
		PaymentUID: uuid.New(),
		Status:     models.PaymentStatusPaid,
		Price:      req.Price,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		s.logger.Error("Failed to create payment", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create payment"}
	}

	s.logger.Info("Payment created",
		zap.String("payment_uid", payment.PaymentUID.String()),
		zap.Int("price", payment.Price))
	return payment, nil
}

func (s *paymentServiceImpl) GetPayment(ctx context.Context, paymentUID uuid.UUID) (*models.Payment, *ServiceError) {
	payment, err := s.repo.FindByUID(ctx, paymentUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Payment not found"}
		}
		s.logger.Error("Failed to fetch payment", zap.Error(err), zap.String("payment_uid", paymentUID.String()))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch payment"}
	}
	return payment, nil
}

// CancelPayment moves the payment to CANCELED. Canceling an already-canceled
// payment succeeds, so saga compensations can be retried safely.
func (s *paymentServiceImpl) CancelPayment(ctx context.Context, paymentUID uuid.UUID) *ServiceError {
	payment, err := s.repo.FindByUID(ctx, paymentUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: http.StatusNotFound, Message: "Payment not found"}
		}
		s.logger.Error("Failed to fetch payment", zap.Error(err), zap.String("payment_uid", paymentUID.String()))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch payment"}
	}

	if payment.Status == models.PaymentStatusCanceled {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, paymentUID, models.PaymentStatusCanceled); err != nil {
		s.logger.Error("Failed to cancel payment", zap.Error(err), zap.String("payment_uid", paymentUID.String()))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to cancel payment"}
	}

	s.logger.Info("Payment canceled", zap.String("payment_uid", paymentUID.String()))
	return nil
}
