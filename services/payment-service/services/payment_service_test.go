package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yashrajoria/car-rental-backend/services/payment-service/models"
	"github.com/yashrajoria/car-rental-backend/services/payment-service/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// mockRepo fakes the repository with per-method hooks.
type mockRepo struct {
	createFn func(ctx context.Context, payment *models.Payment) error
	findFn   func(ctx context.Context, paymentUID uuid.UUID) (*models.Payment, error)
	updateFn func(ctx context.Context, paymentUID uuid.UUID, status models.PaymentStatus) error
}

func (m *mockRepo) Create(ctx context.Context, payment *models.Payment) error {
	return m.createFn(ctx, payment)
}

func (m *mockRepo) FindByUID(ctx context.Context, paymentUID uuid.UUID) (*models.Payment, error) {
	return m.findFn(ctx, paymentUID)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, paymentUID uuid.UUID, status models.PaymentStatus) error {
	return m.updateFn(ctx, paymentUID, status)
}

func newService(repo *mockRepo) services.PaymentService {
	logger, _ := zap.NewDevelopment()
	return services.NewPaymentService(repo, logger)
}

func TestCreatePayment_IsImmediatelyPaid(t *testing.T) {
	var created *models.Payment
	repo := &mockRepo{
		createFn: func(_ context.Context, payment *models.Payment) error {
			created = payment
			return nil
		},
	}
	svc := newService(repo)

	payment, svcErr := svc.CreatePayment(context.Background(), &models.CreatePaymentRequest{Price: 300})

	assert.Nil(t, svcErr)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
	assert.Equal(t, 300, payment.Price)
	assert.NotEqual(t, uuid.Nil, payment.PaymentUID)
	assert.Equal(t, created, payment)
}

func TestGetPayment_NotFound(t *testing.T) {
	repo := &mockRepo{
		findFn: func(context.Context, uuid.UUID) (*models.Payment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newService(repo)

	_, svcErr := svc.GetPayment(context.Background(), uuid.New())

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestCancelPayment_MarksCanceled(t *testing.T) {
	paymentUID := uuid.New()
	var updatedTo models.PaymentStatus
	repo := &mockRepo{
		findFn: func(context.Context, uuid.UUID) (*models.Payment, error) {
			return &models.Payment{PaymentUID: paymentUID, Status: models.PaymentStatusPaid, Price: 300}, nil
		},
		updateFn: func(_ context.Context, _ uuid.UUID, status models.PaymentStatus) error {
			updatedTo = status
			return nil
		},
	}
	svc := newService(repo)

	svcErr := svc.CancelPayment(context.Background(), paymentUID)

	assert.Nil(t, svcErr)
	assert.Equal(t, models.PaymentStatusCanceled, updatedTo)
}

// Canceling twice must succeed without touching the row again; the saga
// retries compensations.
func TestCancelPayment_AlreadyCanceledIsIdempotent(t *testing.T) {
	repo := &mockRepo{
		findFn: func(context.Context, uuid.UUID) (*models.Payment, error) {
			return &models.Payment{PaymentUID: uuid.New(), Status: models.PaymentStatusCanceled, Price: 300}, nil
		},
		updateFn: func(context.Context, uuid.UUID, models.PaymentStatus) error {
			t.Fatal("status update must not run for an already-canceled payment")
			return nil
		},
	}
	svc := newService(repo)

	svcErr := svc.CancelPayment(context.Background(), uuid.New())

	assert.Nil(t, svcErr)
}

func TestCancelPayment_NotFound(t *testing.T) {
	repo := &mockRepo{
		findFn: func(context.Context, uuid.UUID) (*models.Payment, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := newService(repo)

	svcErr := svc.CancelPayment(context.Background(), uuid.New())

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}
