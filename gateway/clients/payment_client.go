package clients

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/gateway/models"
)

// PaymentHTTPClient talks to the payment service over HTTP.
type PaymentHTTPClient struct {
	httpClient
}

// NewPaymentClient creates a PaymentHTTPClient for the given base URL.
func NewPaymentClient(cfg Config) *PaymentHTTPClient {
	return &PaymentHTTPClient{newHTTPClient(cfg)}
}

type createPaymentRequest struct {
	Price int `json:"price"`
}

// CreatePayment authorizes a payment for the given price. The payment service
// has no decline path; a created payment is always PAID.
func (c *PaymentHTTPClient) CreatePayment(ctx context.Context, price int) (*models.Payment, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/v1/payment", nil, createPaymentRequest{Price: price})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, statusError(resp)
	}

	var out models.Payment
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPayment fetches a payment by UID.
func (c *PaymentHTTPClient) GetPayment(ctx context.Context, paymentUID uuid.UUID) (*models.Payment, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/v1/payment/"+paymentUID.String(), nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var out models.Payment
	if err := decode(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelPayment voids a payment. Cancelling an already-canceled payment is a
// no-op success on the payment service side.
func (c *PaymentHTTPClient) CancelPayment(ctx context.Context, paymentUID uuid.UUID) error {
	resp, err := c.do(ctx, http.MethodDelete, "/api/v1/payment/"+paymentUID.String(), nil, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return statusError(resp)
	}
	resp.Body.Close()
	return nil
}
