package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the payment lifecycle. Payments are born PAID and can
// only move to CANCELED.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

// Payment is a settled charge for one rental.
type Payment struct {
	PaymentUID uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"paymentUid"`
	Status     PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Price      int           `gorm:"not null" json:"price"`
	CreatedAt  time.Time     `gorm:"autoCreateTime" json:"-"`
	UpdatedAt  time.Time     `gorm:"autoUpdateTime" json:"-"`
}

// CreatePaymentRequest is the payload for charging a rental.
type CreatePaymentRequest struct {
	Price int `json:"price" binding:"required,gt=0"`
}

// ErrorResponse is the error body shape shared by all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}
