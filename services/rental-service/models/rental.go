package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for rental dates.
const DateLayout = "2006-01-02"

// RentalStatus is the rental lifecycle. FINISHED and CANCELED are terminal;
// the only legal transitions are out of IN_PROGRESS.
type RentalStatus string

const (
	RentalStatusInProgress RentalStatus = "IN_PROGRESS"
	RentalStatusFinished   RentalStatus = "FINISHED"
	RentalStatusCanceled   RentalStatus = "CANCELED"
)

// Rental is one row of the rental ledger.
type Rental struct {
	RentalUID  uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username   string       `gorm:"type:varchar(80);index;not null"`
	PaymentUID uuid.UUID    `gorm:"type:uuid;not null"`
	CarUID     uuid.UUID    `gorm:"type:uuid;not null"`
	DateFrom   time.Time    `gorm:"type:date;not null"`
	DateTo     time.Time    `gorm:"type:date;not null"`
	Status     RentalStatus `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time    `gorm:"autoCreateTime"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime"`
}

// View renders the ledger row in the wire shape.
func (r *Rental) View() RentalView {
	return RentalView{
		RentalUID:  r.RentalUID,
		Username:   r.Username,
		PaymentUID: r.PaymentUID,
		CarUID:     r.CarUID,
		DateFrom:   r.DateFrom.Format(DateLayout),
		DateTo:     r.DateTo.Format(DateLayout),
		Status:     r.Status,
	}
}

// RentalView is the JSON representation of a rental.
type RentalView struct {
	RentalUID  uuid.UUID    `json:"rentalUid"`
	Username   string       `json:"username"`
	PaymentUID uuid.UUID    `json:"paymentUid"`
	CarUID     uuid.UUID    `json:"carUid"`
	DateFrom   string       `json:"dateFrom"`
	DateTo     string       `json:"dateTo"`
	Status     RentalStatus `json:"status"`
}

// CreateRentalRecord is the payload for opening a rental.
type CreateRentalRecord struct {
	Username   string    `json:"username" binding:"required,max=80"`
	PaymentUID uuid.UUID `json:"paymentUid" binding:"required"`
	CarUID     uuid.UUID `json:"carUid" binding:"required"`
	DateFrom   string    `json:"dateFrom" binding:"required"`
	DateTo     string    `json:"dateTo" binding:"required"`
}

// ErrorResponse is the error body shape shared by all endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
}
