package models

import (
	"github.com/google/uuid"
)

// CarType is the fixed set of car categories served by the cars service.
type CarType string

const (
	CarTypeSedan    CarType = "SEDAN"
	CarTypeSUV      CarType = "SUV"
	CarTypeMinivan  CarType = "MINIVAN"
	CarTypeRoadster CarType = "ROADSTER"
)

// PaymentStatus values as stored by the payment service.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusCanceled PaymentStatus = "CANCELED"
)

// RentalStatus values as stored by the rental service. FINISHED and CANCELED
// are terminal.
type RentalStatus string

const (
	RentalStatusInProgress RentalStatus = "IN_PROGRESS"
	RentalStatusFinished   RentalStatus = "FINISHED"
	RentalStatusCanceled   RentalStatus = "CANCELED"
)

// Car is the full car record returned by the cars service.
type Car struct {
	CarUID             uuid.UUID `json:"carUid"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registrationNumber"`
	Power              *int      `json:"power,omitempty"`
	Price              int       `json:"price"`
	Type               CarType   `json:"type"`
	Available          bool      `json:"available"`
}

// PaginationResponse is the paginated car listing returned by the cars service
// and proxied through the gateway unchanged.
type PaginationResponse struct {
	Page          int   `json:"page"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	Items         []Car `json:"items"`
}

// Payment is the payment record returned by the payment service.
type Payment struct {
	PaymentUID uuid.UUID     `json:"paymentUid"`
	Status     PaymentStatus `json:"status"`
	Price      int           `json:"price"`
}

// Rental is the rental record returned by the rental service.
type Rental struct {
	RentalUID  uuid.UUID    `json:"rentalUid"`
	Username   string       `json:"username"`
	PaymentUID uuid.UUID    `json:"paymentUid"`
	CarUID     uuid.UUID    `json:"carUid"`
	DateFrom   string       `json:"dateFrom"`
	DateTo     string       `json:"dateTo"`
	Status     RentalStatus `json:"status"`
}

// CreateRentalRecord is the payload the gateway sends to the rental service.
type CreateRentalRecord struct {
	Username   string    `json:"username"`
	PaymentUID uuid.UUID `json:"paymentUid"`
	CarUID     uuid.UUID `json:"carUid"`
	DateFrom   string    `json:"dateFrom"`
	DateTo     string    `json:"dateTo"`
}

// CarInfo is the car summary embedded in rental responses. Descriptive fields
// stay zero-valued when the enrichment lookup fails.
type CarInfo struct {
	CarUID             uuid.UUID `json:"carUid"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	RegistrationNumber string    `json:"registrationNumber"`
}

// PaymentInfo is the payment summary embedded in rental responses.
type PaymentInfo struct {
	PaymentUID uuid.UUID     `json:"paymentUid"`
	Status     PaymentStatus `json:"status"`
	Price      int           `json:"price"`
}

// CreateRentalRequest is the public payload for POST /api/v1/rental.
type CreateRentalRequest struct {
	CarUID   uuid.UUID `json:"carUid" binding:"required"`
	DateFrom string    `json:"dateFrom" binding:"required,rentaldate"`
	DateTo   string    `json:"dateTo" binding:"required,rentaldate"`
}

// CreateRentalResponse is returned after a successful create-rental workflow.
type CreateRentalResponse struct {
	RentalUID uuid.UUID    `json:"rentalUid"`
	Status    RentalStatus `json:"status"`
	CarUID    uuid.UUID    `json:"carUid"`
	DateFrom  string       `json:"dateFrom"`
	DateTo    string       `json:"dateTo"`
	Payment   PaymentInfo  `json:"payment"`
}

// RentalResponse is the enriched rental summary for the read path.
type RentalResponse struct {
	RentalUID uuid.UUID    `json:"rentalUid"`
	Status    RentalStatus `json:"status"`
	DateFrom  string       `json:"dateFrom"`
	DateTo    string       `json:"dateTo"`
	Car       CarInfo      `json:"car"`
	Payment   PaymentInfo  `json:"payment"`
}

// ErrorResponse is the single error body shape for every gateway failure.
type ErrorResponse struct {
	Message string `json:"message"`
}
