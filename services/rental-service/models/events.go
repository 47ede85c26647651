package models

import (
	"time"

	"github.com/google/uuid"
)

// Rental lifecycle event types published to SNS.
const (
	EventRentalCreated  = "rental_created"
	EventRentalCanceled = "rental_canceled"
	EventRentalFinished = "rental_finished"
)

// RentalEvent is the SNS message body for every lifecycle transition.
type RentalEvent struct {
	EventType  string       `json:"eventType"`
	RentalUID  uuid.UUID    `json:"rentalUid"`
	Username   string       `json:"username"`
	CarUID     uuid.UUID    `json:"carUid"`
	PaymentUID uuid.UUID    `json:"paymentUid"`
	Status     RentalStatus `json:"status"`
	Timestamp  time.Time    `json:"timestamp"`
}
