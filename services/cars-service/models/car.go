package models

import (
	"time"

	"github.com/google/uuid"
)

// CarType is the fixed set of car categories.
type CarType string

const (
	CarTypeSedan    CarType = "SEDAN"
	CarTypeSUV      CarType = "SUV"
	CarTypeMinivan  CarType = "MINIVAN"
	CarTypeRoadster CarType = "ROADSTER"
)

// Car is a car record stored in Postgres. Available is true unless the car
// is held by exactly one active rental; only the availability PATCH mutates
// it.
type Car struct {
	CarUID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"carUid"`
	Brand              string    `gorm:"type:varchar(80);not null" json:"brand"`
	Model              string    `gorm:"type:varchar(80);not null" json:"model"`
	RegistrationNumber string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"registrationNumber"`
	Power              *int      `json:"power,omitempty"`
	Price              int       `gorm:"not null" json:"price"`
	Type               CarType   `gorm:"type:varchar(20);not null" json:"type"`
	Available          bool      `gorm:"not null;default:true" json:"available"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"-"`
}

// CreateCarRequest is the payload for adding a car to the fleet.
type CreateCarRequest struct {
	Brand              string  `json:"brand" binding:"required,max=80"`
	Model              string  `json:"model" binding:"required,max=80"`
	RegistrationNumber string  `json:"registrationNumber" binding:"required,max=20"`
	Power              *int    `json:"power" binding:"omitempty,gt=0"`
	Price              int     `json:"price" binding:"required,gt=0"`
	Type               CarType `json:"type" binding:"required,oneof=SEDAN SUV MINIVAN ROADSTER"`
}

// PaginationResponse is the paginated car listing.
type PaginationResponse struct {
	Page          int   `json:"page"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	Items         []Car `json:"items"`
}
