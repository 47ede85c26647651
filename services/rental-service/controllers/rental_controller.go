package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/models"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/services"
)

type RentalController struct {
	service services.RentalService
}

func NewRentalController(service services.RentalService) *RentalController {
	return &RentalController{service: service}
}

// CreateRental handles POST /api/v1/rental.
func (rc *RentalController) CreateRental(c *gin.Context) {
	var record models.CreateRentalRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	rental, svcErr := rc.service.CreateRental(c.Request.Context(), &record)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.JSON(http.StatusCreated, rental)
}

// GetRental handles GET /api/v1/rental/:rentalUid.
func (rc *RentalController) GetRental(c *gin.Context) {
	rentalUID, username, ok := rentalScope(c)
	if !ok {
		return
	}

	rental, svcErr := rc.service.GetRental(c.Request.Context(), rentalUID, username)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, rental)
}

// ListRentals handles GET /api/v1/rental.
func (rc *RentalController) ListRentals(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Query parameter 'username' is required"})
		return
	}

	rentals, svcErr := rc.service.ListRentals(c.Request.Context(), username)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// CancelRental handles DELETE /api/v1/rental/:rentalUid.
func (rc *RentalController) CancelRental(c *gin.Context) {
	rentalUID, username, ok := rentalScope(c)
	if !ok {
		return
	}

	if svcErr := rc.service.CancelRental(c.Request.Context(), rentalUID, username); svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.Status(http.StatusNoContent)
}

// FinishRental handles POST /api/v1/rental/:rentalUid/finish.
func (rc *RentalController) FinishRental(c *gin.Context) {
	rentalUID, username, ok := rentalScope(c)
	if !ok {
		return
	}

	if svcErr := rc.service.FinishRental(c.Request.Context(), rentalUID, username); svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.Status(http.StatusNoContent)
}

func rentalScope(c *gin.Context) (uuid.UUID, string, bool) {
	rentalUID, err := uuid.Parse(c.Param("rentalUid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid rental UID"})
		return uuid.Nil, "", false
	}

	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Query parameter 'username' is required"})
		return uuid.Nil, "", false
	}
	return rentalUID, username, true
}
