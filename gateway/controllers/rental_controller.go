package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/gateway/middleware"
	"github.com/yashrajoria/car-rental-backend/gateway/models"
	"github.com/yashrajoria/car-rental-backend/gateway/services"
)

// RentalController handles the public rental endpoints.
type RentalController struct {
	orchestrator services.RentalOrchestrator
}

// NewRentalController creates a new RentalController.
func NewRentalController(orchestrator services.RentalOrchestrator) *RentalController {
	return &RentalController{orchestrator: orchestrator}
}

// CreateRental handles POST /api/v1/rental.
func (rc *RentalController) CreateRental(ctx *gin.Context) {
	var req models.CreateRentalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request: " + err.Error()})
		return
	}

	username := middleware.CallerIdentity(ctx)
	resp, svcErr := rc.orchestrator.CreateRental(ctx.Request.Context(), username, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListRentals handles GET /api/v1/rental.
func (rc *RentalController) ListRentals(ctx *gin.Context) {
	username := middleware.CallerIdentity(ctx)

	rentals, svcErr := rc.orchestrator.ListRentals(ctx.Request.Context(), username)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, rentals)
}

// GetRental handles GET /api/v1/rental/:rentalUid.
func (rc *RentalController) GetRental(ctx *gin.Context) {
	rentalUID, ok := rentalUIDParam(ctx)
	if !ok {
		return
	}

	username := middleware.CallerIdentity(ctx)
	rental, svcErr := rc.orchestrator.GetRental(ctx.Request.Context(), username, rentalUID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, rental)
}

// CancelRental handles DELETE /api/v1/rental/:rentalUid.
func (rc *RentalController) CancelRental(ctx *gin.Context) {
	rentalUID, ok := rentalUIDParam(ctx)
	if !ok {
		return
	}

	username := middleware.CallerIdentity(ctx)
	if svcErr := rc.orchestrator.CancelRental(ctx.Request.Context(), username, rentalUID); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// FinishRental handles POST /api/v1/rental/:rentalUid/finish.
func (rc *RentalController) FinishRental(ctx *gin.Context) {
	rentalUID, ok := rentalUIDParam(ctx)
	if !ok {
		return
	}

	username := middleware.CallerIdentity(ctx)
	if svcErr := rc.orchestrator.FinishRental(ctx.Request.Context(), username, rentalUID); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}

	ctx.Status(http.StatusNoContent)
}

func rentalUIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	rentalUID, err := uuid.Parse(ctx.Param("rentalUid"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid rental UID"})
		return uuid.Nil, false
	}
	return rentalUID, true
}
