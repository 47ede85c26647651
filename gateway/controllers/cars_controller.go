package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yashrajoria/car-rental-backend/gateway/models"
	"github.com/yashrajoria/car-rental-backend/gateway/services"
)

const (
	defaultPage = 1
	defaultSize = 10
	maxSize     = 100
)

// CarsController handles the public car listing endpoint.
type CarsController struct {
	orchestrator services.RentalOrchestrator
}

// NewCarsController creates a new CarsController.
func NewCarsController(orchestrator services.RentalOrchestrator) *CarsController {
	return &CarsController{orchestrator: orchestrator}
}

// ListCars handles GET /api/v1/cars.
func (cc *CarsController) ListCars(ctx *gin.Context) {
	page, size := paginationParams(ctx)
	showAll, _ := strconv.ParseBool(ctx.DefaultQuery("showAll", "false"))

	cars, svcErr := cc.orchestrator.ListCars(ctx.Request.Context(), page, size, showAll)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, cars)
}

func paginationParams(ctx *gin.Context) (int, int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}

	size, err := strconv.Atoi(ctx.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil || size < 1 {
		size = defaultSize
	}
	if size > maxSize {
		size = maxSize
	}

	return page, size
}
