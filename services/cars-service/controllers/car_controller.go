package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/models"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/services"
)

type CarController struct {
	service services.CarService
}

func NewCarController(service services.CarService) *CarController {
	return &CarController{service: service}
}

// ListCars handles GET /api/v1/cars.
func (cc *CarController) ListCars(c *gin.Context) {
	page, size := paginationParams(c)
	showAll, _ := strconv.ParseBool(c.DefaultQuery("showAll", "false"))

	response, svcErr := cc.service.ListCars(c.Request.Context(), page, size, showAll)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, response)
}

// GetCar handles GET /api/v1/cars/:carUid.
func (cc *CarController) GetCar(c *gin.Context) {
	carUID, ok := carUIDParam(c)
	if !ok {
		return
	}

	car, svcErr := cc.service.GetCar(c.Request.Context(), carUID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, car)
}

// CreateCar handles POST /api/v1/cars.
func (cc *CarController) CreateCar(c *gin.Context) {
	var req models.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	car, svcErr := cc.service.CreateCar(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.JSON(http.StatusCreated, car)
}

// SetAvailability handles PATCH /api/v1/cars/:carUid/availability.
func (cc *CarController) SetAvailability(c *gin.Context) {
	carUID, ok := carUIDParam(c)
	if !ok {
		return
	}

	available, err := strconv.ParseBool(c.Query("available"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Query parameter 'available' must be true or false"})
		return
	}

	car, svcErr := cc.service.SetAvailability(c.Request.Context(), carUID, available)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, car)
}

func carUIDParam(c *gin.Context) (uuid.UUID, bool) {
	carUID, err := uuid.Parse(c.Param("carUid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid car UID"})
		return uuid.Nil, false
	}
	return carUID, true
}

func paginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
