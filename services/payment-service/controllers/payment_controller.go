package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yashrajoria/car-rental-backend/services/payment-service/models"
	"github.com/yashrajoria/car-rental-backend/services/payment-service/services"
)

type PaymentController struct {
	service services.PaymentService
}

func NewPaymentController(service services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

// CreatePayment handles POST /api/v1/payment.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	payment, svcErr := pc.service.CreatePayment(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GetPayment handles GET /api/v1/payment/:paymentUid.
func (pc *PaymentController) GetPayment(c *gin.Context) {
	paymentUID, ok := paymentUIDParam(c)
	if !ok {
		return
	}

	payment, svcErr := pc.service.GetPayment(c.Request.Context(), paymentUID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, payment)
}

// CancelPayment handles DELETE /api/v1/payment/:paymentUid.
func (pc *PaymentController) CancelPayment(c *gin.Context) {
	paymentUID, ok := paymentUIDParam(c)
	if !ok {
		return
	}

	if svcErr := pc.service.CancelPayment(c.Request.Context(), paymentUID); svcErr != nil {
		c.JSON(svcErr.StatusCode, models.ErrorResponse{Message: svcErr.Message})
		return
	}
	c.Status(http.StatusNoContent)
}

func paymentUIDParam(c *gin.Context) (uuid.UUID, bool) {
	paymentUID, err := uuid.Parse(c.Param("paymentUid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid payment UID"})
		return uuid.Nil, false
	}
	return paymentUID, true
}
