package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yashrajoria/car-rental-backend/services/payment-service/controllers"
)

func RegisterRoutes(r *gin.Engine, payments *controllers.PaymentController) {
	r.GET("/manage/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	api := r.Group("/api/v1/payment")
	{
		api.POST("", payments.CreatePayment)
		api.GET("/:paymentUid", payments.GetPayment)
		api.DELETE("/:paymentUid", payments.CancelPayment)
	}
}
