package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yashrajoria/car-rental-backend/services/rental-service/controllers"
)

func RegisterRoutes(r *gin.Engine, rentals *controllers.RentalController) {
	r.GET("/manage/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	api := r.Group("/api/v1/rental")
	{
		api.POST("", rentals.CreateRental)
		api.GET("", rentals.ListRentals)
		api.GET("/:rentalUid", rentals.GetRental)
		api.DELETE("/:rentalUid", rentals.CancelRental)
		api.POST("/:rentalUid/finish", rentals.FinishRental)
	}
}
