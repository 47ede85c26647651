package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yashrajoria/car-rental-backend/gateway/controllers"
	"github.com/yashrajoria/car-rental-backend/gateway/middleware"
)

// RegisterRoutes sets up the public gateway API.
func RegisterRoutes(r *gin.Engine, cars *controllers.CarsController, rentals *controllers.RentalController) {
	r.GET("/manage/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	api.GET("/cars", cars.ListCars)

	rental := api.Group("/rental")
	rental.Use(middleware.RequireIdentity())
	rental.POST("", rentals.CreateRental)
	rental.GET("", rentals.ListRentals)
	rental.GET("/:rentalUid", rentals.GetRental)
	rental.DELETE("/:rentalUid", rentals.CancelRental)
	rental.POST("/:rentalUid/finish", rentals.FinishRental)
}
