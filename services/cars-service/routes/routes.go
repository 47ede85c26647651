package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yashrajoria/car-rental-backend/services/cars-service/controllers"
)

func RegisterRoutes(r *gin.Engine, cars *controllers.CarController) {
	r.GET("/manage/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	api := r.Group("/api/v1/cars")
	{
		api.GET("", cars.ListCars)
		api.POST("", cars.CreateCar)
		api.GET("/:carUid", cars.GetCar)
		api.PATCH("/:carUid/availability", cars.SetAvailability)
	}
}
