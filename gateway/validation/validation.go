package validation

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yashrajoria/car-rental-backend/gateway/services"
)

// Register installs the custom binding validators on gin's validator engine.
// Call once from main before serving.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("rentaldate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(services.DateLayout, fl.Field().String())
		return err == nil
	})
}
