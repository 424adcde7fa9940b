package httpadapter

import (
	"islandfarm/internal/domain/farm"
	"islandfarm/internal/domain/world"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("tool", func(fl validator.FieldLevel) bool {
		_, ok := farm.ParseTool(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		_, ok := world.ParseDirection(fl.Field().String())
		return ok
	})
	return v
}
