package api

import (
	"time"

	"github.com/go-playground/validator/v10"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/service"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return entity.Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("datestr", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(service.DateLayout, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(service.ClockLayout, fl.Field().String())
		return err == nil
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
