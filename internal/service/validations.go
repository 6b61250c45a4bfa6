package service

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/limbo/lockin/pkg/dateutil"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("canonical_date", func(fl validator.FieldLevel) bool {
			_, err := dateutil.Parse(fl.Field().String())
			return err == nil
		})
	})
}
