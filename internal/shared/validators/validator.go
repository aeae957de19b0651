package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const tagLogLevel = "loglevel"

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance with the project's custom tags registered:
//   - loglevel: the string is a level zerolog can parse (trace..panic, disabled)
func New() *Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(tagLogLevel, isLogLevel)
	return validate
}

func isLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}
