// Package validator adapts go-playground/validator to echo.
package validator

import (
	"achaperto/internal/domain/entity"
	"achaperto/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// TagCoordinates accepts an empty string or a "lat,lng" pair inside the valid range.
const TagCoordinates = "coordinates"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New returns a validator with the request-specific tags registered.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation(TagCoordinates, validateCoordinates)

	return &CustomValidator{validate: v}
}

// Validate runs struct validation.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func validateCoordinates(fl playground.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	_, err := entity.ParseCoordinate(raw)

	return err == nil
}
