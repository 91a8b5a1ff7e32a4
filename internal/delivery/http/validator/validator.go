// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	"bikeshare/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with the gateway's custom rules registered.
func New() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// halfstep accepts ratings from 0 to 5 in steps of 0.5.
	_ = v.RegisterValidation("halfstep", func(fl validator.FieldLevel) bool {
		return entity.ValidRating(fl.Field().Float())
	})

	return &CustomValidator{validate: v}
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return errors.New(describe(validationErrs))
		}

		return errors.WithStack(err)
	}

	return nil
}

// describe renders field errors as "field: rule" pairs.
func describe(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		part := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			part += "=" + fe.Param()
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, "; ")
}
