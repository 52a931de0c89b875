// Package validator wires go-playground/validator into echo's
// request-validation hook.
package validator

import (
	domainerrors "storepulse/internal/domain/errors"
	"storepulse/internal/errors"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type structValidator struct {
	validate *validatorv10.Validate
}

// New creates the echo.Validator used by every handler's c.Validate call.
func New() echo.Validator {
	return &structValidator{validate: validatorv10.New()}
}

// Validate runs the struct tags and maps failures onto the validation error,
// so the error middleware renders them as a 400 envelope.
func (v *structValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validatorv10.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return domainerrors.ErrValidation.WithMessage(describe(fieldErrs[0]))
		}

		return domainerrors.ErrValidation.WrapMessage(err.Error())
	}

	return nil
}

// describe renders a single field failure in the wording clients expect.
func describe(fieldErr validatorv10.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "Invalid email format"
	case "min", "max":
		if field == "Name" {
			return "Name must be between 20 and 60 characters"
		}
		if field == "Address" {
			return "Address must be at most 400 characters"
		}
	}

	return field + " is invalid"
}
