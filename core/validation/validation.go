package validation

import (
	"fmt"
	"strings"

	"github.com/YourPalZack/junk-t/core/controller"
	"github.com/YourPalZack/junk-t/core/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs into echo (e.Validator) and turns struct tag
// violations into one AppError carrying a field-by-field breakdown.
// It is a pure gate: no record is created when any field is rejected.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewAppError(errors.ErrInvalidRequestData, "invalid request payload", err)
	}

	details := make([]controller.ValidationError, 0, len(verrs))
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldName(fe)
		msg := fieldMessage(fe)
		details = append(details, controller.NewValidationError(field, msg))
		parts = append(parts, field+" "+msg)
	}

	summary := "Validation failed: " + strings.Join(parts, "; ")
	return errors.NewAppError(errors.ErrInvalidRequestData, summary, err).WithDetails(details)
}

// fieldName lowercases the first rune so errors refer to the JSON field
// (name, email) rather than the Go field (Name, Email).
func fieldName(fe validator.FieldError) string {
	f := fe.Field()
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "datetime":
		return "must be a date in the form " + fe.Param()
	default:
		return "is invalid"
	}
}
