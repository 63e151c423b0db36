package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/yusufoz/coursehub/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateStruct runs the declarative validate tags on a bound request body
// and converts any violations into a per-field validation error.
func ValidateStruct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, err.Error())
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = formatValidationError(fe)
	}

	return apperrors.NewValidationError("Validation failed", fields)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "gte":
		return e.Field() + " must be at least " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
