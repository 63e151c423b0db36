package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrCourseNotFound   = errors.New("course not found")

	// Authentication errors
	ErrUnauthorized = errors.New("authentication required")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Store errors
	ErrStoreFailure = errors.New("store operation failed")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Fields  map[string]string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithFields attaches per-field failure reasons to the error
func (e *CustomError) WithFields(fields map[string]string) *CustomError {
	e.Fields = fields
	return e
}

// NewCustomError creates a CustomError wrapping the given sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation failure naming the offending fields.
func NewValidationError(message string, fields map[string]string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Fields:  fields,
	}
}

// NewNotFoundError creates a not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrCourseNotFound,
		Message: message,
	}
}

// NewStoreError wraps a remote store failure, preserving its message verbatim.
func NewStoreError(err error) error {
	return &CustomError{
		Err:     ErrStoreFailure,
		Message: err.Error(),
	}
}

// FieldsOf extracts the per-field reasons from an error when present.
func FieldsOf(err error) map[string]string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Fields
	}
	return nil
}
