package errors

import (
	"fmt"
)

// ErrorType names the category of an AppError
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeInvalidInput ErrorType = "invalid_input"
	ErrorTypeOutOfRange   ErrorType = "out_of_range"
	ErrorTypeStorage      ErrorType = "storage"
	ErrorTypeCorruptData  ErrorType = "corrupt_data"
	ErrorTypePermission   ErrorType = "permission"
)

// String returns the category name, or "unknown" for the zero value
func (et ErrorType) String() string {
	if et == "" {
		return "unknown"
	}
	return string(et)
}

// IsUserError reports whether errors of this type are caused by what the
// user typed rather than by the system.
func (et ErrorType) IsUserError() bool {
	switch et {
	case ErrorTypeValidation, ErrorTypeInvalidInput, ErrorTypeOutOfRange:
		return true
	default:
		return false
	}
}

// AppError is the error returned across package boundaries. Message is
// safe to show to the user; Cause and Context are for logs.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// GetContext returns one context value recorded by the constructor
func (e *AppError) GetContext(key string) (interface{}, bool) {
	value, exists := e.Context[key]
	return value, exists
}
