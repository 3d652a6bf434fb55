package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewOutOfRangeError creates an error for a position outside [1, count].
func NewOutOfRangeError(position int, count int) *AppError {
	var message string
	if count == 0 {
		message = fmt.Sprintf("position %d is out of range: the list is empty", position)
	} else {
		message = fmt.Sprintf("position %d is out of range: choose a number between 1 and %d", position, count)
	}
	return &AppError{
		Type:    ErrorTypeOutOfRange,
		Message: message,
		Code:    "OUT_OF_RANGE",
		Context: map[string]interface{}{
			"position": position,
			"count":    count,
		},
	}
}

// NewStorageError creates a new storage error. Filesystem permission
// failures are reported as permission errors instead.
func NewStorageError(operation string, cause error) *AppError {
	if errors.Is(cause, fs.ErrPermission) {
		return NewPermissionError(operation, cause)
	}
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewCorruptDataError creates an error for a stored snapshot that cannot be parsed
func NewCorruptDataError(source string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptData,
		Message: fmt.Sprintf("stored data could not be read: %s", source),
		Code:    "CORRUPT_DATA",
		Cause:   cause,
		Context: map[string]interface{}{
			"source": source,
		},
	}
}

// NewPermissionError creates a new permission error
func NewPermissionError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("permission denied: %s", operation),
		Code:    "PERMISSION_DENIED",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a single-line, user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidInput, ErrorTypeOutOfRange, ErrorTypePermission:
			return appErr.Message
		case ErrorTypeStorage:
			return "Your changes could not be saved. Please try again."
		case ErrorTypeCorruptData:
			return "Saved todos could not be read; starting with an empty list."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return !appErr.Type.IsUserError()
	}
	return true // Unknown errors should be logged
}
