package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"OutOfRange", ErrorTypeOutOfRange, "out_of_range"},
		{"Storage", ErrorTypeStorage, "storage"},
		{"CorruptData", ErrorTypeCorruptData, "corrupt_data"},
		{"Permission", ErrorTypePermission, "permission"},
		{"Zero value", ErrorType(""), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestErrorType_IsUserError(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  bool
	}{
		{ErrorTypeValidation, true},
		{ErrorTypeInvalidInput, true},
		{ErrorTypeOutOfRange, true},
		{ErrorTypeStorage, false},
		{ErrorTypeCorruptData, false},
		{ErrorTypePermission, false},
		{ErrorType(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.errorType.String(), func(t *testing.T) {
			if got := tt.errorType.IsUserError(); got != tt.expected {
				t.Errorf("ErrorType.IsUserError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "invalid input",
			},
			expected: "validation: invalid input",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeStorage,
				Message: "connection failed",
				Cause:   errors.New("timeout"),
			},
			expected: "storage: connection failed (caused by: timeout)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk gone")
	appError := NewStorageError("load todos", cause)

	if !errors.Is(appError, cause) {
		t.Errorf("errors.Is should find the cause through Unwrap")
	}
}

func TestAppError_IsType(t *testing.T) {
	appError := NewOutOfRangeError(2, 1)

	if !appError.IsType(ErrorTypeOutOfRange) {
		t.Errorf("AppError.IsType() = false, want true for matching type")
	}
	if appError.IsType(ErrorTypeStorage) {
		t.Errorf("AppError.IsType() = true, want false for different type")
	}
}

func TestAppError_GetContext(t *testing.T) {
	appError := NewStorageError("save todos", errors.New("disk full"))

	value, exists := appError.GetContext("operation")
	if !exists || value != "save todos" {
		t.Errorf("GetContext(operation) = %v, %v", value, exists)
	}

	if _, exists := appError.GetContext("nonexistent"); exists {
		t.Errorf("GetContext should return false for a missing key")
	}

	bare := &AppError{Type: ErrorTypeValidation}
	if _, exists := bare.GetContext("field"); exists {
		t.Errorf("GetContext should return false when context is nil")
	}
}
