package errors

import (
	"errors"
	"fmt"
)

// Process exit statuses
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
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

// NewUsageError creates an error for a malformed command line
func NewUsageError(message string, expectedFormat string) *AppError {
	return &AppError{
		Type:    ErrorTypeUsage,
		Message: fmt.Sprintf("%s, expected a date in the format: %s", message, expectedFormat),
		Code:    "USAGE",
		Context: map[string]interface{}{
			"expected_format": expectedFormat,
		},
	}
}

// NewParseError creates an error for a date argument that does not match the expected layout
func NewParseError(value string, expectedFormat string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf("error parsing date %q, expecting format: %s", value, expectedFormat),
		Code:    "PARSE_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"value":           value,
			"expected_format": expectedFormat,
		},
	}
}

// NewRangeError creates an error for a span that cannot be represented
func NewRangeError(operation string, value interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeRange,
		Message: fmt.Sprintf("span too large to represent: %s", operation),
		Code:    "OUT_OF_RANGE",
		Context: map[string]interface{}{
			"operation": operation,
			"value":     value,
		},
	}
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfiguration,
		Message: fmt.Sprintf("invalid configuration: %s", field),
		Code:    "CONFIGURATION_INVALID",
		Cause:   cause,
		Context: map[string]interface{}{
			"field": field,
		},
	}
}

// NewOutputError creates an error for a failed write to the display
func NewOutputError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: fmt.Sprintf("output failed: %s", operation),
		Code:    "OUTPUT_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
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

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidInput, ErrorTypeUsage, ErrorTypeRange:
			return appErr.Message
		case ErrorTypeConfiguration:
			if appErr.Cause != nil {
				return fmt.Sprintf("%s (%v)", appErr.Message, appErr.Cause)
			}
			return appErr.Message
		case ErrorTypeOutput:
			return "Unable to write to the terminal."
		default:
			return "An unexpected error occurred."
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

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsErrorType(err, ErrorTypeUsage) {
		return ExitUsage
	}
	return ExitError
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeInvalidInput, ErrorTypeUsage, ErrorTypeConfiguration:
			return false // user errors, already reported
		default:
			return true
		}
	}
	return true
}
