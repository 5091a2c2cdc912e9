package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rule and increment parsing errors
	ErrInvalidPattern   ErrorCode = "INVALID_PATTERN"
	ErrInvalidIncrement ErrorCode = "INVALID_INCREMENT"

	// Batch errors. All of these halt the batch.
	ErrForceAndInteractive         ErrorCode = "FORCE_AND_INTERACTIVE"
	ErrInvalidFile                 ErrorCode = "INVALID_FILE"
	ErrCannotRenameFileToDirectory ErrorCode = "CANNOT_RENAME_TO_DIRECTORY"
	ErrSkippingOverwrite           ErrorCode = "SKIPPING_OVERWRITE"
	ErrInvalidEncoding             ErrorCode = "INVALID_ENCODING"
	ErrIO                          ErrorCode = "IO"
)

// RenameError represents a structured error with code and details
type RenameError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RenameError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RenameError) Unwrap() error {
	return e.Wrapped
}

// Is matches any *RenameError carrying the same code
func (e *RenameError) Is(target error) bool {
	var targetErr *RenameError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RenameError with the given code and message
func New(code ErrorCode, message string) *RenameError {
	return &RenameError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RenameError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RenameError {
	return &RenameError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RenameError
func Wrap(err error, code ErrorCode, message string) *RenameError {
	if err == nil {
		return nil
	}
	return &RenameError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RenameError {
	if err == nil {
		return nil
	}
	return &RenameError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RenameError) WithDetail(key string, value interface{}) *RenameError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RenameError) WithDetails(details map[string]interface{}) *RenameError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var renameErr *RenameError
	if errors.As(err, &renameErr) {
		return renameErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RenameError
func GetErrorCode(err error) ErrorCode {
	var renameErr *RenameError
	if errors.As(err, &renameErr) {
		return renameErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RenameError
func GetErrorDetails(err error) map[string]interface{} {
	var renameErr *RenameError
	if errors.As(err, &renameErr) {
		return renameErr.Details
	}
	return nil
}
