package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different types of errors in the system
type ErrorType string

const (
	// ErrorTypeMalformedLabel indicates a time-range label that does not
	// match the expected two-part hyphen-separated pattern
	ErrorTypeMalformedLabel ErrorType = "MALFORMED_LABEL"

	// ErrorTypeInvalidPeriod indicates an unrecognized day period
	ErrorTypeInvalidPeriod ErrorType = "INVALID_PERIOD"

	// ErrorTypeInvalidTransition indicates an appointment lifecycle
	// invariant violation (e.g. paying an unapproved appointment)
	ErrorTypeInvalidTransition ErrorType = "INVALID_TRANSITION"

	// ErrorTypeFetchFailed indicates a network/backend error on a read
	ErrorTypeFetchFailed ErrorType = "FETCH_FAILED"

	// ErrorTypeActionFailed indicates a network/backend error on a write
	ErrorTypeActionFailed ErrorType = "ACTION_FAILED"

	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewMalformedLabelError creates a new malformed label error
func NewMalformedLabelError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeMalformedLabel,
		Message: message,
	}
}

// NewInvalidPeriodError creates a new invalid period error
func NewInvalidPeriodError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidPeriod,
		Message: message,
	}
}

// NewInvalidTransitionError creates a new invalid transition error
func NewInvalidTransitionError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidTransition,
		Message: message,
	}
}

// NewFetchFailedError creates a new fetch failed error
func NewFetchFailedError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeFetchFailed,
		Message: message,
		Err:     err,
	}
}

// NewActionFailedError creates a new action failed error
func NewActionFailedError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeActionFailed,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInternal,
		Message: message,
		Err:     err,
	}
}

// IsType reports whether err is (or wraps) an AppError of the given type
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}
