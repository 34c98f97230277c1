package apperrors

import (
	"errors"
	"fmt"
)

// Error categories. Every error that leaves a service wraps exactly one of these.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrPermissionDenied = errors.New("permission denied")
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrAlreadySubmitted = errors.New("already submitted")
)

// Resource specific errors
var (
	ErrStudentNotFound    = NewResourceNotFoundError("Student not found")
	ErrFeeNotFound        = NewResourceNotFoundError("Fee not found")
	ErrAssignmentNotFound = NewResourceNotFoundError("Assignment not found")
	ErrUserIDExists       = NewConflictError("User ID already exists")
	ErrInvalidCredentials = &CustomError{Err: ErrUnauthenticated, Message: "Invalid credentials"}
	ErrSubmissionExists   = &CustomError{Err: ErrAlreadySubmitted, Message: "Already submitted"}
)

// CustomError carries a user-visible message on top of one of the category errors
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...interface{}) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewUnauthenticatedError creates a new custom error for a missing or unknown credential
func NewUnauthenticatedError(message string) error {
	return &CustomError{
		Err:     ErrUnauthenticated,
		Message: message,
	}
}

// Message returns the user-visible message of err, or fallback when err carries none
func Message(err error, fallback string) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
