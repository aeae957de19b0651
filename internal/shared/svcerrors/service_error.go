package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryIOFailure       = "io_failure"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

const (
	exitCodeFailure = 1
	exitCodeUsage   = 2
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: exitCodeUsage,
	}
}

// NewIOFailureError creates a new ServiceError with category io_failure.
// IO failures are not recoverable and abort the run.
func NewIOFailureError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryIOFailure,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: exitCodeFailure,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: exitCodeFailure,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ExitCode returns the process exit status for err: 0 for nil, the
// ServiceError's code when err wraps one, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr.ExitCode
	}
	return exitCodeFailure
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_argument, io_failure or internal
	Code     string // service-owned stable code (e.g. RPT_1000)
	Message  string // human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit status
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsIOFailure() bool {
	return e.Category == categoryIOFailure
}
