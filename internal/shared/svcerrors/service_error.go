package svcerrors

import (
	"context"
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryUnavailable     = "unavailable"
	categoryCanceled        = "canceled"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
	errorCodeCanceled          = "SYS_4990"
)

// statusClientClosedRequest is the nginx convention for a client that went away mid-request.
const statusClientClosedRequest = 499

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidArgument,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 400,
	}
}

// NewUnavailableError creates a new ServiceError with category unavailable, e.g. during shutdown.
func NewUnavailableError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryUnavailable,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 503,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal server error",
		Cause:          cause,
		HttpStatusCode: 500,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// FromError converts err into a ServiceError. Context cancellation anywhere in the chain wins,
// since aborted scans wrap it in their own internal codes; then service errors; then everything
// else is an undefined internal error.
func FromError(err error) *ServiceError {
	if errors.Is(err, context.Canceled) {
		return &ServiceError{
			Category:       categoryCanceled,
			Code:           errorCodeCanceled,
			Message:        "request canceled",
			Cause:          err,
			HttpStatusCode: statusClientClosedRequest,
		}
	}
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr
	}
	return NewInternalErrorUndefined(err)
}

// AsServiceError extracts a ServiceError from the error chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // invalid_argument, unavailable, canceled or internal
	Code           string // service-owned stable code (e.g. QRY_1000)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int    // HTTP status code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// As extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
func As(err error) (*ServiceError, bool) {
	return AsServiceError(err)
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsCanceled() bool {
	return e.Category == categoryCanceled
}
