package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel errors shared across layers.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("external service unavailable")
)

// AppError carries a stable machine-readable code alongside the message
// and the underlying cause.
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError builds an AppError with an optional cause.
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Message: message, Cause: cause}
}

// gRPC error helpers for the server boundary.

func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
