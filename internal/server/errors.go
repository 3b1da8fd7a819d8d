package server

import (
	"context"
	"errors"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeFromError maps service-layer errors to gRPC status codes based on the
// error type. Anything outside the service taxonomy is an internal fault.
func codeFromError(err error) codes.Code {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, service.ErrInvalidInput):
		return codes.InvalidArgument
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

// safeErrorMessage returns a sanitized, caller-facing message for err. Only
// messages produced by this process's own validation are forwarded; storage
// and driver detail stays in the logs and never reaches the wire.
func safeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return "user not found"
	case errors.Is(err, domain.ErrEmptyName):
		return "name must not be empty"
	case errors.Is(err, domain.ErrEmptySurname):
		return "surname must not be empty"
	case errors.Is(err, domain.ErrInvalidID):
		return "id must be positive"
	case errors.Is(err, service.ErrInvalidInput):
		return "invalid request"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline exceeded"
	default:
		return "an unexpected error occurred"
	}
}

// statusFromError converts a service-layer error into a gRPC status error.
// Internal faults carry the fixed, operation-specific internalMsg; the
// wrapped cause is for logs only.
func statusFromError(err error, internalMsg string) error {
	if err == nil {
		return nil
	}

	code := codeFromError(err)
	if code == codes.Internal {
		return status.Error(codes.Internal, internalMsg)
	}
	return status.Error(code, safeErrorMessage(err))
}
