package service

import (
	"errors"
	"fmt"

	"github.com/streamsvc/userd/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent the complete taxonomy callers may check for with
// errors.Is(). The transport layer maps them onto status codes and must never
// put the wrapped cause on the wire.
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped so the cause stays available for logging
// 3. Callers use errors.Is to check for specific error conditions
// 4. The server layer maps service errors to gRPC status codes
var (
	// ErrNotFound indicates the requested entity does not exist.
	// The server layer should map this to NOT_FOUND.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the request carried values that fail
	// validation. The server layer should map this to INVALID_ARGUMENT.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an unexpected failure inside the service or its
	// storage. The server layer should map this to INTERNAL; the wrapped
	// cause is for logs only.
	ErrInternal = errors.New("internal error")
)

// mapStoreError folds a store error into the service taxonomy. The original
// error stays in the chain, so logs keep the storage detail while callers
// only ever match the service sentinels.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, store.ErrDuplicate):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}
