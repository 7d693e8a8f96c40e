package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrUnauthorized      = errors.New("not allowed to perform this action")
	ErrSlotUnavailable   = errors.New("slot is not available for booking")
	ErrCapacityExceeded  = errors.New("slot capacity exceeded")
	ErrSlotExpired       = errors.New("slot date has already passed")
	ErrSlotInUse         = errors.New("slot has active visit requests")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRequestTerminal   = errors.New("visit request is already closed")

	// ErrStoreUnavailable is the only kind a caller may retry.
	ErrStoreUnavailable = errors.New("store temporarily unavailable")
)

// ValidationError carries per-field messages from request validation.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Invalid builds a single-field validation error.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// IsRetryable reports whether err may be retried by the caller.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
