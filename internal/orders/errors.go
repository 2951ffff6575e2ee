package orders

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound                 = errors.New("order not found")
	ErrUnsupportedPaymentMethod = errors.New("online payment is not available yet")
)

// ValidationError reports a malformed or incomplete creation payload. Field
// names the offending input so the client can point at it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IllegalTransitionError reports a status change the engine rejected.
type IllegalTransitionError struct {
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %q to %q", e.From, e.To)
}

// ConflictError reports a versioned status update that lost to a concurrent
// writer; the caller should re-read the order and retry.
type ConflictError struct {
	OrderID uuid.UUID
	Version int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("order %s was modified concurrently (expected version %d)", e.OrderID, e.Version)
}
