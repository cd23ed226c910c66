package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle is returned when a Handle does not resolve to a live slot.
	ErrInvalidHandle = errors.New("arena: invalid handle")

	// ErrCapacityExceeded is the panic value raised when an Arena would grow
	// beyond MaxSlots.
	ErrCapacityExceeded = errors.New("arena: capacity exceeded")

	// ErrMutationDuringUpdate is wrapped by the panic value raised when an
	// Update callback mutates the arena it was called on.
	ErrMutationDuringUpdate = errors.New("arena: mutation during update")
)

// Reason describes why a Handle failed to resolve.
type Reason uint8

const (
	// ReasonNone means the Handle resolved.
	ReasonNone Reason = iota
	// ReasonOutOfRange means the index is beyond the arena's slots.
	ReasonOutOfRange
	// ReasonStale means the slot's generation moved past the Handle's.
	ReasonStale
	// ReasonVacant means the generation matches but the slot holds nothing.
	ReasonVacant
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonOutOfRange:
		return "out of range"
	case ReasonStale:
		return "stale generation"
	case ReasonVacant:
		return "vacant slot"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// HandleError reports a Handle rejected by an operation.
//
// It wraps ErrInvalidHandle, so errors.Is(err, ErrInvalidHandle) holds.
type HandleError struct {
	Op     string
	Handle Handle
	Reason Reason
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("arena: %s %s: %s", e.Op, e.Handle, e.Reason)
}

func (e *HandleError) Unwrap() error { return ErrInvalidHandle }

// UseAfterInvalidateError is the panic value raised by View.Deref when the
// viewed slot was invalidated after the View was constructed.
type UseAfterInvalidateError struct {
	Handle Handle
	Reason Reason
}

func (e *UseAfterInvalidateError) Error() string {
	return fmt.Sprintf("arena: use after invalidate: %s (%s)", e.Handle, e.Reason)
}

func (e *UseAfterInvalidateError) Unwrap() error { return ErrInvalidHandle }
