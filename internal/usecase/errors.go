package usecase

import "errors"

// Error taxonomy surfaced by the engines. Each sentinel maps to a distinct
// HTTP error in the adapter layer; none of the user-correctable ones may be
// collapsed into a generic failure.
var (
	// ErrValidation covers malformed intake input: empty required fields,
	// syntactically invalid email, non-positive amounts, unknown enum values.
	ErrValidation = errors.New("validation error")

	ErrBookingNotFound     = errors.New("booking not found")
	ErrPackageNotFound     = errors.New("package not found")
	ErrTransactionNotFound = errors.New("payment transaction not found")

	// ErrIllegalTransition means the requested status change is not an edge of
	// the booking state graph. Never coerced to a "closest legal" state.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrPaymentPending rejects direct confirmation of a package booking whose
	// payment has not settled; only the reconciliation success path confirms
	// those.
	ErrPaymentPending = errors.New("payment pending")

	// ErrConflict means the optimistic check-then-write lost a race. Callers
	// retry the whole read-validate-write cycle.
	ErrConflict = errors.New("booking status changed concurrently")
)
