package types

import "errors"

// Standard errors returned by the ledger engine. Presentation layers branch
// on these with errors.Is; the engine wraps them with operation context.
var (
	// ErrValidation reports malformed or out-of-range input: an empty name,
	// a non-positive quantity or amount, a date that is not an ISO date.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound reports a reference to a household or inventory item that
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock reports a distribution request that exceeds the
	// available quantity of an inventory line.
	ErrInsufficientStock = errors.New("insufficient stock")
)
