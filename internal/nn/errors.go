package nn

import "errors"

// Fault taxonomy for the descriptor model. Every error returned by this
// package wraps one of these sentinels, so callers classify failures
// with errors.Is.
var (
	// ErrInvalidArgument reports malformed constructor or attach input:
	// wrong rank, wrong axis length, a non-positive or negative shape
	// value, or an unrecognized element-type tag.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOperation reports a structurally disallowed action, such
	// as attaching parameters to a parameter-free layer.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidState reports a derived-quantity query made before the
	// required state (attached data, element-type tag) is established.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotImplemented reports an operation a Descriptor implementation
	// has not supplied. The built-in variants define every operation;
	// this exists for external implementations.
	ErrNotImplemented = errors.New("not implemented")
)
