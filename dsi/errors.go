package dsi

import "github.com/pkg/errors"

// Errors returned by the display core. Hardware failures are wrapped with
// context and keep matching these with errors.Is.
var (
	// ErrInvalidConfig reports invalid parameters or collaborators.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotSupported reports a capability that the hardware or the panel
	// does not provide.
	ErrNotSupported = errors.New("not supported")

	// ErrInvalidState reports an operation requested in the wrong sequencing
	// state.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound reports a lookup that found nothing.
	ErrNotFound = errors.New("not found")

	// ErrTimeout reports a hardware confirmation that did not arrive in time.
	ErrTimeout = errors.New("timeout")
)
