package script

import "errors"

// Errors for script operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("script: lua state is closed")

	// ErrTimeout is returned when a call runs past its deadline.
	ErrTimeout = errors.New("script: execution timeout")
)
