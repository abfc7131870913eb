package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrNoTerminal indicates Options carried no terminal.
	ErrNoTerminal = errors.New("app: no terminal")

	// ErrAlreadyRunning indicates Run was called while running.
	ErrAlreadyRunning = errors.New("app: already running")
)

// InitError represents a failure while wiring a component.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("app: initialize %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
