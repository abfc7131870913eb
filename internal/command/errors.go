package command

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	// ErrDuplicateID indicates an identifier is already registered.
	ErrDuplicateID = errors.New("command: duplicate identifier")

	// ErrInvalidID indicates an empty identifier or one containing the separator.
	ErrInvalidID = errors.New("command: invalid identifier")

	// ErrNilHandler indicates a command was registered without a handler.
	ErrNilHandler = errors.New("command: nil handler")

	// ErrNotFound indicates no command has the given identifier.
	ErrNotFound = errors.New("command: not found")
)

// ErrUnterminatedQuote indicates a quote was opened but never closed.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// ParseError describes a line that could not be tokenized.
type ParseError struct {
	// Line is the input that failed to parse.
	Line string
	// Pos is the rune offset of the offending character.
	Pos int
	// Err is the underlying cause.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
