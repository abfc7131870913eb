// Package terminal provides the console the line editor draws on.
//
// Terminal is the narrow surface the editor needs: read one key, write
// text at the cursor, and move, query or hide the cursor. Writes behave
// like an xterm: "\n" is a carriage return plus line feed, text that
// reaches the last column leaves a pending wrap that the next character
// or newline resolves, and feeding past the bottom line scrolls the
// screen up.
//
// Screen implements Terminal on top of tcell. Memory implements it on an
// in-memory grid with a scripted key queue and is what the tests use.
package terminal

import (
	"errors"

	"github.com/dshills/keyline/internal/input/key"
)

// ErrClosed is returned by ReadKey once no more keys can arrive.
var ErrClosed = errors.New("terminal: closed")

// Terminal is a character-cell console.
type Terminal interface {
	// ReadKey blocks until a key is pressed.
	ReadKey() (key.Event, error)

	// Write writes s at the cursor.
	Write(s string)

	// WriteLine writes s followed by a newline.
	WriteLine(s string)

	// CursorPosition returns the cursor column and row.
	CursorPosition() (col, row int)

	// SetCursorPosition moves the cursor, clamped to the screen.
	SetCursorPosition(col, row int)

	// BufferWidth returns the width of the screen in cells.
	BufferWidth() int

	// SetCursorVisible shows or hides the cursor.
	SetCursorVisible(visible bool)
}
