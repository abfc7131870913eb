package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press.
//
// Events are comparable; two events are the same key press exactly when
// they are ==. Use Normalize before comparing a raw terminal event with a
// binding.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if the event should be inserted as text: a
// printable character with no Ctrl, Alt or Meta held.
func (e Event) IsChar() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events Shift alone does not count, since it is already
// reflected in the character.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers.Without(ModShift) != ModNone
	}
	return e.Modifiers != ModNone
}

// Normalize returns the event in the form used for binding lookup.
// Shift is dropped from character events, and Ctrl/Alt/Meta letters are
// folded to lowercase so that "Ctrl+A" and "Ctrl+a" bind the same key.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	if e.Modifiers != ModNone {
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// WithModifier returns a copy with the specified modifier added.
func (e Event) WithModifier(mod Modifier) Event {
	e.Modifiers = e.Modifiers.With(mod)
	return e
}

// String returns a canonical string representation.
// Examples: "a", "C-s", "Enter", "A-Enter", "Space".
func (e Event) String() string {
	mods := e.Modifiers
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}
	name := e.name(false)
	if prefix := mods.ShortString(); prefix != "" {
		return prefix + "-" + name
	}
	return name
}

// VimString returns a Vim-style string representation.
// Examples: "a", "<C-s>", "<CR>", "<A-CR>", "<Space>".
func (e Event) VimString() string {
	if e.IsRune() && !e.IsModified() && e.Rune != ' ' {
		return string(e.Rune)
	}
	mods := e.Modifiers
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}
	name := e.name(true)
	if prefix := mods.ShortString(); prefix != "" {
		name = prefix + "-" + name
	}
	return "<" + name + ">"
}

// shortKeyNames are the abbreviated names used when rendering events.
var shortKeyNames = map[Key]string{
	KeyEscape:    "Esc",
	KeyBackspace: "BS",
	KeyDelete:    "Del",
	KeyInsert:    "Ins",
}

func (e Event) name(vim bool) string {
	switch {
	case e.Key == KeyRune && e.Rune == ' ':
		return "Space"
	case e.Key == KeyRune:
		if vim {
			return strings.ToLower(string(e.Rune))
		}
		return string(e.Rune)
	case e.Key == KeyEnter && vim:
		return "CR"
	}
	if n, ok := shortKeyNames[e.Key]; ok {
		return n
	}
	return e.Key.String()
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Normalize() == parsed.Normalize()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
