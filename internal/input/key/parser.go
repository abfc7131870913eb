package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Key names: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+S", "Alt+Enter", "Ctrl+Shift+Left"
//   - Vim-style: "<C-s>", "<A-CR>", "<S-Enter>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseParts(strings.Split(spec[1:len(spec)-1], "-"))
	}

	// "+" on its own is a character; "Ctrl++" is Ctrl with '+'.
	if len(spec) > 1 && strings.Contains(spec, "+") {
		parts := strings.Split(spec, "+")
		if strings.HasSuffix(spec, "++") {
			parts = append(parts[:len(parts)-2], "+")
		}
		return parseParts(parts)
	}

	ev, err := parseKey(spec, ModNone)
	if err != nil {
		return Event{}, err
	}
	// A bare uppercase letter carries an implicit Shift.
	if ev.IsRune() && unicode.IsUpper(ev.Rune) {
		ev.Modifiers = ModShift
	}
	return ev, nil
}

// parseParts treats every part but the last as a modifier name.
func parseParts(parts []string) (Event, error) {
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(parts[len(parts)-1], mods)
}

func parseKey(name string, mods Modifier) (Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Event{}, ErrInvalidSpec
	}

	lower := strings.ToLower(name)
	if k := KeyFromName(lower); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if r, ok := runeNameMap[lower]; ok {
		return NewRuneEvent(r, mods), nil
	}

	runes := []rune(name)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	r := runes[0]
	if mods.Has(ModCtrl) || mods.Has(ModAlt) || mods.Has(ModMeta) {
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return ev
}

// NormalizeSpec parses and re-formats a key specification to its
// canonical Vim-style form.
func NormalizeSpec(spec string) (string, error) {
	ev, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return ev.Normalize().VimString(), nil
}
