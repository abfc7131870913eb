package key

import "strings"

// Modifier is a bit set of keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// modifierOrder fixes the order in which modifiers are rendered.
var modifierOrder = []struct {
	mod   Modifier
	long  string
	short string
}{
	{ModCtrl, "Ctrl", "C"},
	{ModAlt, "Alt", "A"},
	{ModShift, "Shift", "S"},
	{ModMeta, "Meta", "M"},
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// String returns a representation like "Ctrl+Alt".
func (m Modifier) String() string {
	return m.join("+", false)
}

// ShortString returns a compact representation like "C-A".
func (m Modifier) ShortString() string {
	return m.join("-", true)
}

func (m Modifier) join(sep string, short bool) string {
	var parts []string
	for _, o := range modifierOrder {
		if !m.Has(o.mod) {
			continue
		}
		if short {
			parts = append(parts, o.short)
		} else {
			parts = append(parts, o.long)
		}
	}
	return strings.Join(parts, sep)
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"a":       ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"meta":    ModMeta,
	"m":       ModMeta,
	"cmd":     ModMeta,
	"d":       ModMeta, // Vim uses D for command/meta
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	return modifierNameMap[strings.ToLower(strings.TrimSpace(name))]
}
