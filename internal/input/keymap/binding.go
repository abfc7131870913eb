package keymap

import (
	"fmt"

	"github.com/dshills/keyline/internal/input/key"
)

// Binding is a declarative key-to-action mapping.
type Binding struct {
	// Keys is the key specification, e.g. "Ctrl+A" or "<A-CR>".
	Keys string

	// Action is the name of the action to run.
	Action string

	// Description documents the binding.
	Description string
}

// NewBinding creates a binding for keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{Keys: keys, Action: action}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// Event parses the binding's key specification into its lookup form.
func (b Binding) Event() (key.Event, error) {
	ev, err := key.Parse(b.Keys)
	if err != nil {
		return key.Event{}, fmt.Errorf("binding %q: %w", b.Keys, err)
	}
	return ev.Normalize(), nil
}
