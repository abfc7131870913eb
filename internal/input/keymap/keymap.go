package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/keyline/internal/input/key"
)

// Keymap errors.
var (
	// ErrKeymapLocked indicates a change was attempted while an action runs.
	ErrKeymapLocked = errors.New("keymap: locked while an action runs")

	// ErrUnknownAction indicates a binding names an undefined action.
	ErrUnknownAction = errors.New("keymap: unknown action")
)

// Action is a bound procedure.
type Action func()

// Keymap binds key events to named actions.
// It is not safe for concurrent use.
type Keymap struct {
	actions  map[string]Action
	bindings map[key.Event]string
	locked   bool
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{
		actions:  make(map[string]Action),
		bindings: make(map[key.Event]string),
	}
}

// Define sets the procedure for an action name, replacing any earlier one.
func (k *Keymap) Define(name string, fn Action) error {
	if k.locked {
		return ErrKeymapLocked
	}
	k.actions[name] = fn
	return nil
}

// Bind binds the key described by spec to an action.
func (k *Keymap) Bind(spec, action string) error {
	ev, err := NewBinding(spec, action).Event()
	if err != nil {
		return err
	}
	return k.BindEvent(ev, action)
}

// BindEvent binds ev to an action.
func (k *Keymap) BindEvent(ev key.Event, action string) error {
	if k.locked {
		return ErrKeymapLocked
	}
	if _, ok := k.actions[action]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	k.bindings[ev.Normalize()] = action
	return nil
}

// Unbind removes the binding for spec, if any.
func (k *Keymap) Unbind(spec string) error {
	if k.locked {
		return ErrKeymapLocked
	}
	ev, err := NewBinding(spec, "").Event()
	if err != nil {
		return err
	}
	delete(k.bindings, ev)
	return nil
}

// Load binds every binding in bs.
func (k *Keymap) Load(bs []Binding) error {
	for _, b := range bs {
		if err := k.Bind(b.Keys, b.Action); err != nil {
			return err
		}
	}
	return nil
}

// Override replaces the keys of the given actions. Each action keeps
// exactly the listed specs; actions not mentioned are untouched. Actions
// are applied in name order, so of two actions listing the same spec the
// later name keeps it.
func (k *Keymap) Override(keys map[string][]string) error {
	if k.locked {
		return ErrKeymapLocked
	}
	actions := make([]string, 0, len(keys))
	for action := range keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		specs := keys[action]
		if _, ok := k.actions[action]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}
		for ev, name := range k.bindings {
			if name == action {
				delete(k.bindings, ev)
			}
		}
		for _, spec := range specs {
			if err := k.Bind(spec, action); err != nil {
				return err
			}
		}
	}
	return nil
}

// Lookup returns the action name bound to ev.
func (k *Keymap) Lookup(ev key.Event) (string, bool) {
	name, ok := k.bindings[ev.Normalize()]
	return name, ok
}

// Run runs the action bound to ev with the keymap locked and reports the
// action name. It returns false if nothing is bound.
func (k *Keymap) Run(ev key.Event) (string, bool) {
	name, ok := k.Lookup(ev)
	if !ok {
		return "", false
	}
	fn := k.actions[name]
	k.locked = true
	defer func() { k.locked = false }()
	fn()
	return name, true
}

// Locked reports whether an action is running.
func (k *Keymap) Locked() bool {
	return k.locked
}

// Bindings returns the current bindings sorted by key.
func (k *Keymap) Bindings() []Binding {
	out := make([]Binding, 0, len(k.bindings))
	for ev, name := range k.bindings {
		out = append(out, Binding{Keys: ev.VimString(), Action: name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Action != out[j].Action {
			return out[i].Action < out[j].Action
		}
		return out[i].Keys < out[j].Keys
	})
	return out
}
