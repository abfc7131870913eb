package command

import (
	"fmt"
	"strings"
)

// Registry stores commands by identifier and remembers registration order.
// It is not safe for concurrent use.
type Registry struct {
	syntax   Syntax
	commands map[string]*Command
	order    []string
	onExit   func()
}

// NewRegistry creates a registry holding the built-in commands.
func NewRegistry(syntax Syntax) *Registry {
	r := &Registry{
		syntax:   syntax,
		commands: make(map[string]*Command),
	}
	r.registerBuiltins()
	return r
}

// Syntax returns the separator and quote characters the registry uses.
func (r *Registry) Syntax() Syntax {
	return r.syntax
}

// Register adds a copy of cmd. Empty description and help fields get
// placeholder texts.
func (r *Registry) Register(cmd *Command) error {
	if cmd.ID == "" || strings.ContainsRune(cmd.ID, r.syntax.Separator) {
		return fmt.Errorf("%w: %q", ErrInvalidID, cmd.ID)
	}
	if cmd.Handler == nil {
		return fmt.Errorf("%w: %q", ErrNilHandler, cmd.ID)
	}
	if _, ok := r.commands[cmd.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, cmd.ID)
	}

	c := *cmd
	if c.Description == "" {
		c.Description = DefaultDescription
	}
	if c.Help == "" {
		c.Help = DefaultHelp
	}
	r.commands[c.ID] = &c
	r.order = append(r.order, c.ID)
	return nil
}

// Remove unregisters id and reports whether it was registered.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.commands[id]; !ok {
		return false
	}
	delete(r.commands, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Add registers a command built from id, handler and opts.
func (r *Registry) Add(id string, handler Handler, opts ...Option) error {
	cmd := &Command{ID: id, Handler: handler}
	for _, opt := range opts {
		opt(cmd)
	}
	return r.Register(cmd)
}

// Lookup returns the command registered under id.
func (r *Registry) Lookup(id string) (Command, bool) {
	c, ok := r.commands[id]
	if !ok {
		return Command{}, false
	}
	return *c, true
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.commands[id]
	return ok
}

// IDs returns the identifiers in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Commands returns copies of the commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.order))
	for i, id := range r.order {
		out[i] = *r.commands[id]
	}
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.order)
}

// SetDescription replaces the description of a registered command.
func (r *Registry) SetDescription(id, desc string) error {
	c, ok := r.commands[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	c.Description = desc
	return nil
}

// SetHelp replaces the help text of a registered command.
func (r *Registry) SetHelp(id, help string) error {
	c, ok := r.commands[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	c.Help = help
	return nil
}

// OnExit sets the function the "exit" built-in calls.
func (r *Registry) OnExit(fn func()) {
	r.onExit = fn
}

// PrefixComplete returns the rest of the first identifier, in registration
// order, that starts with partial. It returns "" when nothing matches or
// partial already holds more than one token.
func (r *Registry) PrefixComplete(partial string) string {
	if strings.ContainsRune(partial, r.syntax.Separator) {
		return ""
	}
	for _, id := range r.order {
		if strings.HasPrefix(id, partial) {
			return id[len(partial):]
		}
	}
	return ""
}

// Complete returns the text to append to line. While only the identifier
// is typed the registry completes it; after that the command's own
// completer decides. Lines that do not tokenize get no suggestion.
func (r *Registry) Complete(line string) string {
	if _, err := r.syntax.Tokenize(line); err != nil {
		return ""
	}
	if _, more := r.syntax.Rest(line); !more {
		return r.PrefixComplete(line)
	}
	c, ok := r.commands[r.syntax.Identifier(line)]
	if !ok {
		return ""
	}
	return c.AutoComplete(line)
}
