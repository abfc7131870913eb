package command

// Placeholder texts for commands registered without them.
const (
	DefaultDescription = "<No description available>"
	DefaultHelp        = "<No help available>"
)

// Handler runs a command. It receives the raw input line, identifier
// included.
type Handler func(line string) Result

// Completer suggests text to append to the raw input line.
// An empty string means no suggestion.
type Completer func(line string) string

// Command is a named operation invoked by typing its identifier.
type Command struct {
	// ID is the identifier typed as the first token of a line.
	ID string

	// Handler executes the command.
	Handler Handler

	// Complete suggests a completion once the identifier is typed.
	// Nil means the command offers none.
	Complete Completer

	// Description is a one-line summary shown by "help".
	Description string

	// Help is the usage text shown by "help <id>".
	Help string
}

// Run executes the command on line.
func (c *Command) Run(line string) Result {
	return c.Handler(line)
}

// AutoComplete returns the command's suggestion for line.
func (c *Command) AutoComplete(line string) string {
	if c.Complete == nil {
		return ""
	}
	return c.Complete(line)
}

// Option configures a command registered with Registry.Add.
type Option func(*Command)

// WithCompleter sets the command's completer.
func WithCompleter(fn Completer) Option {
	return func(c *Command) {
		c.Complete = fn
	}
}

// WithDescription sets the command's description.
func WithDescription(desc string) Option {
	return func(c *Command) {
		c.Description = desc
	}
}

// WithHelp sets the command's help text.
func WithHelp(help string) Option {
	return func(c *Command) {
		c.Help = help
	}
}
