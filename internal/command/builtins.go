package command

import (
	"fmt"
	"strings"
)

func (r *Registry) registerBuiltins() {
	builtins := []*Command{
		{
			ID:          "help",
			Handler:     r.help,
			Complete:    r.completeHelp,
			Description: "Prints the list of available commands, or provides help with the specified one.",
			Help:        "help [command]",
		},
		{
			ID:          "exit",
			Handler:     r.exit,
			Description: "Ends the current process.",
			Help:        "exit",
		},
	}
	for _, c := range builtins {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) help(line string) Result {
	args, err := r.syntax.Tokenize(line)
	if err != nil {
		return FromError(err)
	}

	if len(args) > 1 {
		c, ok := r.commands[args[1]]
		if !ok {
			return Errorf("\"%s\" is not recognized as a command", args[1])
		}
		return Ok(c.Help)
	}

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, id := range r.order {
		fmt.Fprintf(&b, "\n%s : %s", id, r.commands[id].Description)
	}
	return Ok(b.String())
}

// completeHelp completes the identifier given as help's only argument.
func (r *Registry) completeHelp(line string) string {
	rest, ok := r.syntax.Rest(line)
	if !ok {
		return ""
	}
	return r.PrefixComplete(rest)
}

func (r *Registry) exit(string) Result {
	if r.onExit != nil {
		r.onExit()
	}
	return Success
}
