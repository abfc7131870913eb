package config

import (
	"errors"
	"sort"
	"unicode/utf8"

	"github.com/dshills/keyline/internal/command"
	"github.com/dshills/keyline/internal/input/key"
	"github.com/dshills/keyline/internal/input/keymap"
	"github.com/dshills/keyline/internal/logging"
)

// Config holds every keyline setting.
type Config struct {
	// Prompt is written before each line, followed by a space.
	Prompt string `toml:"prompt" yaml:"prompt"`

	// Separator splits a command line into tokens. One character.
	Separator string `toml:"separator" yaml:"separator"`

	// Quote groups separators into a single token. One character.
	Quote string `toml:"quote" yaml:"quote"`

	// Margin is the number of cells kept free at the right edge.
	Margin int `toml:"margin" yaml:"margin"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// LogFile receives the log. Empty discards it.
	LogFile string `toml:"log_file" yaml:"log_file"`

	// Script is a Lua file defining extra commands.
	Script string `toml:"script" yaml:"script"`

	// Keys maps editor action names to the keys that trigger them,
	// replacing the default keys of each listed action.
	Keys map[string][]string `toml:"keys" yaml:"keys"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Prompt:    ">",
		Separator: string(command.DefaultSeparator),
		Quote:     string(command.DefaultQuote),
		Margin:    1,
		LogLevel:  "info",
	}
}

// Syntax returns the command line syntax. Call it on a validated config.
func (c *Config) Syntax() command.Syntax {
	sep, _ := utf8.DecodeRuneInString(c.Separator)
	quote, _ := utf8.DecodeRuneInString(c.Quote)
	return command.Syntax{Separator: sep, Quote: quote}
}

// Level returns the parsed log level.
func (c *Config) Level() (logging.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Prompt == "" {
		errs = append(errs, invalid("prompt", "must not be empty"))
	}
	if utf8.RuneCountInString(c.Separator) != 1 {
		errs = append(errs, invalid("separator", "want one character, got %q", c.Separator))
	}
	if utf8.RuneCountInString(c.Quote) != 1 {
		errs = append(errs, invalid("quote", "want one character, got %q", c.Quote))
	}
	if c.Separator == c.Quote {
		errs = append(errs, invalid("quote", "same as separator %q", c.Separator))
	}
	if c.Margin < 0 {
		errs = append(errs, invalid("margin", "must not be negative, got %d", c.Margin))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, invalid("log_level", "%v", err))
	}

	actions := make([]string, 0, len(c.Keys))
	for action := range c.Keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		if !keymap.IsAction(action) {
			errs = append(errs, invalid("keys", "unknown action %q", action))
			continue
		}
		for _, spec := range c.Keys[action] {
			if _, err := key.Parse(spec); err != nil {
				errs = append(errs, invalid("keys", "%s: %v", action, err))
			}
		}
	}
	return errors.Join(errs...)
}
