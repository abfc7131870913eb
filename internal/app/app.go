// Package app runs the outer read-dispatch loop of a keyline session.
//
// An Application wires the line editor, the command registry, the
// dispatcher and the history together. Run repeats capture cycles until
// the "exit" command stops it: every submitted line is recorded in the
// history, dispatched, and the message of any non-silent result is
// written below the prompt.
package app

import (
	"github.com/dshills/keyline/internal/command"
	"github.com/dshills/keyline/internal/dispatcher"
	"github.com/dshills/keyline/internal/editor"
	"github.com/dshills/keyline/internal/engine/history"
	"github.com/dshills/keyline/internal/engine/reflow"
	"github.com/dshills/keyline/internal/logging"
	"github.com/dshills/keyline/internal/terminal"
)

// Exit codes returned by Run.
const (
	ExitOK       = 0
	ExitTerminal = 1
)

// Options configures the application.
type Options struct {
	// Terminal is the console to read keys from and draw on.
	Terminal terminal.Terminal

	// Prompt is written before every line.
	Prompt string

	// Margin is the number of cells kept free at the right edge.
	Margin int

	// Syntax is the command line syntax.
	Syntax command.Syntax

	// Keys overrides the keys bound to editor actions.
	Keys map[string][]string

	// Logger receives session and dispatch logs.
	Logger *logging.Logger
}

// DefaultOptions returns options for term with the default prompt,
// margin and syntax.
func DefaultOptions(term terminal.Terminal) Options {
	return Options{
		Terminal: term,
		Prompt:   editor.DefaultPrompt,
		Margin:   reflow.DefaultMargin,
		Syntax:   command.DefaultSyntax,
	}
}

// Application is a single interactive session.
// It is not safe for concurrent use.
type Application struct {
	term       terminal.Terminal
	registry   *command.Registry
	dispatcher *dispatcher.Dispatcher
	history    *history.History
	editor     *editor.Editor
	logger     *logging.Logger

	running bool
	stopped bool
}

// New creates an application with the built-in commands registered.
func New(opts Options) (*Application, error) {
	if opts.Terminal == nil {
		return nil, ErrNoTerminal
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	app := &Application{
		term:    opts.Terminal,
		history: history.New(),
		logger:  logger.WithComponent("app"),
	}

	syntax := opts.Syntax
	if syntax == (command.Syntax{}) {
		syntax = command.DefaultSyntax
	}
	app.registry = command.NewRegistry(syntax)
	app.registry.OnExit(app.Stop)

	app.dispatcher = dispatcher.New(app.registry,
		dispatcher.WithLogger(logger),
		dispatcher.WithMetrics(),
	)

	app.editor = editor.New(opts.Terminal,
		editor.WithPrompt(opts.Prompt),
		editor.WithMargin(opts.Margin),
		editor.WithCompleter(app.registry),
		editor.WithHistory(app.history),
		editor.WithLogger(logger),
	)
	if len(opts.Keys) > 0 {
		if err := app.editor.Keymap().Override(opts.Keys); err != nil {
			return nil, &InitError{Component: "keymap", Err: err}
		}
	}

	return app, nil
}

// Registry returns the command registry.
func (app *Application) Registry() *command.Registry {
	return app.registry
}

// Dispatcher returns the command dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// History returns the session history.
func (app *Application) History() *history.History {
	return app.history
}

// Editor returns the line editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Stop ends the loop after the current line has been handled.
func (app *Application) Stop() {
	app.stopped = true
}

// Stopped reports whether Stop has been called.
func (app *Application) Stopped() bool {
	return app.stopped
}

// Run reads and dispatches lines until Stop is called. It returns ExitOK
// on a normal exit and ExitTerminal if the terminal stops delivering keys.
func (app *Application) Run() int {
	if app.running {
		app.logger.Error("%v", ErrAlreadyRunning)
		return ExitTerminal
	}
	app.running = true
	defer func() { app.running = false }()

	app.logger.Info("session started with %d commands", app.registry.Len())
	defer app.logSummary()

	for !app.stopped {
		line, err := app.editor.ReadLine()
		if err != nil {
			app.logger.Error("terminal failed: %v", err)
			return ExitTerminal
		}
		app.history.Add(line)

		res := app.dispatcher.Dispatch(line)
		if !res.IsSilent() {
			app.term.WriteLine(res.Message)
		}
	}
	return ExitOK
}

func (app *Application) logSummary() {
	m := app.dispatcher.Metrics()
	app.logger.
		With("dispatches", m.TotalDispatches()).
		With("errors", m.TotalErrors()).
		With("unknown", m.TotalUnknown()).
		With("average", m.AverageDuration()).
		Info("session ended")
	for _, c := range m.TopCommands(3) {
		app.logger.Debug("command %s ran %d times", c.ID, c.DispatchCount)
	}
}
