package editor

import (
	"fmt"
	"strings"

	"github.com/dshills/keyline/internal/engine/field"
	"github.com/dshills/keyline/internal/engine/history"
	"github.com/dshills/keyline/internal/engine/reflow"
	"github.com/dshills/keyline/internal/input/key"
	"github.com/dshills/keyline/internal/input/keymap"
	"github.com/dshills/keyline/internal/logging"
	"github.com/dshills/keyline/internal/terminal"
)

// DefaultPrompt is written before the field when no prompt is configured.
const DefaultPrompt = "> "

// Completer suggests the text that completes a partial line.
// command.Registry satisfies it.
type Completer interface {
	Complete(line string) string
}

// Option configures an Editor.
type Option func(*Editor)

// WithPrompt sets the text written before the field.
func WithPrompt(prompt string) Option {
	return func(e *Editor) { e.prompt = prompt }
}

// WithMargin sets the number of cells kept free at the right edge.
func WithMargin(margin int) Option {
	return func(e *Editor) { e.margin = margin }
}

// WithCompleter sets the completer used by the complete action.
func WithCompleter(c Completer) Option {
	return func(e *Editor) { e.completer = c }
}

// WithHistory sets the history recalled by the history actions.
func WithHistory(h *history.History) Option {
	return func(e *Editor) { e.history = h }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// Editor reads lines from a terminal.
// It is not safe for concurrent use.
type Editor struct {
	term      terminal.Terminal
	field     *field.Field
	keymap    *keymap.Keymap
	completer Completer
	history   *history.History
	logger    *logging.Logger
	prompt    string
	margin    int

	// origin is the terminal row holding row 0 of the field.
	origin int
	// painted is the number of terminal lines the last repaint drew.
	painted int

	done bool
	line string
}

// New creates an editor on term with the default bindings.
func New(term terminal.Terminal, opts ...Option) *Editor {
	e := &Editor{
		term:    term,
		keymap:  keymap.New(),
		history: history.New(),
		logger:  logging.Nop(),
		prompt:  DefaultPrompt,
		margin:  reflow.DefaultMargin,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent("editor")
	e.field = field.New(reflow.Options{
		Columns: term.BufferWidth(),
		Margin:  e.margin,
	})

	e.defineActions()
	if err := e.keymap.Load(keymap.DefaultBindings()); err != nil {
		panic(fmt.Sprintf("editor: default bindings: %v", err))
	}
	return e
}

// Keymap returns the editor's key bindings.
func (e *Editor) Keymap() *keymap.Keymap {
	return e.keymap
}

// Field returns the field being edited.
func (e *Editor) Field() *field.Field {
	return e.field
}

// Bind binds the key described by spec to a defined action.
func (e *Editor) Bind(spec, action string) error {
	return e.keymap.Bind(spec, action)
}

// BindFunc defines an action named name and binds spec to it.
// The field is repainted after fn returns.
func (e *Editor) BindFunc(spec, name string, fn func(*Editor)) error {
	if err := e.keymap.Define(name, func() { fn(e) }); err != nil {
		return err
	}
	return e.keymap.Bind(spec, name)
}

// ReadLine runs one capture cycle and returns the submitted text.
// It returns an error only when the terminal cannot deliver keys.
func (e *Editor) ReadLine() (string, error) {
	e.field.Clear()
	e.history.Reset()
	e.done, e.line = false, ""

	e.term.Write(e.prompt)
	prefix, origin := e.term.CursorPosition()
	e.field.SetPrefix(prefix)
	e.origin, e.painted = origin, 0
	e.repaint()

	for !e.done {
		ev, err := e.term.ReadKey()
		if err != nil {
			return "", fmt.Errorf("editor: read key: %w", err)
		}
		e.handle(ev)
	}
	return e.line, nil
}

func (e *Editor) handle(ev key.Event) {
	if name, ok := e.keymap.Run(ev); ok {
		e.logger.Debug("key %s ran %s", ev, name)
		if !e.done {
			e.repaint()
		}
		return
	}
	if ev.IsChar() {
		e.field.Insert(string(ev.Rune))
		e.repaint()
	}
}

// Submit ends the capture cycle returning the field's text.
func (e *Editor) Submit() {
	e.finish(e.field.Text())
}

// Discard ends the capture cycle returning an empty line.
func (e *Editor) Discard() {
	e.finish("")
}

// finish leaves the terminal cursor on the line after the field.
func (e *Editor) finish(line string) {
	e.field.End()
	e.repaint()
	e.term.Write("\n")
	e.line = line
	e.done = true
}

// Complete inserts the completion of the text before the cursor.
func (e *Editor) Complete() {
	if e.completer == nil {
		return
	}
	before := []rune(e.field.Text())[:e.field.Cursor().Index]
	if s := e.completer.Complete(string(before)); s != "" {
		e.field.Insert(s)
	}
}

func (e *Editor) recall(line string, ok bool) {
	if ok {
		e.field.SetText(line)
	}
}

// repaint redraws every line of the field starting at the origin and
// places the terminal cursor on the logical cursor.
func (e *Editor) repaint() {
	if w := e.term.BufferWidth(); w != e.field.Layout().Options().Columns {
		e.field.Resize(w)
	}
	l := e.field.Layout()
	opts := l.Options()
	cols := max(opts.Columns, 1)
	text := []rune(e.field.Text())

	e.term.SetCursorVisible(false)
	e.term.SetCursorPosition(opts.Prefix, e.origin)
	for i := range l.Rows {
		if i > 0 {
			e.term.Write("\n")
		}
		e.term.Write(l.Paint(text, i))
	}
	height := l.Height(text)
	for i := height; i < e.painted; i++ {
		e.term.Write("\n" + strings.Repeat(" ", cols))
	}

	// Writing may have scrolled the screen.
	_, end := e.term.CursorPosition()
	e.origin = end - (max(height, e.painted) - 1)
	e.painted = height

	x, dy := l.Locate(text, l.Cursor)
	e.term.SetCursorPosition(x, e.origin+dy)
	e.term.SetCursorVisible(true)
}
