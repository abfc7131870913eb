package dispatcher

import (
	"strings"
	"time"

	"github.com/dshills/keyline/internal/command"
	"github.com/dshills/keyline/internal/logging"
)

// PostDispatchFunc is called after every dispatched line with the
// identifier and the result.
type PostDispatchFunc func(id string, result command.Result)

// Dispatcher resolves identifiers through a command registry.
type Dispatcher struct {
	registry  *command.Registry
	logger    *logging.Logger
	metrics   *Metrics
	postHooks []PostDispatchFunc
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// WithMetrics enables dispatch statistics.
func WithMetrics() Option {
	return func(d *Dispatcher) {
		d.metrics = NewMetrics()
	}
}

// New creates a dispatcher over registry.
func New(registry *command.Registry, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.WithComponent("dispatcher")
	return d
}

// AddPostHook registers fn to run after each dispatch.
func (d *Dispatcher) AddPostHook(fn PostDispatchFunc) {
	d.postHooks = append(d.postHooks, fn)
}

// Metrics returns the dispatch statistics, or nil if they are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Dispatch runs the command named by line's first token and returns its
// result. A blank line is silent success; an unknown identifier is
// command.UnknownCommand. Handler panics propagate to the caller.
func (d *Dispatcher) Dispatch(line string) command.Result {
	syntax := d.registry.Syntax()
	if strings.Trim(line, string(syntax.Separator)) == "" {
		return command.Success
	}

	id := syntax.Identifier(line)
	cmd, ok := d.registry.Lookup(id)
	if !ok {
		d.logger.Debug("unknown command %q", id)
		res := command.UnknownCommand(id)
		if d.metrics != nil {
			d.metrics.RecordUnknown()
		}
		d.runHooks(id, res)
		return res
	}

	start := time.Now()
	res := cmd.Run(line)
	elapsed := time.Since(start)
	d.logger.With("code", res.Code).Debug("ran %q in %s", id, elapsed)
	if d.metrics != nil {
		d.metrics.Record(id, elapsed, res)
	}
	d.runHooks(id, res)
	return res
}

func (d *Dispatcher) runHooks(id string, res command.Result) {
	for _, fn := range d.postHooks {
		fn(id, res)
	}
}
