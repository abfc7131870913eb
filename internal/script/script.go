package script

import (
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/keyline/internal/command"
	"github.com/dshills/keyline/internal/logging"
)

// Option configures a Script.
type Option func(*Script)

// WithTimeout sets the deadline for each run and handler call.
func WithTimeout(d time.Duration) Option {
	return func(s *Script) { s.state.timeout = d }
}

// WithLogger sets the logger for handler failures.
func WithLogger(l *logging.Logger) Option {
	return func(s *Script) { s.logger = l }
}

// Script is a loaded Lua script and the commands it registered.
type Script struct {
	state    *State
	registry *command.Registry
	logger   *logging.Logger
	ids      []string
}

func newScript(registry *command.Registry, opts []Option) *Script {
	s := &Script{
		state:    newState(DefaultTimeout),
		registry: registry,
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("script")
	s.install()
	return s
}

// Load runs the script at path, registering its commands in registry.
func Load(path string, registry *command.Registry, opts ...Option) (*Script, error) {
	s := newScript(registry, opts)
	if err := s.state.DoFile(path); err != nil {
		s.discard()
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	s.logger.Info("loaded %s: %d commands", path, len(s.ids))
	return s, nil
}

// LoadString is Load for in-memory source. name is used in messages.
func LoadString(name, src string, registry *command.Registry, opts ...Option) (*Script, error) {
	s := newScript(registry, opts)
	if err := s.state.DoString(src); err != nil {
		s.discard()
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return s, nil
}

// discard unregisters the commands of a script that failed to load and
// closes its state.
func (s *Script) discard() {
	for _, id := range s.ids {
		s.registry.Remove(id)
	}
	s.ids = nil
	s.Close()
}

// Commands returns the identifiers the script registered, in order.
func (s *Script) Commands() []string {
	return append([]string(nil), s.ids...)
}

// Close releases the Lua state. Commands registered by the script
// return an error result afterwards.
func (s *Script) Close() {
	s.state.Close()
}

func (s *Script) install() {
	L := s.state.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"register": s.luaRegister,
		"tokenize": s.luaTokenize,
	})
	L.SetGlobal("keyline", mod)
}

// luaRegister implements keyline.register(id, fn [, opts]).
func (s *Script) luaRegister(L *lua.LState) int {
	id := L.CheckString(1)
	fn := L.CheckFunction(2)
	opts := L.OptTable(3, L.NewTable())

	var options []command.Option
	if v, ok := opts.RawGetString("description").(lua.LString); ok {
		options = append(options, command.WithDescription(string(v)))
	}
	if v, ok := opts.RawGetString("help").(lua.LString); ok {
		options = append(options, command.WithHelp(string(v)))
	}
	if v, ok := opts.RawGetString("complete").(*lua.LFunction); ok {
		options = append(options, command.WithCompleter(s.completer(v)))
	}

	if err := s.registry.Add(id, s.handler(id, fn), options...); err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	s.ids = append(s.ids, id)
	return 0
}

// luaTokenize implements keyline.tokenize(line).
func (s *Script) luaTokenize(L *lua.LState) int {
	tokens, err := s.registry.Syntax().Tokenize(L.CheckString(1))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	t := L.CreateTable(len(tokens), 0)
	for _, tok := range tokens {
		t.Append(lua.LString(tok))
	}
	L.Push(t)
	return 1
}

func (s *Script) handler(id string, fn *lua.LFunction) command.Handler {
	return func(line string) command.Result {
		ret, err := s.state.Call(fn, 2, lua.LString(line))
		if err != nil {
			s.logger.Warn("command %s failed: %v", id, err)
			return command.Errorf("%s: %v", id, err)
		}
		return toResult(ret[0], ret[1])
	}
}

func (s *Script) completer(fn *lua.LFunction) command.Completer {
	return func(line string) string {
		ret, err := s.state.Call(fn, 1, lua.LString(line))
		if err != nil {
			s.logger.Warn("completion failed: %v", err)
			return ""
		}
		if v, ok := ret[0].(lua.LString); ok {
			return string(v)
		}
		return ""
	}
}

// toResult converts a handler's return values.
func toResult(first, second lua.LValue) command.Result {
	switch v := first.(type) {
	case lua.LNumber:
		msg := ""
		if second != lua.LNil {
			msg = lua.LVAsString(second)
		}
		return command.Result{Code: int(v), Message: msg}
	case lua.LString:
		return command.Ok(string(v))
	default:
		return command.Success
	}
}
