package script

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds a single script run or handler call.
const DefaultTimeout = 5 * time.Second

// State wraps a sandboxed gopher-lua state.
//
// gopher-lua's LState is not goroutine-safe; a State must only be used
// from the goroutine running the key loop.
type State struct {
	L       *lua.LState
	timeout time.Duration
	closed  bool
}

// newState creates a state with the safe libraries open and the loaders
// removed.
func newState(timeout time.Duration) *State {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	return &State{L: L, timeout: timeout}
}

// run executes fn with a deadline and converts Go panics into errors.
func (s *State) run(fn func() error) (err error) {
	if s.closed {
		return ErrStateClosed
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	err = fn()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}

// DoFile executes a Lua file.
func (s *State) DoFile(path string) error {
	return s.run(func() error { return s.L.DoFile(path) })
}

// DoString executes Lua source.
func (s *State) DoString(src string) error {
	return s.run(func() error { return s.L.DoString(src) })
}

// Call calls fn with args and returns up to nret results.
func (s *State) Call(fn lua.LValue, nret int, args ...lua.LValue) ([]lua.LValue, error) {
	var out []lua.LValue
	err := s.run(func() error {
		if err := s.L.CallByParam(lua.P{Fn: fn, NRet: nret, Protect: true}, args...); err != nil {
			return err
		}
		out = make([]lua.LValue, nret)
		for i := range out {
			out[i] = s.L.Get(-nret + i)
		}
		s.L.Pop(nret)
		return nil
	})
	return out, err
}

// Close releases the state. It is safe to call more than once.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.L.Close()
	s.closed = true
}
