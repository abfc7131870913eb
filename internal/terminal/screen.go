package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyline/internal/input/key"
)

// Screen implements Terminal on a tcell screen. Contents are kept in a
// grid and pushed to tcell after every change.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	grid   *grid
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return NewScreenFrom(s)
}

// NewScreenFrom wraps an uninitialized tcell screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init: %w", err)
	}
	s.EnablePaste()
	w, h := s.Size()
	return &Screen{screen: s, grid: newGrid(w, h)}, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Fini()
}

// ReadKey implements Terminal. Resize events are absorbed; paste
// markers and other events are skipped.
func (s *Screen) ReadKey() (key.Event, error) {
	for {
		ev := s.screen.PollEvent()
		switch e := ev.(type) {
		case nil:
			return key.Event{}, ErrClosed
		case *tcell.EventKey:
			if k, ok := convertKey(e); ok {
				return k, nil
			}
		case *tcell.EventResize:
			w, h := e.Size()
			s.mu.Lock()
			s.grid.resize(w, h)
			s.screen.Sync()
			s.flushLocked()
			s.mu.Unlock()
		}
	}
}

// Write implements Terminal.
func (s *Screen) Write(text string) {
	s.update(func(g *grid) { g.write(text) })
}

// WriteLine implements Terminal.
func (s *Screen) WriteLine(text string) {
	s.update(func(g *grid) { g.write(text + "\n") })
}

// CursorPosition implements Terminal.
func (s *Screen) CursorPosition() (col, row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.x, s.grid.y
}

// SetCursorPosition implements Terminal.
func (s *Screen) SetCursorPosition(col, row int) {
	s.update(func(g *grid) { g.setCursor(col, row) })
}

// BufferWidth implements Terminal.
func (s *Screen) BufferWidth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.width
}

// SetCursorVisible implements Terminal.
func (s *Screen) SetCursorVisible(visible bool) {
	s.update(func(g *grid) { g.visible = visible })
}

func (s *Screen) update(fn func(*grid)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.grid)
	s.flushLocked()
}

func (s *Screen) flushLocked() {
	g := s.grid
	for y, line := range g.lines {
		for x, c := range line {
			if c.cont {
				continue
			}
			s.screen.SetContent(x, y, c.main, c.comb, tcell.StyleDefault)
		}
	}
	if g.visible {
		s.screen.ShowCursor(g.x, g.y)
	} else {
		s.screen.HideCursor()
	}
	s.screen.Show()
}
