package terminal

import (
	"fmt"

	"github.com/dshills/keyline/internal/input/key"
)

// step is one scripted input: a key, or a resize applied before the next
// key is read.
type step struct {
	ev     key.Event
	resize bool
	width  int
	height int
}

// Memory is a Terminal backed by an in-memory grid and a scripted queue
// of keys. ReadKey returns ErrClosed once the script is exhausted.
type Memory struct {
	*grid
	script []step
	reads  int
}

// NewMemory creates a blank width x height terminal.
func NewMemory(width, height int) *Memory {
	return &Memory{grid: newGrid(width, height)}
}

// Press queues key events.
func (m *Memory) Press(evs ...key.Event) *Memory {
	for _, ev := range evs {
		m.script = append(m.script, step{ev: ev})
	}
	return m
}

// Type queues one rune event per rune of s. '\n' becomes Enter.
func (m *Memory) Type(s string) *Memory {
	for _, r := range s {
		if r == '\n' {
			m.Press(key.NewSpecialEvent(key.KeyEnter, key.ModNone))
			continue
		}
		m.Press(key.NewRuneEvent(r, key.ModNone))
	}
	return m
}

// PressSpec queues the keys described by specs such as "Ctrl+C".
// It panics on an invalid spec.
func (m *Memory) PressSpec(specs ...string) *Memory {
	for _, s := range specs {
		m.Press(key.MustParse(s))
	}
	return m
}

// QueueResize makes the terminal change size before the next queued key
// is returned.
func (m *Memory) QueueResize(width, height int) *Memory {
	m.script = append(m.script, step{resize: true, width: width, height: height})
	return m
}

// Pending returns the number of keys not yet read.
func (m *Memory) Pending() int {
	n := 0
	for _, s := range m.script {
		if !s.resize {
			n++
		}
	}
	return n
}

// Reads returns the number of keys read so far.
func (m *Memory) Reads() int {
	return m.reads
}

// ReadKey implements Terminal.
func (m *Memory) ReadKey() (key.Event, error) {
	for len(m.script) > 0 {
		s := m.script[0]
		m.script = m.script[1:]
		if s.resize {
			m.resize(s.width, s.height)
			continue
		}
		m.reads++
		return s.ev, nil
	}
	return key.Event{}, fmt.Errorf("%w: no more scripted keys", ErrClosed)
}

// Write implements Terminal.
func (m *Memory) Write(s string) {
	m.write(s)
}

// WriteLine implements Terminal.
func (m *Memory) WriteLine(s string) {
	m.write(s)
	m.write("\n")
}

// CursorPosition implements Terminal.
func (m *Memory) CursorPosition() (col, row int) {
	return m.x, m.y
}

// SetCursorPosition implements Terminal.
func (m *Memory) SetCursorPosition(col, row int) {
	m.setCursor(col, row)
}

// BufferWidth implements Terminal.
func (m *Memory) BufferWidth() int {
	return m.width
}

// SetCursorVisible implements Terminal.
func (m *Memory) SetCursorVisible(visible bool) {
	m.visible = visible
}

// CursorVisible reports whether the cursor is shown.
func (m *Memory) CursorVisible() bool {
	return m.visible
}

// Line returns the text of screen row y without trailing blanks.
func (m *Memory) Line(y int) string {
	return m.text(y)
}

// Lines returns every screen row without trailing blanks.
func (m *Memory) Lines() []string {
	out := make([]string, m.height)
	for y := range out {
		out[y] = m.text(y)
	}
	return out
}
