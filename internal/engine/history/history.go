// Package history records submitted lines and recalls them cyclically.
//
// Lines are only ever appended. A recall cursor walks the list: Previous
// from past the end lands on the newest line, and both directions wrap
// around at the ends. Adding a line puts the cursor past the end again.
package history

import "strings"

// History is an append-only list of submitted lines with a recall cursor.
// It is not safe for concurrent use.
type History struct {
	lines []string
	idx   int
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Add appends line and resets the recall cursor past the end.
// Blank lines are not recorded; Add reports whether line was kept.
func (h *History) Add(line string) bool {
	h.idx = len(h.lines)
	if strings.TrimSpace(line) == "" {
		return false
	}
	h.lines = append(h.lines, line)
	h.idx = len(h.lines)
	return true
}

// Len returns the number of recorded lines.
func (h *History) Len() int {
	return len(h.lines)
}

// Lines returns a copy of the recorded lines, oldest first.
func (h *History) Lines() []string {
	return append([]string(nil), h.lines...)
}

// Previous moves the recall cursor one line back, wrapping from the oldest
// line to the newest. It returns false if the history is empty.
func (h *History) Previous() (string, bool) {
	n := len(h.lines)
	if n == 0 {
		return "", false
	}
	if h.idx == 0 {
		h.idx = n - 1
	} else {
		h.idx--
	}
	return h.lines[h.idx], true
}

// Next moves the recall cursor one line forward, wrapping from the newest
// line to the oldest. From past the end it lands on the oldest line.
func (h *History) Next() (string, bool) {
	n := len(h.lines)
	if n == 0 {
		return "", false
	}
	if h.idx >= n-1 {
		h.idx = 0
	} else {
		h.idx++
	}
	return h.lines[h.idx], true
}

// Reset puts the recall cursor past the end without adding a line.
func (h *History) Reset() {
	h.idx = len(h.lines)
}
