// Package field implements the editable text of a prompt: a logical text
// kept segmented into screen rows, and a cursor whose row/column
// coordinates always agree with the segmentation.
//
// Every mutation splices the logical text and re-flows forward from the
// start of the edited paragraph, so the rows are always exactly what
// reflow.New would produce for the whole text.
package field

import (
	"errors"
	"fmt"

	"github.com/dshills/keyline/internal/engine/reflow"
	"github.com/rivo/uniseg"
)

// ErrOutOfRange is returned by InsertAt for an index outside the text.
var ErrOutOfRange = errors.New("field: index out of range")

// Cursor is the logical cursor together with its derived coordinates.
type Cursor struct {
	Index int
	Row   int
	Col   int
}

// Field is a multi-row editable text.
// It is not safe for concurrent use.
type Field struct {
	text   []rune
	layout reflow.Layout
	cursor int
}

// New creates an empty field laid out with opts.
func New(opts reflow.Options) *Field {
	f := &Field{}
	f.layout = reflow.New(nil, opts, 0)
	return f
}

// Text returns the logical text.
func (f *Field) Text() string {
	return string(f.text)
}

// Len returns the length of the text in runes.
func (f *Field) Len() int {
	return len(f.text)
}

// Rows returns the text of each row, newlines included.
func (f *Field) Rows() []string {
	rows := make([]string, len(f.layout.Rows))
	for i, r := range f.layout.Rows {
		rows[i] = string(f.text[r.Start:r.End])
	}
	return rows
}

// Layout returns the current segmentation with the cursor located in it.
func (f *Field) Layout() reflow.Layout {
	l := f.layout
	l.Cursor = l.Position(f.text, f.cursor)
	return l
}

// Cursor returns the cursor index and its row/column.
func (f *Field) Cursor() Cursor {
	p := f.layout.Position(f.text, f.cursor)
	return Cursor{Index: f.cursor, Row: p.Row, Col: p.Col}
}

// Clear empties the field and moves the cursor to zero.
func (f *Field) Clear() {
	f.text = f.text[:0]
	f.cursor = 0
	f.relayout()
}

// SetText replaces the content and moves the cursor to the end.
func (f *Field) SetText(s string) {
	f.text = []rune(s)
	f.cursor = len(f.text)
	f.relayout()
}

// Resize re-flows the whole text for a new terminal width.
func (f *Field) Resize(columns int) {
	opts := f.layout.Options()
	if opts.Columns == columns {
		return
	}
	opts.Columns = columns
	f.layout = reflow.New(f.text, opts, f.cursor)
}

// SetPrefix changes the width reserved for the prompt on row 0.
func (f *Field) SetPrefix(width int) {
	opts := f.layout.Options()
	if opts.Prefix == width {
		return
	}
	opts.Prefix = width
	f.layout = reflow.New(f.text, opts, f.cursor)
}

func (f *Field) relayout() {
	f.layout = reflow.New(f.text, f.layout.Options(), f.cursor)
}

// Insert inserts s at the cursor.
func (f *Field) Insert(s string) {
	if err := f.InsertAt(f.cursor, s); err != nil {
		panic(err)
	}
}

// InsertAt inserts s at index at. The cursor moves right by the inserted
// length when at is at or before it.
func (f *Field) InsertAt(at int, s string) error {
	if at < 0 || at > len(f.text) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, at, len(f.text))
	}
	ins := []rune(s)
	if len(ins) == 0 {
		return nil
	}

	text := make([]rune, 0, len(f.text)+len(ins))
	text = append(text, f.text[:at]...)
	text = append(text, ins...)
	text = append(text, f.text[at:]...)
	f.text = text

	if at <= f.cursor {
		f.cursor += len(ins)
	}
	f.carry(at)
	return nil
}

// DeleteBackward removes the rune before the cursor.
// It reports false when the cursor is at the start.
func (f *Field) DeleteBackward() bool {
	if f.cursor == 0 {
		return false
	}
	f.cursor--
	f.deleteAt(f.cursor)
	return true
}

// DeleteForward removes the rune after the cursor.
// It reports false when the cursor is at the end.
func (f *Field) DeleteForward() bool {
	if f.cursor == len(f.text) {
		return false
	}
	f.deleteAt(f.cursor)
	return true
}

func (f *Field) deleteAt(i int) {
	f.text = append(f.text[:i], f.text[i+1:]...)
	f.carry(i)
}

// carry re-flows from the start of the paragraph containing the edit at
// index i. Rows before that paragraph cannot change.
func (f *Field) carry(i int) {
	p := 0
	for j := i - 1; j >= 0; j-- {
		if f.text[j] == '\n' {
			p = j + 1
			break
		}
	}

	old := f.layout.Rows
	k := f.layout.RowOf(p)
	if k < 0 || old[k].Start != p {
		panic(fmt.Sprintf("field: paragraph start %d is not a row start", p))
	}

	opts := f.layout.Options()
	rows := make([]reflow.Row, 0, len(old))
	rows = append(rows, old[:k]...)
	rows = append(rows, reflow.Wrap(f.text, opts, p, k)...)
	f.layout = reflow.FromRows(rows, opts)
}

// MoveCursor moves the cursor by delta runes, clamped to the text.
func (f *Field) MoveCursor(delta int) {
	f.setCursor(f.cursor + delta)
}

func (f *Field) setCursor(i int) {
	f.cursor = max(0, min(i, len(f.text)))
}

// Left moves the cursor back by one grapheme cluster.
func (f *Field) Left() {
	prev := 0
	for _, b := range f.boundaries() {
		if b >= f.cursor {
			break
		}
		prev = b
	}
	f.cursor = prev
}

// Right moves the cursor forward by one grapheme cluster.
func (f *Field) Right() {
	for _, b := range f.boundaries() {
		if b > f.cursor {
			f.cursor = b
			return
		}
	}
}

// boundaries returns the rune index at which each grapheme cluster ends.
func (f *Field) boundaries() []int {
	var out []int
	g := uniseg.NewGraphemes(string(f.text))
	n := 0
	for g.Next() {
		n += len(g.Runes())
		out = append(out, n)
	}
	return out
}

// Home moves the cursor to the start of the text.
func (f *Field) Home() {
	f.cursor = 0
}

// End moves the cursor to the end of the text.
func (f *Field) End() {
	f.cursor = len(f.text)
}

// WordForward moves the cursor to the start of the next word.
func (f *Field) WordForward() {
	i := f.cursor
	for i < len(f.text) && !isSpace(f.text[i]) {
		i++
	}
	for i < len(f.text) && isSpace(f.text[i]) {
		i++
	}
	f.cursor = i
}

// WordBackward moves the cursor to the start of the current or previous
// word.
func (f *Field) WordBackward() {
	i := f.cursor
	for i > 0 && isSpace(f.text[i-1]) {
		i--
	}
	for i > 0 && !isSpace(f.text[i-1]) {
		i--
	}
	f.cursor = i
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
