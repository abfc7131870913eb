package reflow

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// DefaultMargin is the number of cells kept free at the right edge so the
// cursor can sit after the last character without wrapping.
const DefaultMargin = 1

// Options describes the geometry text is laid out into.
type Options struct {
	// Columns is the terminal width in cells.
	Columns int
	// Prefix is the width of the prompt written before row 0.
	Prefix int
	// Margin is the number of cells kept free at the right edge.
	Margin int
}

// Available returns the usable width of the given row.
// It is never less than one cell.
func (o Options) Available(row int) int {
	w := o.Columns - o.Margin
	if row == 0 {
		w -= o.Prefix
	}
	if w < 1 {
		return 1
	}
	return w
}

// StartCol returns the terminal column the given row starts at.
func (o Options) StartCol(row int) int {
	if row == 0 {
		return o.Prefix
	}
	return 0
}

func (o Options) columns() int {
	if o.Columns < 1 {
		return 1
	}
	return o.Columns
}

// Row is a half-open span [Start, End) of the text.
// A row ending in a newline includes it; Width never counts it. A row that
// filled up before a separator keeps that separator as its last rune
// without counting it either.
type Row struct {
	Start int
	End   int
	Width int
}

// Position is a location in logical row/column coordinates.
// Col is measured in cells from the start of the row.
type Position struct {
	Row int
	Col int
}

// Layout is the segmentation of a text into rows.
type Layout struct {
	Rows   []Row
	Cursor Position
	opts   Options
}

// New lays out text and locates target in a single call.
// It panics if target is outside [0, len(text)].
func New(text []rune, opts Options, target int) Layout {
	l := Layout{Rows: Wrap(text, opts, 0, 0), opts: opts}
	l.Cursor = l.Position(text, target)
	return l
}

// FromRows builds a Layout from rows produced by earlier Wrap calls.
func FromRows(rows []Row, opts Options) Layout {
	return Layout{Rows: rows, opts: opts}
}

// Options returns the geometry the layout was computed for.
func (l Layout) Options() Options {
	return l.opts
}

// Wrap lays out text[start:] assuming start begins row firstRow.
// The returned rows use absolute indexes into text, cover text[start:]
// exactly, and there is always at least one. start must be 0 or follow a
// newline for the result to agree with a full layout.
func Wrap(text []rune, opts Options, start, firstRow int) []Row {
	var rows []Row
	cur := Row{Start: start}

	emit := func(end int) {
		cur.End = end
		rows = append(rows, cur)
		cur = Row{Start: end}
	}

	i := start
	for i < len(text) {
		r := text[i]
		if r == '\n' {
			emit(i + 1)
			i++
			continue
		}

		j := i + 1
		word := !unicode.IsSpace(r)
		if word {
			for j < len(text) && !unicode.IsSpace(text[j]) {
				j++
			}
		}
		w := width(text[i:j])

		avail := opts.Available(firstRow + len(rows))
		if cur.Width > 0 && cur.Width+w > avail {
			if !word {
				// The separator hangs off the full row.
				i = j
				emit(i)
				continue
			}
			emit(i)
			avail = opts.Available(firstRow + len(rows))
		}
		cur.Width += w
		i = j

		// An over-wide word keeps its row to itself.
		if word && w > avail && i < len(text) && text[i] != '\n' {
			emit(i)
		}
	}
	emit(len(text))
	return rows
}

func width(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// RowOf returns the row containing index. An index on a row boundary
// belongs to the following row.
func (l Layout) RowOf(index int) int {
	n := sort.Search(len(l.Rows), func(i int) bool {
		return l.Rows[i].Start > index
	})
	return n - 1
}

// Position converts a logical index into row/column coordinates.
// It panics if index is outside the text covered by the layout.
func (l Layout) Position(text []rune, index int) Position {
	if len(l.Rows) == 0 || index < l.Rows[0].Start || index > l.Rows[len(l.Rows)-1].End {
		panic(fmt.Sprintf("reflow: index %d out of range", index))
	}
	row := l.RowOf(index)
	return Position{Row: row, Col: width(text[l.Rows[row].Start:index])}
}

// visible returns the runes of row that are painted: the row without its
// newline or hanging separator.
func (l Layout) visible(text []rune, row int) []rune {
	r := l.Rows[row]
	end := r.End
	if end > r.Start && (text[end-1] == '\n' || width(text[r.Start:end]) > r.Width) {
		end--
	}
	return text[r.Start:end]
}

// place puts rs on terminal lines starting at column x the way the
// terminal does: a rune that does not fit the rest of the line starts the
// next one. The returned column equals cols while a wrap is pending. put,
// if not nil, receives each rune and the cells skipped before it.
func place(rs []rune, x, cols int, put func(r rune, skipped int)) (int, int) {
	dy := 0
	for _, r := range rs {
		w := runewidth.RuneWidth(r)
		skipped := 0
		if w > 0 && x > 0 && x+w > cols {
			skipped = max(cols-x, 0)
			x = 0
			dy++
		}
		if put != nil {
			put(r, skipped)
		}
		x += w
	}
	return x, dy
}

// Lines returns how many physical terminal lines row occupies. The last
// row also keeps room for a cursor placed after its last cell.
func (l Layout) Lines(text []rune, row int) int {
	cols := l.opts.columns()
	x, dy := place(l.visible(text, row), l.opts.StartCol(row), cols, nil)
	if x >= cols && row == len(l.Rows)-1 {
		return dy + 2
	}
	return dy + 1
}

// Height returns the total number of physical lines of the layout.
func (l Layout) Height(text []rune) int {
	h := 0
	for i := range l.Rows {
		h += l.Lines(text, i)
	}
	return h
}

// Locate maps a logical position to a terminal column and a line offset
// relative to the line holding row 0.
func (l Layout) Locate(text []rune, p Position) (x, dy int) {
	for i := 0; i < p.Row; i++ {
		dy += l.Lines(text, i)
	}
	cols := l.opts.columns()
	rs := l.visible(text, p.Row)
	k, w := 0, 0
	for k < len(rs) && w < p.Col {
		w += runewidth.RuneWidth(rs[k])
		k++
	}
	x, d := place(rs[:k], l.opts.StartCol(p.Row), cols, nil)
	dy += d

	if k < len(rs) {
		// The cursor sits where the next rune lands.
		if n := runewidth.RuneWidth(rs[k]); n > 0 && x > 0 && x+n > cols {
			return 0, dy + 1
		}
		return x, dy
	}
	if x >= cols {
		if p.Row == len(l.Rows)-1 {
			return 0, dy + 1
		}
		return cols - 1, dy
	}
	return x, dy
}

// Paint returns what to write for row starting at its first column: the
// visible runes, blanks for the cells a wrapping wide rune skips, and blanks
// up to the end of the last line the row occupies.
func (l Layout) Paint(text []rune, row int) string {
	cols := l.opts.columns()
	var b strings.Builder
	x, dy := place(l.visible(text, row), l.opts.StartCol(row), cols, func(r rune, skipped int) {
		b.WriteString(strings.Repeat(" ", skipped))
		b.WriteRune(r)
	})
	if pad := (l.Lines(text, row)-dy)*cols - x; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}
