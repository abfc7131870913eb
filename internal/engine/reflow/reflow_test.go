package reflow

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func rowText(text []rune, r Row) string {
	return string(text[r.Start:r.End])
}

func rowTexts(text []rune, rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = rowText(text, r)
	}
	return out
}

func TestWrapGreedy(t *testing.T) {
	text := []rune("hello world again")
	opts := Options{Columns: 10, Margin: 1}

	rows := Wrap(text, opts, 0, 0)

	assert.Equal(t, []string{"hello ", "world ", "again"}, rowTexts(text, rows))
	assert.Equal(t, 6, rows[0].Width)
	assert.Equal(t, 5, rows[2].Width)
}

func TestWrapEmptyText(t *testing.T) {
	rows := Wrap(nil, Options{Columns: 10, Margin: 1}, 0, 0)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{}, rows[0])
}

func TestWrapPrefixNarrowsFirstRow(t *testing.T) {
	text := []rune("abcd efgh")
	opts := Options{Columns: 10, Prefix: 2, Margin: 1}

	l := New(text, opts, 0)

	assert.Equal(t, []string{"abcd ", "efgh"}, rowTexts(text, l.Rows))
	x, dy := l.Locate(text, Position{})
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, dy)
}

func TestWrapHardNewlines(t *testing.T) {
	text := []rune("ab\n\ncd")
	rows := Wrap(text, Options{Columns: 10, Margin: 1}, 0, 0)

	assert.Equal(t, []string{"ab\n", "\n", "cd"}, rowTexts(text, rows))
	assert.Equal(t, 2, rows[0].Width)
	assert.Equal(t, 0, rows[1].Width)
}

func TestTrailingNewlineProducesEmptyRow(t *testing.T) {
	text := []rune("ab\n")
	l := New(text, Options{Columns: 10, Margin: 1}, len(text))

	require.Len(t, l.Rows, 2)
	assert.Equal(t, Row{Start: 3, End: 3}, l.Rows[1])
	assert.Equal(t, Position{Row: 1, Col: 0}, l.Cursor)
}

func TestBoundaryIndexBelongsToNextRow(t *testing.T) {
	text := []rune("hello world")
	l := New(text, Options{Columns: 10, Margin: 1}, 6)

	require.Len(t, l.Rows, 2)
	assert.Equal(t, 6, l.Rows[1].Start)
	assert.Equal(t, Position{Row: 1, Col: 0}, l.Cursor)
	assert.Equal(t, Position{Row: 0, Col: 5}, l.Position(text, 5))
}

func TestCursorAtEndOfText(t *testing.T) {
	text := []rune("hello world")
	l := New(text, Options{Columns: 10, Margin: 1}, len(text))

	assert.Equal(t, Position{Row: 1, Col: 5}, l.Cursor)
	x, dy := l.Locate(text, l.Cursor)
	assert.Equal(t, 5, x)
	assert.Equal(t, 1, dy)
}

func TestOverWideWordGetsDedicatedRow(t *testing.T) {
	text := []rune("ab abcdefghijklm cd")
	l := New(text, Options{Columns: 10, Margin: 1}, 0)

	require.Equal(t, []string{"ab ", "abcdefghijklm", " cd"}, rowTexts(text, l.Rows))
	assert.Equal(t, 13, l.Rows[1].Width)
	assert.Equal(t, 1, l.Lines(text, 0))
	assert.Equal(t, 2, l.Lines(text, 1))
	assert.Equal(t, 4, l.Height(text))

	x, dy := l.Locate(text, Position{Row: 1, Col: 12})
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, dy)

	x, dy = l.Locate(text, Position{Row: 2, Col: 0})
	assert.Equal(t, 0, x)
	assert.Equal(t, 3, dy)
}

func TestOverWideWordAtEndHasNoTrailingRow(t *testing.T) {
	text := []rune("abcdefghijklm")
	rows := Wrap(text, Options{Columns: 10, Margin: 1}, 0, 0)
	require.Len(t, rows, 1)
}

func TestWideRunes(t *testing.T) {
	text := []rune("世界 世界世界世界世")
	l := New(text, Options{Columns: 10, Margin: 1}, len(text))

	require.Len(t, l.Rows, 2)
	assert.Equal(t, 5, l.Rows[0].Width)
	assert.Equal(t, 14, l.Rows[1].Width)
	assert.Equal(t, Position{Row: 1, Col: 14}, l.Cursor)
}

func TestFullWidthRowReservesCursorLine(t *testing.T) {
	text := []rune("abcdefghij")
	l := New(text, Options{Columns: 10}, len(text))

	assert.Equal(t, 2, l.Lines(text, 0))
	x, dy := l.Locate(text, l.Cursor)
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, dy)
}

func TestFullRowsMidTextShareNoBlankLine(t *testing.T) {
	text := []rune("abcdefgh ijklmnopqr st")
	l := New(text, Options{Columns: 10, Prefix: 2}, 8)

	require.Equal(t, []string{"abcdefgh ", "ijklmnopqr ", "st"}, rowTexts(text, l.Rows))
	assert.Equal(t, 1, l.Lines(text, 0))
	assert.Equal(t, 1, l.Lines(text, 1))
	assert.Equal(t, 3, l.Height(text))
	assert.Equal(t, "abcdefgh", l.Paint(text, 0))

	x, dy := l.Locate(text, l.Cursor)
	assert.Equal(t, 9, x)
	assert.Equal(t, 0, dy)
}

func TestSeparatorHangsOffFullRow(t *testing.T) {
	text := []rune("abcdefg hijklmnop")
	l := New(text, Options{Columns: 10, Prefix: 2, Margin: 1}, 7)

	require.Equal(t, []string{"abcdefg ", "hijklmnop"}, rowTexts(text, l.Rows))
	assert.Equal(t, 7, l.Rows[0].Width)
	assert.Equal(t, 9, l.Rows[1].Width)
	assert.Equal(t, 2, l.Height(text))
	assert.Equal(t, "abcdefg ", l.Paint(text, 0))

	assert.Equal(t, Position{Row: 0, Col: 7}, l.Cursor)
	x, dy := l.Locate(text, l.Cursor)
	assert.Equal(t, 9, x)
	assert.Equal(t, 0, dy)
	assert.Equal(t, Position{Row: 1, Col: 0}, l.Position(text, 8))
}

func TestWideRuneWrapsBeforeRightEdge(t *testing.T) {
	text := []rune("世世世世世世世世")
	l := New(text, Options{Columns: 10, Prefix: 1, Margin: 1}, len(text))

	require.Len(t, l.Rows, 1)
	assert.Equal(t, 16, l.Rows[0].Width)
	assert.Equal(t, 2, l.Lines(text, 0))
	assert.Equal(t, "世世世世 世世世世  ", l.Paint(text, 0))

	x, dy := l.Locate(text, l.Cursor)
	assert.Equal(t, 8, x)
	assert.Equal(t, 1, dy)

	// The fifth rune does not fit after column 9 and lands on the next line.
	x, dy = l.Locate(text, Position{Row: 0, Col: 8})
	assert.Equal(t, 0, x)
	assert.Equal(t, 1, dy)
	x, dy = l.Locate(text, Position{Row: 0, Col: 6})
	assert.Equal(t, 7, x)
	assert.Equal(t, 0, dy)
}

func TestPositionPanicsOutOfRange(t *testing.T) {
	text := []rune("abc")
	l := New(text, Options{Columns: 10, Margin: 1}, 0)
	assert.Panics(t, func() { l.Position(text, 4) })
}

func TestAvailableNeverBelowOne(t *testing.T) {
	opts := Options{Columns: 3, Prefix: 5, Margin: 1}
	assert.Equal(t, 1, opts.Available(0))
	assert.Equal(t, 2, opts.Available(1))
}

func genText(t *rapid.T) []rune {
	return rapid.SliceOfN(rapid.SampledFrom([]rune{'a', 'b', 'c', ' ', ' ', '\n', '世'}), 0, 60).Draw(t, "text")
}

func genOptions(t *rapid.T) Options {
	return Options{
		Columns: rapid.IntRange(1, 16).Draw(t, "columns"),
		Prefix:  rapid.IntRange(0, 4).Draw(t, "prefix"),
		Margin:  rapid.IntRange(0, 2).Draw(t, "margin"),
	}
}

func TestWrapProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := genText(t)
		opts := genOptions(t)
		rows := Wrap(text, opts, 0, 0)

		var joined strings.Builder
		for i, r := range rows {
			body := strings.TrimSuffix(rowText(text, r), "\n")
			joined.WriteString(rowText(text, r))

			if strings.ContainsRune(body, '\n') {
				t.Fatalf("row %d has an inner newline: %q", i, body)
			}
			if w := runewidthOf(body); r.Width != w {
				hangs := strings.HasSuffix(body, " ") && r.Width == w-1 && w > opts.Available(i)
				if !hangs {
					t.Fatalf("row %d width %d, want %d", i, r.Width, w)
				}
			}
			if r.Width > opts.Available(i) && strings.IndexFunc(body, unicode.IsSpace) >= 0 {
				t.Fatalf("row %d %q overflows %d cells", i, body, opts.Available(i))
			}
			if i < len(rows)-1 && r.Start == r.End {
				t.Fatalf("empty row %d before the last", i)
			}
		}
		if joined.String() != string(text) {
			t.Fatalf("rows do not cover the text: %q != %q", joined.String(), string(text))
		}
	})
}

func TestPaintMatchesLocate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := genText(t)
		opts := genOptions(t)
		// Every rune fits on a line and the prompt fits on the first.
		opts.Columns = max(opts.Columns, 4)
		l := New(text, opts, 0)
		height := l.Height(text)

		for i := range l.Rows {
			got := runewidthOf(l.Paint(text, i))
			want := l.Lines(text, i)*opts.Columns - opts.StartCol(i)
			if got != want {
				t.Fatalf("row %d paints %d cells, want %d", i, got, want)
			}
		}
		for idx := 0; idx <= len(text); idx++ {
			x, dy := l.Locate(text, l.Position(text, idx))
			if x < 0 || x >= opts.Columns || dy < 0 || dy >= height {
				t.Fatalf("index %d located at (%d,%d) outside %dx%d", idx, x, dy, opts.Columns, height)
			}
		}
	})
}

func TestWrapFromParagraphMatchesFullLayout(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := genText(t)
		opts := genOptions(t)
		full := New(text, opts, 0)

		for p := 0; p <= len(text); p++ {
			if p > 0 && text[p-1] != '\n' {
				continue
			}
			k := full.RowOf(p)
			if full.Rows[k].Start != p {
				t.Fatalf("paragraph start %d is not a row start", p)
			}
			got := Wrap(text, opts, p, k)
			if len(got) != len(full.Rows[k:]) {
				t.Fatalf("wrap from %d: %d rows, want %d", p, len(got), len(full.Rows[k:]))
			}
			for i := range got {
				if got[i] != full.Rows[k+i] {
					t.Fatalf("wrap from %d: row %d = %+v, want %+v", p, i, got[i], full.Rows[k+i])
				}
			}
		}
	})
}

func TestLayoutDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := genText(t)
		opts := genOptions(t)
		target := rapid.IntRange(0, len(text)).Draw(t, "target")

		a := New(text, opts, target)
		b := New(append([]rune(nil), text...), opts, target)
		if a.Cursor != b.Cursor || len(a.Rows) != len(b.Rows) {
			t.Fatalf("layouts differ: %+v vs %+v", a, b)
		}
		for i := range a.Rows {
			if a.Rows[i] != b.Rows[i] {
				t.Fatalf("row %d differs", i)
			}
		}
	})
}

func runewidthOf(s string) int {
	return width([]rune(s))
}
