package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cell is one screen position. A wide rune occupies its cell and marks
// the next one as a continuation.
type cell struct {
	main rune
	comb []rune
	cont bool
}

var blank = cell{main: ' '}

// grid holds screen contents and implements the write and cursor
// semantics shared by every Terminal.
type grid struct {
	width   int
	height  int
	lines   [][]cell
	x, y    int
	pending bool
	visible bool
}

func newGrid(width, height int) *grid {
	g := &grid{visible: true}
	g.resize(width, height)
	return g
}

func blankLine(width int) []cell {
	line := make([]cell, width)
	for i := range line {
		line[i] = blank
	}
	return line
}

// resize keeps the top-left of the existing contents.
func (g *grid) resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	lines := make([][]cell, height)
	for y := range lines {
		lines[y] = blankLine(width)
		if y < len(g.lines) {
			copy(lines[y], g.lines[y])
		}
	}
	g.width, g.height, g.lines = width, height, lines
	g.x, g.y = min(g.x, width-1), min(g.y, height-1)
	g.pending = false
}

func (g *grid) lineFeed() {
	if g.y < g.height-1 {
		g.y++
		return
	}
	copy(g.lines, g.lines[1:])
	g.lines[g.height-1] = blankLine(g.width)
}

func (g *grid) write(s string) {
	for _, r := range s {
		switch r {
		case '\n':
			g.pending = false
			g.x = 0
			g.lineFeed()
		case '\r':
			g.pending = false
			g.x = 0
		default:
			g.put(r)
		}
	}
}

func (g *grid) put(r rune) {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		g.combine(r)
		return
	}
	if g.pending || (g.x > 0 && g.x+w > g.width) {
		g.pending = false
		g.x = 0
		g.lineFeed()
	}

	line := g.lines[g.y]
	line[g.x] = cell{main: r}
	if w == 2 && g.x+1 < g.width {
		line[g.x+1] = cell{cont: true}
	}
	g.x += w
	if g.x >= g.width {
		g.x = g.width - 1
		g.pending = true
	}
}

// combine attaches a zero-width rune to the last written cell.
func (g *grid) combine(r rune) {
	x := g.x - 1
	if g.pending {
		x = g.x
	}
	if x < 0 {
		return
	}
	line := g.lines[g.y]
	if line[x].cont && x > 0 {
		x--
	}
	line[x].comb = append(line[x].comb, r)
}

func (g *grid) setCursor(x, y int) {
	g.x = max(0, min(x, g.width-1))
	g.y = max(0, min(y, g.height-1))
	g.pending = false
}

// text returns line y with trailing blanks removed.
func (g *grid) text(y int) string {
	var b strings.Builder
	for _, c := range g.lines[y] {
		if c.cont {
			continue
		}
		b.WriteRune(c.main)
		for _, r := range c.comb {
			b.WriteRune(r)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
