// Package reflow computes how logical text is split into screen rows.
//
// Layout is a pure function of the text and the terminal geometry. Text is
// broken into units: maximal runs of non-whitespace (words) and single
// whitespace runes. Units are packed greedily into rows no wider than the
// available width; a newline ends its row right after itself. A word wider
// than a whole row is placed alone on a row of its own and is never split,
// so such a row may occupy more than one physical terminal line. Lines,
// Height and Locate translate logical rows into physical lines for that
// case.
//
// The same scan locates a target index: an index that falls on a row
// boundary belongs to the following row, and the end of the text belongs to
// the last row.
package reflow
