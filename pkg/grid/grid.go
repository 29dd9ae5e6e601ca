// Package grid holds the square letter matrix words are placed into.
package grid

import (
	"encoding/json"
	"strings"

	"crosswarped.com/wordsearch/pkg/primitives"
)

// Empty marks a cell no letter has been written to.
const Empty byte = 0

// emptyRepr is how an empty cell is printed.
const emptyRepr = '.'

// Grid is a size × size matrix of cells stored row-major. Every cell is either Empty or holds one
// uppercase ASCII letter. The size never changes after New.
type Grid struct {
	size  int
	cells []byte
}

// New creates an empty grid. A negative size yields a grid with no cells.
func New(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{size: size, cells: make([]byte, size*size)}
}

// Size returns the number of rows, which is also the number of columns.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.size && col < g.size
}

// Get returns the letter at (row, col). It reports false if the cell is out of bounds or empty.
func (g *Grid) Get(row, col int) (byte, bool) {
	if !g.InBounds(row, col) {
		return Empty, false
	}
	ch := g.cells[row*g.size+col]
	return ch, ch != Empty
}

// Set writes ch at (row, col). Writes outside the grid are ignored; callers validate with CanPlace.
func (g *Grid) Set(row, col int, ch byte) {
	if g.InBounds(row, col) {
		g.cells[row*g.size+col] = ch
	}
}

// CanPlace reports whether w fits starting at (row, col) reading along d. Every stepped cell must be
// in bounds and either empty or already holding the same letter, which is how crossing words
// share cells. Directions outside the eight declared ones never fit.
func (g *Grid) CanPlace(w primitives.Word, row, col int, d primitives.Direction) bool {
	if !d.Valid() {
		return false
	}
	dr, dc := d.Deltas()
	for i := range w.Len() {
		r, c := row+dr*i, col+dc*i
		if !g.InBounds(r, c) {
			return false
		}
		if existing, ok := g.Get(r, c); ok && existing != w.LetterAt(i) {
			return false
		}
	}
	return true
}

// PlaceWord writes w along the same path CanPlace checks and returns the placement record.
//
// The caller must have called CanPlace with the same arguments immediately before; PlaceWord does
// not re-validate and overwrites whatever it steps on.
func (g *Grid) PlaceWord(w primitives.Word, row, col int, d primitives.Direction) Placement {
	dr, dc := d.Deltas()
	for i := range w.Len() {
		g.Set(row+dr*i, col+dc*i, w.LetterAt(i))
	}
	return Placement{Word: w, Row: row, Col: col, Direction: d}
}

// EmptyCount returns the number of cells that hold no letter.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, ch := range g.cells {
		if ch == Empty {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.size == other.size && string(g.cells) == string(other.cells)
}

// Rows returns one string per row, with '.' standing in for empty cells.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	for r := range g.size {
		rows[r] = g.rowString(r, nil)
	}
	return rows
}

// rowString renders row r. keep, when non-nil, masks every cell it rejects.
func (g *Grid) rowString(r int, keep func(primitives.Cell) bool) string {
	b := make([]byte, g.size)
	for c := range g.size {
		ch := g.cells[r*g.size+c]
		if ch == Empty || (keep != nil && !keep(primitives.Cell{Row: r, Col: c})) {
			ch = emptyRepr
		}
		b[c] = ch
	}
	return string(b)
}

// Repr prints the grid with letters separated by spaces, one row per line.
func (g *Grid) Repr() string {
	return g.render(nil)
}

// Masked is like Repr but prints only the cells keep accepts; the rest show as '.'.
func (g *Grid) Masked(keep func(primitives.Cell) bool) string {
	return g.render(keep)
}

func (g *Grid) render(keep func(primitives.Cell) bool) string {
	var sb strings.Builder
	for r := range g.size {
		row := g.rowString(r, keep)
		for c := range len(row) {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(row[c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DebugString prints the grid inside a box border.
func (g *Grid) DebugString() string {
	border := strings.Repeat("─", g.size*2+1)

	var sb strings.Builder
	sb.WriteString("┌" + border + "┐\n")
	for r := range g.size {
		sb.WriteString("│ ")
		for _, ch := range []byte(g.rowString(r, nil)) {
			sb.WriteByte(ch)
			sb.WriteByte(' ')
		}
		sb.WriteString("│\n")
	}
	sb.WriteString("└" + border + "┘\n")
	return sb.String()
}

func (g *Grid) String() string {
	return g.Repr()
}

// MarshalJSON encodes the grid as its Rows.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Rows())
}
