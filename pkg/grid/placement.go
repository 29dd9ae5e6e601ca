package grid

import "crosswarped.com/wordsearch/pkg/primitives"

// Placement records where a word was written: its first letter sits at (Row, Col) and the rest
// follow Direction. Renderers rebuild the occupied cells with primitives.Trace.
type Placement struct {
	Word      primitives.Word      `json:"word"`
	Row       int                  `json:"row"`
	Col       int                  `json:"col"`
	Direction primitives.Direction `json:"direction"`
}

// Cells returns the cells the word occupies, first letter first.
func (p Placement) Cells() []primitives.Cell {
	return primitives.Trace(p.Row, p.Col, p.Direction, p.Word.Len())
}

// CoveredCells returns the set of cells used by at least one of placements.
func CoveredCells(placements []Placement) map[primitives.Cell]bool {
	cells := make(map[primitives.Cell]bool)
	for _, p := range placements {
		for _, c := range p.Cells() {
			cells[c] = true
		}
	}
	return cells
}

// End returns the cell holding the last letter.
func (p Placement) End() primitives.Cell {
	n := p.Word.Len()
	if n == 0 {
		return primitives.Cell{Row: p.Row, Col: p.Col}
	}
	dr, dc := p.Direction.Deltas()
	return primitives.Cell{Row: p.Row + dr*(n-1), Col: p.Col + dc*(n-1)}
}
