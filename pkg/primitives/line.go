package primitives

// Cell addresses a single square of a grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Trace steps n times from (row, col) along d and returns the visited cells. This is the path
// convention shared by the grid and every renderer: cell i is (row + Δrow·i, col + Δcol·i).
func Trace(row, col int, d Direction, n int) []Cell {
	if n <= 0 {
		return nil
	}
	dr, dc := d.Deltas()
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = Cell{Row: row + dr*i, Col: col + dc*i}
	}
	return cells
}
