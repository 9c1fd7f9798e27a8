package mood

// Cell is a particle's grid position.
type Cell struct {
	Row int
	Col int
}

// Place returns the grid cell of particle i in rows of rowWidth.
// A non-positive rowWidth puts everything in a single row.
func Place(i, rowWidth int) Cell {
	if rowWidth <= 0 {
		return Cell{Row: 0, Col: i}
	}
	return Cell{Row: i / rowWidth, Col: i % rowWidth}
}

// Grid maps cells to percentage offsets within the viewport. Each particle
// sits in the center of its cell.
type Grid struct {
	RowWidth int
	Rows     int
}

// Position returns the left and top offsets of c as percentages.
func (g Grid) Position(c Cell) (left, top float64) {
	if g.RowWidth > 0 {
		left = (float64(c.Col) + 0.5) / float64(g.RowWidth) * 100
	}
	if g.Rows > 0 {
		top = (float64(c.Row) + 0.5) / float64(g.Rows) * 100
	}
	return left, top
}
