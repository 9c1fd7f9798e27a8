package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		rowWidth int
		want     Cell
	}{
		{name: "first", index: 0, rowWidth: 6, want: Cell{Row: 0, Col: 0}},
		{name: "end of first row", index: 5, rowWidth: 6, want: Cell{Row: 0, Col: 5}},
		{name: "wraps", index: 6, rowWidth: 6, want: Cell{Row: 1, Col: 0}},
		{name: "later row", index: 23, rowWidth: 6, want: Cell{Row: 3, Col: 5}},
		{name: "zero width is one row", index: 7, rowWidth: 0, want: Cell{Row: 0, Col: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Place(tt.index, tt.rowWidth)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Place(tt.index, tt.rowWidth))
		})
	}
}

func TestGridPosition(t *testing.T) {
	g := Grid{RowWidth: 4, Rows: 2}

	left, top := g.Position(Cell{Row: 0, Col: 0})
	assert.InDelta(t, 12.5, left, 1e-9)
	assert.InDelta(t, 25.0, top, 1e-9)

	left, top = g.Position(Cell{Row: 1, Col: 3})
	assert.InDelta(t, 87.5, left, 1e-9)
	assert.InDelta(t, 75.0, top, 1e-9)
}
