// Package lightsout implements the Lights Out puzzle grid: a rectangle of
// lit/unlit cells where activating a cell flips it and its orthogonal
// neighbours. Grid performs no internal locking.
package lightsout

import (
	"strings"

	"lightsout/pkg/core"
)

const (
	// MinDim is the smallest supported row or column count.
	MinDim = 5
	// MaxDim is the largest supported row or column count.
	MaxDim = 20
)

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

// Size describes the dimensions of a grid.
type Size struct {
	Rows    int
	Columns int
}

// Grid stores the cell states in row-major order.
type Grid struct {
	rows, cols int
	cells      []bool
	lit        int
}

// NewEmpty allocates a grid with every cell unlit.
func NewEmpty(rows, columns int) (*Grid, error) {
	if err := ValidateSize(rows, columns); err != nil {
		return nil, err
	}
	return &Grid{rows: rows, cols: columns, cells: make([]bool, rows*columns)}, nil
}

// NewWithRandomLit allocates a grid and lights exactly initialCount cells
// chosen by src. A nil src falls back to a time-seeded RNG.
func NewWithRandomLit(rows, columns, initialCount int, src Source) (*Grid, error) {
	if err := ValidateInitialCount(rows, columns, initialCount); err != nil {
		return nil, err
	}
	if src == nil {
		src = core.NewTimeRNG()
	}
	g, _ := NewEmpty(rows, columns)
	n := len(g.cells)
	for g.lit < initialCount {
		idx := src.IntN(n)
		if g.cells[idx] {
			continue
		}
		g.cells[idx] = true
		g.lit++
	}
	return g, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the column count.
func (g *Grid) Columns() int { return g.cols }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Columns: g.cols} }

// Index returns the linear offset for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

func (g *Grid) checkCell(row, col int) error {
	if err := checkRange("row", row, 0, g.rows-1); err != nil {
		return err
	}
	return checkRange("col", col, 0, g.cols-1)
}

// CellState reports whether the cell at (row, col) is lit.
func (g *Grid) CellState(row, col int) (bool, error) {
	if err := g.checkCell(row, col); err != nil {
		return false, err
	}
	return g.cells[g.Index(row, col)], nil
}

// LitCount returns the number of lit cells.
func (g *Grid) LitCount() int { return g.lit }

// IsComplete reports whether every light is off.
func (g *Grid) IsComplete() bool { return g.lit == 0 }

// Cells returns a copy of the row-major cell states.
func (g *Grid) Cells() []bool { return append([]bool(nil), g.cells...) }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, cells: g.Cells(), lit: g.lit}
}

// Activate flips (row, col) and its in-bounds orthogonal neighbours. The grid
// is untouched when the position is out of range.
func (g *Grid) Activate(row, col int) error {
	if err := g.checkCell(row, col); err != nil {
		return err
	}
	g.toggle(row, col)
	if col > 0 {
		g.toggle(row, col-1)
	}
	if col < g.cols-1 {
		g.toggle(row, col+1)
	}
	if row > 0 {
		g.toggle(row-1, col)
	}
	if row < g.rows-1 {
		g.toggle(row+1, col)
	}
	return nil
}

func (g *Grid) toggle(row, col int) {
	idx := g.Index(row, col)
	g.cells[idx] = !g.cells[idx]
	if g.cells[idx] {
		g.lit++
	} else {
		g.lit--
	}
}

// String renders one line per row, '#' for lit and '.' for unlit.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[g.Index(r, c)] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
