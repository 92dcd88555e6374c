package model

import (
	"github.com/pkg/errors"
)

// maxCells caps the padded buffer size so absurd dimensions fail with an
// error instead of taking the process down inside make.
const maxCells = 1 << 28

var (
	// ErrInvalidSize is returned when rows or cols is less than 1.
	ErrInvalidSize = errors.New("grid dimensions must be at least 1x1")
	// ErrGridTooLarge is returned when the padded buffer would exceed maxCells.
	ErrGridTooLarge = errors.New("grid dimensions exceed maximum buffer size")
	// ErrSizeMismatch is returned when copying between grids of different dimensions.
	ErrSizeMismatch = errors.New("grid dimensions do not match")
)

// Grid represents the game board: a rows x cols interior surrounded by a
// one-cell border that stays dead for the lifetime of the grid. The border
// bounds neighbor counting without wraparound, so interior coordinates are
// 1-based: (r, c) with 1 <= r <= rows, 1 <= c <= cols.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates an all-dead grid with the specified interior dimensions
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] rows: %d, cols: %d", rows, cols)
	}
	if rows+2 > maxCells/(cols+2) {
		return nil, errors.Wrapf(ErrGridTooLarge, "[NewGrid] rows: %d, cols: %d", rows, cols)
	}

	cells := make([][]Cell, rows+2)
	for i := range cells {
		cells[i] = make([]Cell, cols+2)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the interior row count
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the interior column count
func (g *Grid) Cols() int {
	return g.cols
}

// Reset resizes the grid to new interior dimensions and kills every cell
func (g *Grid) Reset(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return errors.Wrapf(ErrInvalidSize, "[Reset] rows: %d, cols: %d", rows, cols)
	}
	if rows+2 > maxCells/(cols+2) {
		return errors.Wrapf(ErrGridTooLarge, "[Reset] rows: %d, cols: %d", rows, cols)
	}

	g.rows = rows
	g.cols = cols

	// Resize rows if needed
	if len(g.cells) != rows+2 {
		g.cells = make([][]Cell, rows+2)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols+2 {
			g.cells[i] = make([]Cell, cols+2)
		} else {
			// Clear existing cells
			for j := range g.cells[i] {
				g.cells[i][j] = Dead
			}
		}
	}
	return nil
}

// Clear kills every cell, border included
func (g *Grid) Clear() {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j] = Dead
		}
	}
}

// Set writes the state of interior cell (r, c). Border and out-of-range
// coordinates are ignored, so the border can never be written after
// allocation.
func (g *Grid) Set(r, c int, state Cell) {
	if r >= 1 && r <= g.rows && c >= 1 && c <= g.cols {
		g.cells[r][c] = state
	}
}

// SetAlive marks interior cell (r, c) alive
func (g *Grid) SetAlive(r, c int) {
	g.Set(r, c, Alive)
}

// Get returns the state of cell (r, c), Dead for any out-of-range coordinate
func (g *Grid) Get(r, c int) Cell {
	if r < 0 || r > g.rows+1 || c < 0 || c > g.cols+1 {
		return Dead
	}
	return g.cells[r][c]
}

// CountNeighbors counts alive cells among the 8 Moore neighbors of interior
// cell (r, c). The dead border makes every neighbor access safe without
// clamping.
func (g *Grid) CountNeighbors(r, c int) int {
	count := 0
	for i := r - 1; i <= r+1; i++ {
		for j := c - 1; j <= c+1; j++ {
			if i == r && j == c {
				continue // Skip the cell itself
			}
			if g.cells[i][j] == Alive {
				count++
			}
		}
	}
	return count
}

// CopyInto copies the entire buffer, border included, into dst. The
// destination must have identical dimensions.
func (g *Grid) CopyInto(dst *Grid) error {
	if dst.rows != g.rows || dst.cols != g.cols {
		return errors.Wrapf(ErrSizeMismatch,
			"[CopyInto] src: %dx%d, dst: %dx%d", g.rows, g.cols, dst.rows, dst.cols)
	}
	for i := range g.cells {
		copy(dst.cells[i], g.cells[i])
	}
	return nil
}

// Population returns the total number of alive interior cells
func (g *Grid) Population() (count int) {
	for r := 1; r <= g.rows; r++ {
		for c := 1; c <= g.cols; c++ {
			if g.cells[r][c] == Alive {
				count++
			}
		}
	}
	return
}

// Equal reports whether two grids have identical dimensions and contents
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		for j := range g.cells[i] {
			if g.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}
