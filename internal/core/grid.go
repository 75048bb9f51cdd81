package core

import "fmt"

const (
	// Dead is the value of an unpopulated cell.
	Dead uint8 = 0
	// Alive is the value of a populated cell.
	Alive uint8 = 1
)

// Grid stores a 2D grid of binary cell values in row-major order with the
// origin at the top-left corner.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions. Non-positive
// dimensions produce an empty grid.
func NewGrid(rows, cols int) *Grid {
	rows, cols = clampDims(rows, cols)
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

func clampDims(rows, cols int) (int, int) {
	if rows <= 0 || cols <= 0 {
		return 0, 0
	}
	return rows, cols
}

// Cells exposes the backing slice. Callers must treat it as read-only; use
// Set, Toggle or Swap to mutate the grid.
func (g *Grid) Cells() []uint8 { return g.data }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the cell value at (row, col), treating out-of-bounds coordinates
// as dead. It is the unchecked accessor used by the neighbour rule.
func (g *Grid) At(row, col int) uint8 {
	if !g.InBounds(row, col) {
		return Dead
	}
	return g.data[g.Index(row, col)]
}

// Get returns the cell value at (row, col).
func (g *Grid) Get(row, col int) (uint8, error) {
	if !g.InBounds(row, col) {
		return Dead, g.rangeErr(row, col)
	}
	return g.data[g.Index(row, col)], nil
}

// Set stores value at (row, col). The value must be Dead or Alive.
func (g *Grid) Set(row, col int, value uint8) error {
	if !g.InBounds(row, col) {
		return g.rangeErr(row, col)
	}
	if value > Alive {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidValue, value, row, col)
	}
	g.data[g.Index(row, col)] = value
	return nil
}

// Toggle flips the cell at (row, col) between dead and alive.
func (g *Grid) Toggle(row, col int) error {
	if !g.InBounds(row, col) {
		return g.rangeErr(row, col)
	}
	g.data[g.Index(row, col)] ^= 1
	return nil
}

func (g *Grid) rangeErr(row, col int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrOutOfRange, row, col, g.Rows, g.Cols)
}

// Resize replaces the grid with a newRows x newCols one. The overlapping
// top-left rectangle keeps its values, every other cell starts dead.
func (g *Grid) Resize(newRows, newCols int) {
	newRows, newCols = clampDims(newRows, newCols)
	next := make([]uint8, newRows*newCols)
	keepRows := min(g.Rows, newRows)
	keepCols := min(g.Cols, newCols)
	for r := 0; r < keepRows; r++ {
		copy(next[r*newCols:r*newCols+keepCols], g.data[r*g.Cols:r*g.Cols+keepCols])
	}
	*g = Grid{Rows: newRows, Cols: newCols, data: next}
}

// Swap installs next as the current cell buffer and returns the previous one
// so it can be reused as scratch space. next must match the grid size.
func (g *Grid) Swap(next []uint8) []uint8 {
	if len(next) != len(g.data) {
		panic(fmt.Sprintf("core: swap buffer has %d cells, grid has %d", len(next), len(g.data)))
	}
	prev := g.data
	g.data = next
	return prev
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		n += int(c)
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{Rows: g.Rows, Cols: g.Cols, data: append([]uint8(nil), g.data...)}
}
