package viewport

import "image"

// PixelToCell maps a window pixel to the grid cell beneath it. The viewport
// offset is added before dividing by the cell size. ok is false when the
// pixel falls outside the rows x cols grid, including pixels left of or
// above the grid origin.
func PixelToCell(px, py, cellSize int, offset image.Point, rows, cols int) (row, col int, ok bool) {
	if cellSize <= 0 {
		return 0, 0, false
	}
	row = floorDiv(py+offset.Y, cellSize)
	col = floorDiv(px+offset.X, cellSize)
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}

// CellToPixelRect returns the window rectangle covered by (row, col).
func CellToPixelRect(row, col, cellSize int, offset image.Point) image.Rectangle {
	x := col*cellSize - offset.X
	y := row*cellSize - offset.Y
	return image.Rect(x, y, x+cellSize, y+cellSize)
}

// floorDiv divides rounding towards negative infinity; Go's / truncates
// towards zero, which would map pixel -1 onto cell 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
