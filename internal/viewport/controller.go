package viewport

import (
	"image"

	"zoomlife/internal/core"
)

const (
	// MinCellSize is the smallest cell edge in pixels zooming can reach.
	MinCellSize = 5
	// ZoomStep is the cell size change applied per scroll-wheel tick.
	ZoomStep = 5
)

// Config holds the window geometry and the current cell size. Rows and Cols
// are always WindowHeight/CellSize and WindowWidth/CellSize.
type Config struct {
	WindowWidth  int
	WindowHeight int
	CellSize     int
	Rows         int
	Cols         int
}

// Controller owns the viewport configuration and keeps the grid dimensions
// consistent with it.
type Controller struct {
	cfg  Config
	rect image.Rectangle
}

// New returns a controller for a window of the given size. The cell size is
// clamped to MinCellSize.
func New(windowWidth, windowHeight, cellSize int) *Controller {
	c := &Controller{
		cfg:  Config{WindowWidth: windowWidth, WindowHeight: windowHeight},
		rect: image.Rect(0, 0, windowWidth, windowHeight),
	}
	c.setCellSize(cellSize)
	return c
}

// Config returns a copy of the current configuration.
func (c *Controller) Config() Config { return c.cfg }

// CellSize returns the current cell edge in pixels.
func (c *Controller) CellSize() int { return c.cfg.CellSize }

// Rect returns the rendered window region. It always covers the whole window.
func (c *Controller) Rect() image.Rectangle { return c.rect }

// Offset returns the viewport origin used by the pixel mapping.
func (c *Controller) Offset() image.Point { return c.rect.Min }

// NewGrid allocates a dead grid matching the current configuration.
func (c *Controller) NewGrid() *core.Grid {
	return core.NewGrid(c.cfg.Rows, c.cfg.Cols)
}

// PixelToCell maps a window pixel to a cell of the current grid.
func (c *Controller) PixelToCell(px, py int) (row, col int, ok bool) {
	return PixelToCell(px, py, c.cfg.CellSize, c.Offset(), c.cfg.Rows, c.cfg.Cols)
}

// CellRect returns the window rectangle of (row, col).
func (c *Controller) CellRect(row, col int) image.Rectangle {
	return CellToPixelRect(row, col, c.cfg.CellSize, c.Offset())
}

// ApplyZoom changes the cell size by delta, never going below MinCellSize,
// and resizes g to the new dimensions keeping the overlapping cells.
func (c *Controller) ApplyZoom(delta int, g *core.Grid) {
	c.setCellSize(c.cfg.CellSize + delta)
	g.Resize(c.cfg.Rows, c.cfg.Cols)
}

func (c *Controller) setCellSize(size int) {
	c.cfg.CellSize = max(MinCellSize, size)
	c.cfg.Rows = c.cfg.WindowHeight / c.cfg.CellSize
	c.cfg.Cols = c.cfg.WindowWidth / c.cfg.CellSize
}
