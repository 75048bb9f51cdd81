package render

import (
	"image"
	"image/color"

	"zoomlife/internal/core"
	"zoomlife/internal/viewport"
	"zoomlife/internal/world"
)

// Palette maps cell values to colours. Border outlines every cell.
type Palette struct {
	Dead   color.RGBA
	Alive  color.RGBA
	Border color.RGBA
}

// DefaultPalette draws white cells on black with a dark grey grid.
var DefaultPalette = Palette{
	Dead:   color.RGBA{A: 255},
	Alive:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Border: color.RGBA{R: 64, G: 64, B: 64, A: 255},
}

// Colour returns the fill colour for a cell value.
func (p Palette) Colour(cell uint8) color.RGBA {
	if cell != core.Dead {
		return p.Alive
	}
	return p.Dead
}

// Paint draws the frame into dst: the background, one filled rectangle per
// visible cell and a 1px border around each. Drawing is clipped to the
// viewport, which is mapped onto dst's origin.
func Paint(dst *image.RGBA, f world.Frame, pal Palette) {
	clip := image.Rect(0, 0, f.Viewport.Dx(), f.Viewport.Dy()).Intersect(dst.Bounds())
	fillRect(dst, dst.Bounds(), pal.Dead)

	size := f.View.CellSize
	off := f.Offset()
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			r := viewport.CellToPixelRect(row, col, size, off)
			if !r.Overlaps(clip) {
				continue
			}
			fillRect(dst, r.Intersect(clip), pal.Colour(f.At(row, col)))
			strokeRect(dst, r, clip, pal.Border)
		}
	}
}

func strokeRect(dst *image.RGBA, r, clip image.Rectangle, c color.RGBA) {
	edges := [4]image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		fillRect(dst, e.Intersect(clip), c)
	}
}

// fillRect writes c straight into the pixel buffer for every point of r.
func fillRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Pix[base+0] = c.R
			dst.Pix[base+1] = c.G
			dst.Pix[base+2] = c.B
			dst.Pix[base+3] = c.A
			base += 4
		}
	}
}
