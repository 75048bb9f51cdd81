//go:build ebiten

package render

import (
	"image"

	"zoomlife/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter rasterises frames into a window-sized RGBA buffer and uploads
// it to a single ebiten image.
type GridPainter struct {
	w, h int
	pal  Palette
	img  *ebiten.Image
	buf  *image.RGBA
}

// NewGridPainter allocates a painter for a w*h pixel window.
func NewGridPainter(w, h int, pal Palette) *GridPainter {
	return &GridPainter{
		w:   w,
		h:   h,
		pal: pal,
		img: ebiten.NewImage(w, h),
		buf: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
}

// Blit paints the frame and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, f world.Frame) {
	Paint(gp.buf, f, gp.pal)
	gp.img.WritePixels(gp.buf.Pix)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
