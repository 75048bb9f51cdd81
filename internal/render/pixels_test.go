package render

import (
	"image"
	"image/color"
	"testing"

	"zoomlife/internal/core"
	"zoomlife/internal/world"
)

func frame(t *testing.T, w, h, cellSize int, alive ...[2]int) world.Frame {
	t.Helper()
	s, err := world.New(world.Options{WindowWidth: w, WindowHeight: h, CellSize: cellSize})
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range alive {
		if err := s.Grid.Set(c[0], c[1], core.Alive); err != nil {
			t.Fatal(err)
		}
	}
	return s.Snapshot()
}

func expectPixel(t *testing.T, img *image.RGBA, x, y int, want color.RGBA) {
	t.Helper()
	if got := img.RGBAAt(x, y); got != want {
		t.Fatalf("pixel (%d,%d)=%v, want %v", x, y, got, want)
	}
}

func TestPaintCellsAndBorders(t *testing.T) {
	f := frame(t, 25, 25, 10, [2]int{0, 0})
	img := image.NewRGBA(image.Rect(0, 0, 25, 25))
	pal := DefaultPalette
	Paint(img, f, pal)

	expectPixel(t, img, 5, 5, pal.Alive)
	expectPixel(t, img, 0, 0, pal.Border)
	expectPixel(t, img, 9, 5, pal.Border)
	expectPixel(t, img, 5, 9, pal.Border)
	expectPixel(t, img, 15, 15, pal.Dead)
	expectPixel(t, img, 10, 15, pal.Border)
	expectPixel(t, img, 19, 19, pal.Border)
	// 25px window with 10px cells leaves an unused margin.
	expectPixel(t, img, 22, 22, pal.Dead)
	expectPixel(t, img, 22, 5, pal.Dead)
}

func TestPaintClipsToViewport(t *testing.T) {
	f := frame(t, 20, 20, 10, [2]int{1, 1})
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	pal := Palette{
		Dead:   color.RGBA{A: 255},
		Alive:  color.RGBA{R: 200, A: 255},
		Border: color.RGBA{G: 200, A: 255},
	}
	f.Viewport = image.Rect(0, 0, 15, 15)
	Paint(img, f, pal)

	expectPixel(t, img, 12, 12, pal.Alive)
	expectPixel(t, img, 16, 16, pal.Dead)
	expectPixel(t, img, 19, 12, pal.Dead)
}

func TestPaintRepaintsAfterZoom(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	Paint(img, frame(t, 30, 30, 5, [2]int{5, 5}), DefaultPalette)
	Paint(img, frame(t, 30, 30, 10), DefaultPalette)
	expectPixel(t, img, 27, 27, DefaultPalette.Dead)
}

func TestPaletteColour(t *testing.T) {
	if DefaultPalette.Colour(core.Alive) != DefaultPalette.Alive || DefaultPalette.Colour(core.Dead) != DefaultPalette.Dead {
		t.Fatal("palette must map 1 to Alive and 0 to Dead")
	}
}
