//go:build ebiten

package ui

import (
	"image/color"

	"zoomlife/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
	panelWidth   = 170
)

// HUD renders the status panel in the top-left corner of the window.
type HUD struct {
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a HUD. It starts hidden.
func NewHUD() *HUD { return &HUD{} }

// Visible reports whether the panel is drawn.
func (h *HUD) Visible() bool { return h.visible }

// Update toggles the panel with the H key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the frame's status values over the grid.
func (h *HUD) Draw(screen *ebiten.Image, f world.Frame) {
	if !h.visible {
		return
	}
	params := f.Status().Params
	height := 2*panelPadding + len(params)*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, p := range params {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(h.panel, p.Label, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		text.Draw(h.panel, p.Value, face, panelPadding+85, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}
