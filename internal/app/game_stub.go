//go:build !ebiten

package app

import (
	"log"

	"zoomlife/internal/render"
	"zoomlife/internal/world"
)

// WindowOptions mirrors the GUI build so callers compile in both builds.
type WindowOptions struct {
	Title   string
	TPS     int
	Palette render.Palette
	Logger  *log.Logger
}

// RunWindow always reports that the GUI build tag is missing.
func RunWindow(*world.State, WindowOptions) error {
	return ErrNoWindow
}
