//go:build ebiten

package app

import (
	"errors"
	"log"
	"math"

	"zoomlife/internal/input"
	"zoomlife/internal/render"
	"zoomlife/internal/ui"
	"zoomlife/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowOptions configure the ebiten window.
type WindowOptions struct {
	Title   string
	TPS     int
	Palette render.Palette
	Logger  *log.Logger
}

var keyMap = []struct {
	eb ebiten.Key
	k  input.Key
}{
	{ebiten.KeySpace, input.KeySpace},
	{ebiten.KeyN, input.KeyN},
	{ebiten.KeyC, input.KeyC},
	{ebiten.KeyR, input.KeyR},
	{ebiten.KeyQ, input.KeyQ},
	{ebiten.KeyEscape, input.KeyEscape},
}

var buttonMap = []struct {
	eb ebiten.MouseButton
	b  input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonPrimary},
	{ebiten.MouseButtonRight, input.ButtonSecondary},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
}

// Game adapts the main loop to the ebiten.Game interface. ebiten calls
// Update at the configured TPS, which is the loop's frame throttle.
type Game struct {
	loop    *Loop
	painter *render.GridPainter
	hud     *ui.HUD
	last    frameSink
	events  []input.Event
}

type frameSink struct {
	frame world.Frame
}

func (s *frameSink) Draw(f world.Frame) error {
	s.frame = f
	return nil
}

// New constructs a Game for the provided state.
func New(state *world.State, opts WindowOptions) *Game {
	cfg := state.View.Config()
	g := &Game{
		painter: render.NewGridPainter(cfg.WindowWidth, cfg.WindowHeight, opts.Palette),
		hud:     ui.NewHUD(),
	}
	g.last.frame = state.Snapshot()
	g.loop = NewLoop(state, g, &g.last, opts.TPS, opts.Logger)
	return g
}

// Poll collects this tick's ebiten input as raw events.
func (g *Game) Poll() []input.Event {
	g.events = g.events[:0]
	if ebiten.IsWindowBeingClosed() {
		g.events = append(g.events, input.QuitEvent())
	}
	x, y := ebiten.CursorPosition()
	for _, m := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			g.events = append(g.events, input.PressEvent(x, y, m.b))
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		b := input.ButtonScrollDown
		if wy > 0 {
			b = input.ButtonScrollUp
		}
		for i := 0; i < max(1, int(math.Round(math.Abs(wy)))); i++ {
			g.events = append(g.events, input.PressEvent(x, y, b))
		}
	}
	for _, m := range keyMap {
		if inpututil.IsKeyJustPressed(m.eb) {
			g.events = append(g.events, input.KeyEvent(m.k))
		}
	}
	return g.events
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	g.hud.Update()
	if err := g.loop.Tick(); err != nil {
		return err
	}
	if g.loop.State().ShouldExit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the most recent frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.last.frame)
	g.hud.Draw(screen, g.last.frame)
}

// Layout returns the logical screen size, which is the fixed window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}

// RunWindow opens the window and blocks until the user quits.
func RunWindow(state *world.State, opts WindowOptions) error {
	cfg := state.View.Config()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(New(state, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
