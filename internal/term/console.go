package term

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"zoomlife/internal/app"
	"zoomlife/internal/input"
	"zoomlife/internal/world"
)

const (
	viewField  = "field"
	viewStatus = "status"
	viewHelp   = "help"

	sideWidth = 28
)

// Options configure the terminal session.
type Options struct {
	TPS    int
	Logger *log.Logger
}

type keyBinding struct {
	key   interface{}
	name  string
	descr string
	event input.Event
}

var bindings = []keyBinding{
	{gocui.KeyCtrlC, "^C", "Exit", input.QuitEvent()},
	{'q', "Q", "Quit", input.KeyEvent(input.KeyQ)},
	{gocui.KeyEsc, "Esc", "Quit", input.KeyEvent(input.KeyEscape)},
	{gocui.KeySpace, "Space", "Run/Pause", input.KeyEvent(input.KeySpace)},
	{'n', "N", "Next step", input.KeyEvent(input.KeyN)},
	{'c', "C", "Clear", input.KeyEvent(input.KeyC)},
	{'r', "R", "Randomize", input.KeyEvent(input.KeyR)},
}

var mouseBindings = []struct {
	key gocui.Key
	b   input.Button
}{
	{gocui.MouseLeft, input.ButtonPrimary},
	{gocui.MouseWheelUp, input.ButtonScrollUp},
	{gocui.MouseWheelDown, input.ButtonScrollDown},
}

// Console forwards gocui key and mouse events to the main loop through a
// queue and redraws from the frames the loop produces. The loop goroutine is
// the only writer of the world state.
type Console struct {
	g     *gocui.Gui
	queue input.Queue

	mu    sync.Mutex
	frame world.Frame
}

// Draw implements app.Renderer. It is called from the loop goroutine.
func (c *Console) Draw(f world.Frame) error {
	c.mu.Lock()
	c.frame = f
	c.mu.Unlock()
	c.g.Update(c.redraw)
	return nil
}

func (c *Console) current() world.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// Run opens the terminal UI and blocks until the user quits or ctx is done.
func Run(ctx context.Context, state *world.State, opts Options) error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return err
	}
	defer g.Close()

	c := &Console{g: g, frame: state.Snapshot()}
	g.Mouse = true
	g.SetManagerFunc(c.layout)
	if err := c.initKeyBindings(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	loop := app.NewLoop(state, &c.queue, c, opts.TPS, opts.Logger)
	done := make(chan error, 1)
	go func() {
		err := loop.Run(ctx)
		g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
		done <- err
	}()

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		cancel()
		<-done
		return err
	}
	cancel()
	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (c *Console) initKeyBindings() error {
	for _, kb := range bindings {
		ev := kb.event
		if err := c.g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error {
			c.queue.Push(ev)
			return nil
		}); err != nil {
			return err
		}
	}
	for _, mb := range mouseBindings {
		b := mb.b
		if err := c.g.SetKeybinding(viewField, mb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error {
			cx, cy := v.Cursor()
			if p, ok := pressPoint(c.current(), cx, cy); ok {
				c.queue.Push(input.PressEvent(p.X, p.Y, b))
			}
			return nil
		}); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(viewStatus, 0, 0, sideWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	if v, err := g.SetView(viewField, sideWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Life"
		v.Frame = true
	}
	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		fmt.Fprintln(v, helpLine())
	}
	return c.redraw(g)
}

func (c *Console) redraw(g *gocui.Gui) error {
	f := c.current()
	if v, err := g.View(viewField); err == nil {
		v.Clear()
		w, h := v.Size()
		fmt.Fprint(v, fieldText(f, w, h, liveFiller, deadFiller))
	}
	if v, err := g.View(viewStatus); err == nil {
		v.Clear()
		for _, line := range statusLines(f) {
			fmt.Fprintln(v, line)
		}
	}
	return nil
}

func helpLine() string {
	var b bytes.Buffer
	b.WriteString("KEYS: ")
	for _, kb := range bindings {
		b.WriteString(aurora.Green(kb.name).String())
		b.WriteString(": ")
		b.WriteString(kb.descr)
		b.WriteString(", ")
	}
	b.WriteString(aurora.Green("MOUSE").String())
	b.WriteString(": toggle cell, wheel zooms")
	return b.String()
}
