package app

import (
	"context"
	"errors"
	"log"

	"zoomlife/internal/core"
	"zoomlife/internal/input"
	"zoomlife/internal/world"
)

// ErrNoWindow is returned by RunWindow in builds without the ebiten tag.
var ErrNoWindow = errors.New("app: the window front end requires building with the 'ebiten' tag")

// EventSource hands over every input event that arrived since the last
// call. It must not block.
type EventSource interface {
	Poll() []input.Event
}

// Renderer draws one frame.
type Renderer interface {
	Draw(f world.Frame) error
}

// Loop runs the fixed per-iteration order: drain input, advance the
// simulation, render.
type Loop struct {
	state *world.State
	ctrl  *input.Controller
	src   EventSource
	out   Renderer
	clock *core.FixedStep
}

// NewLoop wires a loop around state. tps caps the iteration rate used by Run.
func NewLoop(state *world.State, src EventSource, out Renderer, tps int, logger *log.Logger) *Loop {
	return &Loop{
		state: state,
		ctrl:  input.NewController(logger),
		src:   src,
		out:   out,
		clock: core.NewFixedStep(tps),
	}
}

// State exposes the world owned by the loop.
func (l *Loop) State() *world.State { return l.state }

// Tick performs one iteration. Once a quit has been drained the step and
// render are skipped.
func (l *Loop) Tick() error {
	if err := l.ctrl.Drain(l.state, l.src.Poll()); err != nil {
		return err
	}
	if l.state.ShouldExit {
		return nil
	}
	l.state.Sim.Advance(l.state.Grid)
	return l.out.Draw(l.state.Snapshot())
}

// Run iterates until a quit is observed, an iteration fails or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for !l.state.ShouldExit {
		if err := l.clock.Wait(ctx); err != nil {
			return err
		}
		if err := l.Tick(); err != nil {
			return err
		}
	}
	return nil
}
