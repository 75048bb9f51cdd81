package input

import (
	"fmt"
	"io"
	"log"

	"zoomlife/internal/world"
)

// Controller applies actions to the world state.
type Controller struct {
	log *log.Logger
}

// NewController returns a controller that reports state transitions to
// logger. A nil logger discards them.
func NewController(logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Controller{log: logger}
}

// Drain translates and dispatches a batch of events in order. Unrecognised
// events are skipped. The first dispatch error aborts the batch.
func (c *Controller) Drain(s *world.State, events []Event) error {
	for _, ev := range events {
		a, ok := Translate(ev)
		if !ok {
			continue
		}
		if err := c.Dispatch(s, a); err != nil {
			return err
		}
	}
	return nil
}

// Dispatch performs a single action.
func (c *Controller) Dispatch(s *world.State, a Action) error {
	switch a := a.(type) {
	case Exit:
		s.ShouldExit = true
	case ToggleCell:
		row, col, ok := s.View.PixelToCell(a.X, a.Y)
		if !ok {
			return nil
		}
		if err := s.Grid.Toggle(row, col); err != nil {
			return fmt.Errorf("toggle at pixel (%d,%d): %w", a.X, a.Y, err)
		}
	case Zoom:
		s.View.ApplyZoom(a.Delta, s.Grid)
		cfg := s.View.Config()
		c.log.Printf("zoom: cell size %d, grid %dx%d", cfg.CellSize, cfg.Cols, cfg.Rows)
	case ToggleRun:
		s.Sim.Toggle()
		c.log.Printf("running=%v at generation %d", s.Sim.IsRunning(), s.Sim.Generation())
	case StepOnce:
		s.Sim.RequestStep()
	case Clear:
		s.Clear()
	case Randomize:
		return s.Randomize()
	default:
		return fmt.Errorf("input: unhandled action %T", a)
	}
	return nil
}
