// Package world holds the application state owned by the main loop.
package world

import (
	"fmt"
	"image"
	"strconv"

	"zoomlife/internal/core"
	"zoomlife/internal/patterns"
	"zoomlife/internal/sims/life"
	"zoomlife/internal/viewport"
)

// Fill modes used by Randomize.
const (
	FillUniform = "uniform"
	FillNoise   = "noise"
)

// Options are the construction-time parameters of a session.
type Options struct {
	WindowWidth  int
	WindowHeight int
	CellSize     int

	Seed    int64
	Density float64
	Fill    string
	Pattern string
	Running bool
}

// State is the single owner of the grid, the viewport and the simulation
// flags. It is mutated only from the main loop.
type State struct {
	Grid *core.Grid
	View *viewport.Controller
	Sim  *life.Simulator

	ShouldExit bool

	seed    int64
	density float64
	fill    string
}

// New builds the initial state: an all-dead grid sized from the window and
// cell size, optionally seeded with a named pattern.
func New(opts Options) (*State, error) {
	view := viewport.New(opts.WindowWidth, opts.WindowHeight, opts.CellSize)
	s := &State{
		Grid:    view.NewGrid(),
		View:    view,
		Sim:     life.New(),
		seed:    opts.Seed,
		density: opts.Density,
		fill:    opts.Fill,
	}
	if s.fill == "" {
		s.fill = FillUniform
	}
	if opts.Pattern != "" {
		p, err := patterns.Lookup(opts.Pattern)
		if err != nil {
			return nil, err
		}
		patterns.ApplyCentered(s.Grid, p)
	}
	s.Sim.Reset(s.Grid)
	s.Sim.SetRunning(opts.Running)
	return s, nil
}

// Seed returns the seed the next Randomize will use.
func (s *State) Seed() int64 { return s.seed }

// Randomize refills the grid from the current seed and advances the seed so
// repeated calls give fresh but reproducible boards.
func (s *State) Randomize() error {
	switch s.fill {
	case FillUniform:
		core.FillRandom(s.Grid, core.NewRNG(s.seed).Source(), s.density)
	case FillNoise:
		core.FillNoise(s.Grid, s.seed, core.DefaultNoise)
	default:
		return fmt.Errorf("world: unknown fill mode %q", s.fill)
	}
	s.seed++
	s.Sim.Reset(s.Grid)
	return nil
}

// Clear kills every cell and resets the generation counter.
func (s *State) Clear() {
	s.Grid.Clear()
	s.Sim.Reset(s.Grid)
}

// Frame is an immutable copy of everything a renderer needs.
type Frame struct {
	Cells      []uint8
	Rows, Cols int
	View       viewport.Config
	Running    bool
	Generation int
	Population int
	Viewport   image.Rectangle
}

// Snapshot copies the drawable state.
func (s *State) Snapshot() Frame {
	return Frame{
		Cells:      append([]uint8(nil), s.Grid.Cells()...),
		Rows:       s.Grid.Rows,
		Cols:       s.Grid.Cols,
		View:       s.View.Config(),
		Running:    s.Sim.IsRunning(),
		Generation: s.Sim.Generation(),
		Population: s.Grid.Population(),
		Viewport:   s.View.Rect(),
	}
}

// At returns the cell at (row, col), or dead outside the frame.
func (f Frame) At(row, col int) uint8 {
	if row < 0 || row >= f.Rows || col < 0 || col >= f.Cols {
		return core.Dead
	}
	return f.Cells[row*f.Cols+col]
}

// Offset returns the viewport origin the frame was captured with.
func (f Frame) Offset() image.Point { return f.Viewport.Min }

// Status lists the values shown by status panels.
func (f Frame) Status() core.ParameterSnapshot {
	mode := "paused"
	if f.Running {
		mode = "running"
	}
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "generation", Label: "Generation", Value: strconv.Itoa(f.Generation)},
		{Key: "population", Label: "Live cells", Value: strconv.Itoa(f.Population)},
		{Key: "cell_size", Label: "Cell size", Value: strconv.Itoa(f.View.CellSize)},
		{Key: "grid", Label: "Grid", Value: fmt.Sprintf("%d x %d", f.Cols, f.Rows)},
		{Key: "mode", Label: "Mode", Value: mode},
	}}
}
