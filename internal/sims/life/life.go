package life

import "zoomlife/internal/core"

// Simulator advances a grid one generation at a time and carries the
// run/pause flag.
type Simulator struct {
	running    bool
	tickOnce   bool
	generation int
	population int
	nxt        []uint8
}

// New returns a paused simulator.
func New() *Simulator { return &Simulator{} }

// IsRunning reports whether the simulation advances every frame.
func (s *Simulator) IsRunning() bool { return s.running }

// SetRunning sets the run flag.
func (s *Simulator) SetRunning(running bool) { s.running = running }

// Toggle flips between running and paused.
func (s *Simulator) Toggle() { s.running = !s.running }

// RequestStep asks for a single step on the next Advance, even while paused.
func (s *Simulator) RequestStep() { s.tickOnce = true }

// Advance steps the grid if the simulation is running or a single step was
// requested. It reports whether a step happened.
func (s *Simulator) Advance(g *core.Grid) bool {
	if !s.running && !s.tickOnce {
		return false
	}
	s.tickOnce = false
	s.Step(g)
	return true
}

// Generation returns the number of steps taken since the last reset.
func (s *Simulator) Generation() int { return s.generation }

// Population returns the live cell count observed after the last step or
// reset.
func (s *Simulator) Population() int { return s.population }

// Reset zeroes the generation counter and records the grid's population.
func (s *Simulator) Reset(g *core.Grid) {
	s.generation = 0
	s.population = g.Population()
}

// Step advances the grid by one generation. Every next state is computed
// from the pre-step cells into a scratch buffer which then replaces the
// grid's buffer in one swap.
func (s *Simulator) Step(g *core.Grid) {
	cur := g.Cells()
	if len(s.nxt) != len(cur) {
		s.nxt = make([]uint8, len(cur))
	}
	pop := 0
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			idx := g.Index(row, col)
			next := NextState(cur[idx], CountLiveNeighbors(g, row, col))
			s.nxt[idx] = next
			pop += int(next)
		}
	}
	s.nxt = g.Swap(s.nxt)
	s.generation++
	s.population = pop
}
