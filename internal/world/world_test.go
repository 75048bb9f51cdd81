package world

import (
	"errors"
	"image"
	"slices"
	"testing"

	"zoomlife/internal/core"
	"zoomlife/internal/patterns"
)

func newState(t *testing.T, opts Options) *State {
	t.Helper()
	if opts.WindowWidth == 0 {
		opts.WindowWidth, opts.WindowHeight, opts.CellSize = 900, 600, 30
	}
	s, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewStartsDeadAndPaused(t *testing.T) {
	s := newState(t, Options{})
	if s.Grid.Rows != 20 || s.Grid.Cols != 30 {
		t.Fatalf("grid %dx%d, want 20x30", s.Grid.Rows, s.Grid.Cols)
	}
	if s.Grid.Population() != 0 || s.Sim.IsRunning() || s.ShouldExit {
		t.Fatal("new state must be dead, paused and not exiting")
	}
}

func TestNewWithPattern(t *testing.T) {
	s := newState(t, Options{Pattern: "glider", Running: true})
	if s.Grid.Population() != 5 || !s.Sim.IsRunning() {
		t.Fatalf("population %d running %v", s.Grid.Population(), s.Sim.IsRunning())
	}
	if s.Sim.Population() != 5 {
		t.Fatal("simulator population must be primed from the seed pattern")
	}
}

func TestNewUnknownPattern(t *testing.T) {
	_, err := New(Options{WindowWidth: 100, WindowHeight: 100, CellSize: 10, Pattern: "nope"})
	if !errors.Is(err, patterns.ErrUnknownPattern) {
		t.Fatalf("err=%v", err)
	}
}

func TestRandomizeAdvancesSeed(t *testing.T) {
	s := newState(t, Options{Seed: 5, Density: 0.4})
	if err := s.Randomize(); err != nil {
		t.Fatal(err)
	}
	first := slices.Clone(s.Grid.Cells())
	if s.Seed() != 6 {
		t.Fatalf("seed %d, want 6", s.Seed())
	}
	other := newState(t, Options{Seed: 5, Density: 0.4})
	_ = other.Randomize()
	if !slices.Equal(first, other.Grid.Cells()) {
		t.Fatal("randomize with equal seeds must match")
	}
	if s.Grid.Population() == 0 {
		t.Fatal("density 0.4 produced an empty board")
	}
}

func TestRandomizeNoiseAndUnknownFill(t *testing.T) {
	s := newState(t, Options{Seed: 1, Fill: FillNoise})
	if err := s.Randomize(); err != nil {
		t.Fatal(err)
	}
	bad := newState(t, Options{Fill: "plaid"})
	if err := bad.Randomize(); err == nil {
		t.Fatal("expected error for unknown fill mode")
	}
}

func TestClearResetsGeneration(t *testing.T) {
	s := newState(t, Options{Pattern: "blinker"})
	s.Sim.Step(s.Grid)
	s.Clear()
	if s.Grid.Population() != 0 || s.Sim.Generation() != 0 {
		t.Fatal("clear must kill all cells and reset the generation")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newState(t, Options{Pattern: "block"})
	f := s.Snapshot()
	s.Grid.Clear()
	if f.Population != 4 || f.At(9, 14) != core.Alive {
		t.Fatalf("frame changed with the grid: pop %d", f.Population)
	}
	if f.At(-1, 0) != core.Dead || f.At(0, 100) != core.Dead {
		t.Fatal("out-of-frame reads must be dead")
	}
	if f.Offset() != (image.Point{}) || f.Viewport != image.Rect(0, 0, 900, 600) {
		t.Fatalf("viewport %v", f.Viewport)
	}
	st := f.Status()
	if p, ok := st.Lookup("mode"); !ok || p.Value != "paused" {
		t.Fatalf("mode %+v", p)
	}
	if p, ok := st.Lookup("grid"); !ok || p.Value != "30 x 20" {
		t.Fatalf("grid %+v", p)
	}
}
