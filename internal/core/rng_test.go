package core

import (
	"slices"
	"testing"
)

func TestFillRandomDeterministic(t *testing.T) {
	a, b := NewGrid(16, 16), NewGrid(16, 16)
	FillRandom(a, NewRNG(7).Source(), 0.5)
	FillRandom(b, NewRNG(7).Source(), 0.5)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different boards")
	}
	for _, c := range a.Cells() {
		if c > Alive {
			t.Fatalf("non-binary cell %d", c)
		}
	}
}

func TestFillRandomDensityBounds(t *testing.T) {
	g := NewGrid(8, 8)
	FillRandom(g, NewRNG(1).Source(), 0)
	if g.Population() != 0 {
		t.Fatal("density 0 must leave the grid dead")
	}
	FillRandom(g, NewRNG(1).Source(), 1)
	if g.Population() != 64 {
		t.Fatal("density 1 must fill the grid")
	}
}

func TestFillNoiseDeterministic(t *testing.T) {
	a, b := NewGrid(20, 30), NewGrid(20, 30)
	FillNoise(a, 3, DefaultNoise)
	FillNoise(b, 3, DefaultNoise)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different noise boards")
	}
	for _, c := range a.Cells() {
		if c > Alive {
			t.Fatalf("non-binary cell %d", c)
		}
	}
}
