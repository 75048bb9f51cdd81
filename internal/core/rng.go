package core

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillRandom sets each cell alive with the given probability.
func FillRandom(g *Grid, r *rand.Rand, density float64) {
	for i := range g.data {
		g.data[i] = Dead
		if r.Float64() < density {
			g.data[i] = Alive
		}
	}
}

// Noise parameters for FillNoise. Scale is the number of cells per noise
// period; cells whose noise value exceeds Threshold become alive.
type Noise struct {
	Scale     float64
	Threshold float64
}

// DefaultNoise gives blobby clusters roughly a quarter of the board in size.
var DefaultNoise = Noise{Scale: 8, Threshold: 0.05}

// FillNoise seeds the grid from 2D Perlin noise, producing clustered
// populations instead of uniform static.
func FillNoise(g *Grid, seed int64, n Noise) {
	if n.Scale <= 0 {
		n.Scale = DefaultNoise.Scale
	}
	p := perlin.NewPerlin(2, 2, 3, seed)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			v := p.Noise2D(float64(col)/n.Scale, float64(row)/n.Scale)
			c := Dead
			if v > n.Threshold {
				c = Alive
			}
			g.data[g.Index(row, col)] = c
		}
	}
}
