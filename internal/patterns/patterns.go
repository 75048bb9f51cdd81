// Package patterns provides named seed patterns and a reader for the
// plaintext .cells format.
package patterns

import (
	"errors"
	"fmt"
	"sort"

	"zoomlife/internal/core"
)

// ErrUnknownPattern is returned by Lookup for names that were never registered.
var ErrUnknownPattern = errors.New("patterns: unknown pattern")

// Pattern is a set of live cells relative to the pattern's top-left corner.
type Pattern struct {
	Name        string
	Description string
	Cells       [][2]int // {row, col}
}

// Size returns the bounding box of the pattern.
func (p Pattern) Size() core.Size {
	var s core.Size
	for _, c := range p.Cells {
		s.H = max(s.H, c[0]+1)
		s.W = max(s.W, c[1]+1)
	}
	return s
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name, replacing any previous entry.
func Register(p Pattern) {
	if p.Name == "" {
		return
	}
	registry[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, error) {
	p, ok := registry[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Names lists the registered patterns in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply sets the pattern's cells alive with its top-left corner at
// (row, col). Cells that land outside the grid are skipped. It returns the
// number of cells placed.
func Apply(g *core.Grid, p Pattern, row, col int) int {
	placed := 0
	for _, c := range p.Cells {
		r, cc := row+c[0], col+c[1]
		if !g.InBounds(r, cc) {
			continue
		}
		if err := g.Set(r, cc, core.Alive); err == nil {
			placed++
		}
	}
	return placed
}

// ApplyCentered places the pattern in the middle of the grid.
func ApplyCentered(g *core.Grid, p Pattern) int {
	s := p.Size()
	return Apply(g, p, (g.Rows-s.H)/2, (g.Cols-s.W)/2)
}
