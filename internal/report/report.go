// Package report runs the simulation without a front end and summarises the
// population history.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"zoomlife/internal/app"
	"zoomlife/internal/input"
	"zoomlife/internal/world"
)

// ErrNoGenerations is returned when a headless run is asked for no steps.
var ErrNoGenerations = errors.New("report: generations must be positive")

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// Sample is the population after a generation.
type Sample struct {
	Generation int
	Population int
}

// History is the outcome of a headless run.
type History struct {
	Samples []Sample
	Final   world.Frame
	Elapsed time.Duration
}

// Peak returns the sample with the largest population, the earliest one on
// ties.
func (h History) Peak() Sample {
	var best Sample
	for i, s := range h.Samples {
		if i == 0 || s.Population > best.Population {
			best = s
		}
	}
	return best
}

// Populations returns the population series for plotting.
func (h History) Populations() []float64 {
	out := make([]float64, len(h.Samples))
	for i, s := range h.Samples {
		out[i] = float64(s.Population)
	}
	return out
}

type noEvents struct{}

func (noEvents) Poll() []input.Event { return nil }

type recorder struct {
	samples []Sample
	last    world.Frame
}

func (r *recorder) Draw(f world.Frame) error {
	r.samples = append(r.samples, Sample{Generation: f.Generation, Population: f.Population})
	r.last = f
	return nil
}

// Collect runs state for the given number of generations through the main
// loop, unthrottled, and records the population after each one. The first
// sample is the initial board.
func Collect(state *world.State, generations int) (History, error) {
	if generations <= 0 {
		return History{}, ErrNoGenerations
	}
	initial := state.Snapshot()
	rec := &recorder{
		samples: []Sample{{Generation: initial.Generation, Population: initial.Population}},
		last:    initial,
	}
	state.Sim.SetRunning(true)
	loop := app.NewLoop(state, noEvents{}, rec, 0, nil)

	start := time.Now()
	for i := 0; i < generations; i++ {
		if err := loop.Tick(); err != nil {
			return History{}, err
		}
	}
	return History{Samples: rec.samples, Final: rec.last, Elapsed: time.Since(start)}, nil
}

// Render formats the summary and a population plot of the given width.
func Render(h History, width int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("zoomlife run"))
	b.WriteByte('\n')

	peak := h.Peak()
	rows := [][2]string{
		{"Grid", fmt.Sprintf("%d x %d", h.Final.Cols, h.Final.Rows)},
		{"Cell size", fmt.Sprintf("%d px", h.Final.View.CellSize)},
		{"Generations", fmt.Sprintf("%d", h.Final.Generation)},
		{"Live cells", fmt.Sprintf("%d", h.Final.Population)},
		{"Peak", fmt.Sprintf("%d at generation %d", peak.Population, peak.Generation)},
		{"Elapsed", h.Elapsed.Round(time.Microsecond).String()},
	}
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r[0]))
		b.WriteString(valueStyle.Render(r[1]))
		b.WriteByte('\n')
	}

	if len(h.Samples) > 1 {
		plot := asciigraph.Plot(h.Populations(),
			asciigraph.Height(10),
			asciigraph.Width(width),
			asciigraph.Caption("live cells per generation"))
		b.WriteString(graphStyle.Render(plot))
		b.WriteByte('\n')
	}
	return b.String()
}
