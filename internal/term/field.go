// Package term is a terminal front end built on gocui. Each grid cell is
// drawn as two characters so cells look roughly square.
package term

import (
	"fmt"
	"image"
	"strings"

	"github.com/logrusorgru/aurora"

	"zoomlife/internal/viewport"
	"zoomlife/internal/world"
)

// CharsPerCell is the number of terminal columns used for one grid cell.
const CharsPerCell = 2

var (
	liveFiller = aurora.Green("██").String()
	deadFiller = "░░"
)

// fieldText renders the cells of f that fit into a maxW x maxH character
// area. A red marker replaces the last visible line when the grid is cropped.
func fieldText(f world.Frame, maxW, maxH int, live, dead string) string {
	if maxW <= 0 || maxH <= 0 {
		return ""
	}
	cols := min(f.Cols, maxW/CharsPerCell)
	rows := min(f.Rows, maxH)
	crop := f.Cols > cols || f.Rows > rows

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row != 0 {
			b.WriteByte('\n')
		}
		if crop && row == rows-1 {
			b.WriteString(aurora.Red("The grid is larger than the terminal").BgBlack().String())
			break
		}
		for col := 0; col < cols; col++ {
			if f.At(row, col) != 0 {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

// pressPoint maps a character position inside the field view to the window
// pixel at the centre of the corresponding cell.
func pressPoint(f world.Frame, cx, cy int) (image.Point, bool) {
	if cx < 0 || cy < 0 {
		return image.Point{}, false
	}
	row, col := cy, cx/CharsPerCell
	if row >= f.Rows || col >= f.Cols {
		return image.Point{}, false
	}
	r := viewport.CellToPixelRect(row, col, f.View.CellSize, f.Offset())
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2), true
}

// statusLines formats the frame status as "Label: value" lines.
func statusLines(f world.Frame) []string {
	params := f.Status().Params
	lines := make([]string, 0, len(params))
	for _, p := range params {
		value := p.Value
		if p.Key == "mode" {
			value = modeColour(value)
		}
		lines = append(lines, fmt.Sprintf(" %s: %s", aurora.Colorize(p.Label, aurora.GreenFg), value))
	}
	return lines
}

func modeColour(mode string) string {
	if mode == "running" {
		return aurora.Colorize(mode, aurora.CyanFg).String()
	}
	return aurora.Colorize(mode, aurora.BlueFg).String()
}
