package life

import "zoomlife/internal/core"

// CountLiveNeighbors sums the eight Moore neighbours of (row, col). The
// boundary is clipped: neighbours outside the grid count as dead, there is
// no wrap-around.
func CountLiveNeighbors(g *core.Grid, row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(g.At(row+dy, col+dx))
		}
	}
	return n
}

// NextState applies Conway's rule (B3/S23) to a single cell.
func NextState(current uint8, liveNeighbors int) uint8 {
	if liveNeighbors == 3 || (current == core.Alive && liveNeighbors == 2) {
		return core.Alive
	}
	return core.Dead
}
