package plot

import "iter"

// Cell is one character position in the plot grid. X grows rightward,
// Y grows upward; the renderer flips rows when emitting text.
type Cell struct {
	X, Y int
}

// Line returns the integer cells an ideal straight segment from p0 to p1
// passes through, computed with an incremental error accumulator and no
// floating point. The walk includes both endpoints, moves one cell per
// step (axis-aligned or diagonal), and never revisits a cell; a
// degenerate segment with p0 == p1 yields exactly one cell. Ranging over
// the result again restarts the walk from p0.
func Line(p0, p1 Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		dx := abs(p1.X - p0.X)
		dy := abs(p1.Y - p0.Y)
		sx := stepDir(p0.X, p1.X)
		sy := stepDir(p0.Y, p1.Y)
		err := dx - dy

		x, y := p0.X, p0.Y
		for {
			if !yield(Cell{x, y}) {
				return
			}
			if x == p1.X && y == p1.Y {
				return
			}
			e2 := 2 * err
			if e2 > -dy {
				err -= dy
				x += sx
			}
			if e2 < dx {
				err += dx
				y += sy
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func stepDir(from, to int) int {
	if from < to {
		return 1
	}
	return -1
}
