package plot

import (
	"github.com/matzehuels/shplot/pkg/errors"
)

// Canvas accumulates series and produces the composited cell grid.
// Construct with New, add series with Plot, PlotXY, or PlotPairs, then
// emit text with Render or RenderString. Not safe for concurrent use.
type Canvas struct {
	series []*series

	width  int // 0 = discover at render time
	height int // 0 = discover at render time

	xlim axisLimit
	ylim axisLimit
}

// axisLimit is an optional explicit axis range.
type axisLimit struct {
	set      bool
	min, max float64
}

// New creates an empty canvas with automatic dimensions and limits.
func New() *Canvas {
	return &Canvas{}
}

// SetWidth fixes the plot body width in character cells. Zero restores
// terminal discovery.
func (c *Canvas) SetWidth(w int) {
	c.width = w
}

// SetHeight fixes the plot body height in character cells. Zero restores
// the default width-derived height.
func (c *Canvas) SetHeight(h int) {
	c.height = h
}

// SetXLim fixes the x-axis range. Unset limits default to the min/max
// across all plotted series.
func (c *Canvas) SetXLim(min, max float64) {
	c.xlim = axisLimit{set: true, min: min, max: max}
}

// SetYLim fixes the y-axis range.
func (c *Canvas) SetYLim(min, max float64) {
	c.ylim = axisLimit{set: true, min: min, max: max}
}

// Plot adds a series of y values sampled at x = 0, 1, ... len(y)-1.
// An empty slice adds nothing.
func (c *Canvas) Plot(y []float64, style Style) error {
	if len(y) == 0 {
		return nil
	}
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	return c.add(x, y, style)
}

// PlotXY adds a series from parallel x and y slices, which must have
// equal, nonzero length.
func (c *Canvas) PlotXY(x, y []float64, style Style) error {
	if len(x) != len(y) {
		return errors.New(errors.ErrCodeInvalidSeries,
			"x and y lengths differ: %d vs %d", len(x), len(y))
	}
	if len(y) == 0 {
		return nil
	}
	return c.add(x, y, style)
}

// PlotPairs adds a series from (x, y) sample pairs.
func (c *Canvas) PlotPairs(pairs [][2]float64, style Style) error {
	if len(pairs) == 0 {
		return nil
	}
	x := make([]float64, len(pairs))
	y := make([]float64, len(pairs))
	for i, p := range pairs {
		x[i] = p[0]
		y[i] = p[1]
	}
	return c.add(x, y, style)
}

func (c *Canvas) add(x, y []float64, style Style) error {
	s, err := newSeries(x, y, style)
	if err != nil {
		return err
	}
	c.series = append(c.series, s)
	return nil
}

// occupant records the winning layer and owning series for one cell.
// A nil series marks an empty cell.
type occupant struct {
	rank   int
	series *series
}

// cellGrid is the dense row-major composited plot body.
type cellGrid struct {
	width, height int
	cells         []occupant
}

func newCellGrid(width, height int) *cellGrid {
	return &cellGrid{
		width:  width,
		height: height,
		cells:  make([]occupant, width*height),
	}
}

// at returns the occupant of (x, y). Cells outside the grid are empty.
func (g *cellGrid) at(x, y int) occupant {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return occupant{}
	}
	return g.cells[y*g.width+x]
}

// claim writes an occupant unless the cell is already held at a strictly
// smaller rank. Equal-rank collisions keep the first writer, so series
// submission order breaks ties. Out-of-grid cells are clipped.
func (g *cellGrid) claim(cell Cell, rank int, s *series) {
	if cell.X < 0 || cell.X >= g.width || cell.Y < 0 || cell.Y >= g.height {
		return
	}
	occ := &g.cells[cell.Y*g.width+cell.X]
	if occ.series == nil || occ.rank > rank {
		*occ = occupant{rank: rank, series: s}
	}
}

// limits resolves the axis ranges, deriving unset limits from the
// plotted data.
func (c *Canvas) limits() (xmin, xmax, ymin, ymax float64) {
	first := true
	for _, s := range c.series {
		for i := range s.x {
			if first {
				xmin, xmax = s.x[i], s.x[i]
				ymin, ymax = s.y[i], s.y[i]
				first = false
				continue
			}
			xmin = min(xmin, s.x[i])
			xmax = max(xmax, s.x[i])
			ymin = min(ymin, s.y[i])
			ymax = max(ymax, s.y[i])
		}
	}
	if c.xlim.set {
		xmin, xmax = c.xlim.min, c.xlim.max
	}
	if c.ylim.set {
		ymin, ymax = c.ylim.min, c.ylim.max
	}
	return xmin, xmax, ymin, ymax
}

// compose maps every series onto a fresh cell grid. A zero-width range
// on either axis yields an empty grid with valid label ranges, which is
// not an error. A canvas with no series is a caller error.
func (c *Canvas) compose(width, height int) (*cellGrid, Scale, Scale, error) {
	if len(c.series) == 0 {
		return nil, Scale{}, Scale{}, errors.New(errors.ErrCodeNoData, "no series to plot")
	}

	xmin, xmax, ymin, ymax := c.limits()
	xs := Scale{Min: xmin, Max: xmax, Extent: width}
	ys := Scale{Min: ymin, Max: ymax, Extent: height}

	grid := newCellGrid(width, height)
	if xmin == xmax || ymin == ymax {
		return grid, xs, ys, nil
	}

	for _, s := range c.series {
		points := make([]Cell, len(s.x))
		for i := range s.x {
			points[i] = Cell{X: xs.Cell(s.x[i]), Y: ys.Cell(s.y[i])}
		}

		_, drawLine := s.glyph(layerLine)
		_, drawFill := s.glyph(layerLineDrop)
		var lineCells []Cell
		if drawLine || drawFill {
			for i := 0; i+1 < len(points); i++ {
				for cell := range Line(points[i], points[i+1]) {
					lineCells = append(lineCells, cell)
				}
			}
		}

		if _, ok := s.glyph(layerPoint); ok {
			for _, p := range points {
				grid.claim(p, layerPoint, s)
			}
		}
		if drawLine {
			for _, p := range lineCells {
				grid.claim(p, layerLine, s)
			}
		}
		if _, ok := s.glyph(layerPointDrop); ok {
			claimStems(grid, points, layerPointDrop, s)
		}
		if drawFill {
			claimStems(grid, lineCells, layerLineDrop, s)
		}
	}

	return grid, xs, ys, nil
}

// claimStems drops a vertical stem from each cell down to row 0,
// excluding the cell itself.
func claimStems(grid *cellGrid, cells []Cell, rank int, s *series) {
	for _, p := range cells {
		top := min(p.Y, grid.height)
		for r := 0; r < top; r++ {
			grid.claim(Cell{X: p.X, Y: r}, rank, s)
		}
	}
}
