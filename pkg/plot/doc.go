// Package plot renders numeric series as character-grid plots suitable
// for a terminal, in the spirit of classic shell plotting tools.
//
// A Canvas collects one or more series, each an ordered list of (x, y)
// samples with a per-layer glyph set and an optional ANSI color. Four
// geometry layers are composited per series with a fixed occlusion
// order: data points beat interpolated lines, which beat the vertical
// drop stems and the area fill under the curve, regardless of the order
// series were added in.
//
//	c := plot.New()
//	c.Plot([]float64{1, 4, 9, 16}, plot.Style{Color: "blue", Chars: plot.DefaultChars})
//	c.Render(os.Stdout)
//
// Axis labels are compacted with base-1000 SI prefixes (see Format and
// FormatWidth) so they fit a fixed gutter. Output is colored only when
// the destination is an interactive terminal; rendering the same canvas
// to a non-terminal destination twice produces byte-identical output.
//
// A Canvas is not safe for concurrent mutation. Every render recomputes
// axis ranges and the cell grid from scratch; no state carries between
// renders.
package plot
