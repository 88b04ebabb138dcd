package plot

import (
	"fmt"
	"io"
	"strings"
)

// labelWidth is the character budget for one axis label; the gutter adds
// one border column on top of it.
const labelWidth = 5

// Render composes the canvas and writes the plot to w. Cells are wrapped
// in their series' color escape only when w is an interactive terminal,
// so redirected output stays plain text. When width or height are unset
// they are discovered from the terminal, falling back to 72x20.
func (c *Canvas) Render(w io.Writer) error {
	width, height := c.dimensions(w)
	text, err := c.renderText(width, height, isTerminal(w))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// RenderString renders the plot to a string without color, using the
// canvas dimensions or the 72x20 default.
func (c *Canvas) RenderString() (string, error) {
	width, height := c.width, c.height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = width * DefaultHeight / DefaultWidth
	}
	return c.renderText(width, height, false)
}

func (c *Canvas) renderText(width, height int, colored bool) (string, error) {
	grid, xs, ys, err := c.compose(width, height)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	// Plot body, top row first. The top border row carries the y-max
	// label, every other row just the axis bar.
	for y := height - 1; y >= 0; y-- {
		if y == height-1 {
			b.WriteString(gutterLabel(ys.Max) + "^")
		} else {
			b.WriteString(strings.Repeat(" ", labelWidth) + "|")
		}
		for x := 0; x < width; x++ {
			occ := grid.at(x, y)
			if occ.series == nil {
				b.WriteByte(' ')
				continue
			}
			glyph, _ := occ.series.glyph(occ.rank)
			if colored && occ.series.escape != "" {
				b.WriteString(occ.series.escape)
				b.WriteRune(glyph)
				b.WriteString(colorReset)
			} else {
				b.WriteRune(glyph)
			}
		}
		b.WriteByte('\n')
	}

	// Bottom border with the y-min label and x-axis arrow.
	b.WriteString(gutterLabel(ys.Min) + "+")
	b.WriteString(strings.Repeat("-", max(width-1, 0)))
	b.WriteString(">\n")

	// X-axis range labels under the plot.
	b.WriteString(strings.Repeat(" ", labelWidth))
	b.WriteString(fmt.Sprintf("%-*s", labelWidth, FormatWidth(xs.Min, "", labelWidth)))
	b.WriteString(strings.Repeat(" ", max(width-2*labelWidth+1, 0)))
	b.WriteString(fmt.Sprintf("%*s", labelWidth, FormatWidth(xs.Max, "", labelWidth)))
	b.WriteByte('\n')

	return b.String(), nil
}

// gutterLabel formats a y-axis value into the fixed-width gutter:
// right-aligned to four columns, then padded out to the gutter width.
func gutterLabel(v float64) string {
	return fmt.Sprintf("%-*s", labelWidth, fmt.Sprintf("%4s", FormatWidth(v, "", labelWidth)))
}

// dimensions resolves the plot body size for a render to w. Explicit
// values win; otherwise the terminal is measured once per render, and a
// failed lookup (or a non-terminal destination) falls back to defaults.
func (c *Canvas) dimensions(w io.Writer) (int, int) {
	width, height := c.width, c.height
	if width <= 0 || height <= 0 {
		if tw, _, err := terminalSize(w); err == nil {
			if width <= 0 {
				width = min(tw-8, DefaultWidth)
			}
			if height <= 0 {
				height = width * DefaultHeight / DefaultWidth
			}
		}
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = width * DefaultHeight / DefaultWidth
	}
	return width, height
}
