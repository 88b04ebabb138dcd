package plot

import (
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/shplot/pkg/errors"
)

// Layer ranks in occlusion order. A cell is owned by the numerically
// smallest rank that ever touched it.
const (
	layerPoint     = 0 // the mapped cell of every sample
	layerLine      = 1 // cells rasterized between adjacent samples
	layerPointDrop = 2 // vertical stem below each sample cell
	layerLineDrop  = 3 // vertical stems below every line cell (area fill)
	layerCount     = 4
)

// DefaultChars draws samples and interpolated lines as 'o' and the stem
// under each sample as '.', the historical shplot default.
const DefaultChars = "oo."

// colorReset ends a colored cell.
const colorReset = "\x1b[0m"

// Colors maps palette names to their ANSI escape sequences. The bright
// variants use the bold/bright SGR attribute.
var Colors = map[string]string{
	"black":          "\x1b[30m",
	"red":            "\x1b[31m",
	"green":          "\x1b[32m",
	"yellow":         "\x1b[33m",
	"blue":           "\x1b[34m",
	"magenta":        "\x1b[35m",
	"cyan":           "\x1b[36m",
	"white":          "\x1b[37m",
	"bright black":   "\x1b[30;1m",
	"bright red":     "\x1b[31;1m",
	"bright green":   "\x1b[32;1m",
	"bright yellow":  "\x1b[33;1m",
	"bright blue":    "\x1b[34;1m",
	"bright magenta": "\x1b[35;1m",
	"bright cyan":    "\x1b[36;1m",
	"bright white":   "\x1b[37;1m",
}

// Style configures how one series is drawn.
//
// Chars holds up to four glyphs indexed by layer: point, line,
// point-drop stem, line-drop fill. A space or an absent position
// disables that layer; an empty string draws nothing at all.
type Style struct {
	// Color names an entry of Colors. Empty renders without color.
	Color string
	// Chars is the positional glyph set, e.g. DefaultChars.
	Chars string
}

// series is one curve fixed at Plot* time: samples, resolved color
// escape, and per-layer glyphs. Immutable once added to a canvas.
type series struct {
	x, y   []float64
	escape string // ANSI escape, "" when uncolored
	chars  []rune
}

// newSeries validates a style eagerly and pairs it with sample data.
// The x and y slices must already have equal length.
func newSeries(x, y []float64, style Style) (*series, error) {
	escape := ""
	if style.Color != "" {
		e, ok := Colors[style.Color]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidColor, "unknown color %q", style.Color)
		}
		escape = e
	}

	chars := []rune(style.Chars)
	if len(chars) > layerCount {
		return nil, errors.New(errors.ErrCodeInvalidSeries,
			"chars %q has %d glyphs, at most %d are used", style.Chars, len(chars), layerCount)
	}
	for _, r := range chars {
		if r != ' ' && runewidth.RuneWidth(r) != 1 {
			return nil, errors.New(errors.ErrCodeInvalidSeries,
				"glyph %q does not occupy exactly one terminal cell", r)
		}
	}

	return &series{x: x, y: y, escape: escape, chars: chars}, nil
}

// glyph returns the rune for a layer and whether the layer is enabled.
func (s *series) glyph(layer int) (rune, bool) {
	if layer >= len(s.chars) || s.chars[layer] == ' ' {
		return 0, false
	}
	return s.chars[layer], true
}
