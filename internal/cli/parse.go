package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shplot/pkg/errors"
	"github.com/matzehuels/shplot/pkg/plot"
)

// inputDoc is one entry of a plot input: a series plus optional canvas
// settings. JSON inputs are a single such object or an array of them;
// TOML inputs carry the canvas settings at the top level and the series
// in [[series]] tables.
type inputDoc struct {
	Width  int       `json:"width" toml:"width"`
	Height int       `json:"height" toml:"height"`
	XLim   []float64 `json:"xlim" toml:"xlim"`
	YLim   []float64 `json:"ylim" toml:"ylim"`

	X     []float64  `json:"x" toml:"x"`
	Y     sampleList `json:"y" toml:"y"`
	Color string     `json:"color" toml:"color"`
	Chars *string    `json:"chars" toml:"chars"`
}

// tomlInput is the top-level shape of a .toml input file.
type tomlInput struct {
	Width  int        `toml:"width"`
	Height int        `toml:"height"`
	XLim   []float64  `toml:"xlim"`
	YLim   []float64  `toml:"ylim"`
	Series []inputDoc `toml:"series"`
}

// sampleList accepts a y value list in either of the two wire shapes:
// a flat list of numbers, or a list of [x, y] pairs when no separate x
// list is given.
type sampleList struct {
	flat  []float64
	pairs [][2]float64
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *sampleList) UnmarshalJSON(b []byte) error {
	var flat []float64
	if err := json.Unmarshal(b, &flat); err == nil {
		s.flat = flat
		return nil
	}
	// Decode pairs via slices so a wrong-arity entry errors instead of
	// being silently truncated to two elements.
	var pairs [][]float64
	if err := json.Unmarshal(b, &pairs); err != nil {
		return errors.New(errors.ErrCodeInvalidInput,
			"y must be a list of numbers or a list of [x, y] pairs")
	}
	out := make([][2]float64, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 {
			return errors.New(errors.ErrCodeInvalidInput,
				"y pair %d has %d elements, want 2", i, len(p))
		}
		out[i] = [2]float64{p[0], p[1]}
	}
	s.pairs = out
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *sampleList) UnmarshalTOML(v any) error {
	items, ok := v.([]any)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput,
			"y must be a list of numbers or a list of [x, y] pairs")
	}
	for _, item := range items {
		switch it := item.(type) {
		case []any:
			if len(it) != 2 {
				return errors.New(errors.ErrCodeInvalidInput,
					"y pair has %d elements, want 2", len(it))
			}
			x, okx := tomlNumber(it[0])
			y, oky := tomlNumber(it[1])
			if !okx || !oky {
				return errors.New(errors.ErrCodeInvalidInput, "y pair must contain numbers")
			}
			s.pairs = append(s.pairs, [2]float64{x, y})
		default:
			n, ok := tomlNumber(item)
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput, "y must contain numbers")
			}
			s.flat = append(s.flat, n)
		}
	}
	if s.flat != nil && s.pairs != nil {
		return errors.New(errors.ErrCodeInvalidInput, "y mixes numbers and [x, y] pairs")
	}
	return nil
}

// tomlNumber converts the numeric types the TOML decoder produces.
func tomlNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// decodeInput parses the named input stream into plot documents. The
// format is chosen by file extension: .toml is TOML, everything else
// (including stdin) is JSON.
func decodeInput(r io.Reader, name string) ([]inputDoc, error) {
	if strings.HasSuffix(strings.ToLower(name), ".toml") {
		return decodeTOML(r)
	}
	return decodeJSON(r)
}

func decodeJSON(r io.Reader) ([]inputDoc, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading input")
	}

	// A top-level input is either a single series object or an ordered
	// list of them.
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	if strings.HasPrefix(trimmed, "[") {
		var docs []inputDoc
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding JSON input")
		}
		return docs, nil
	}

	var doc inputDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding JSON input")
	}
	return []inputDoc{doc}, nil
}

func decodeTOML(r io.Reader) ([]inputDoc, error) {
	var in tomlInput
	if _, err := toml.NewDecoder(r).Decode(&in); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decoding TOML input")
	}
	docs := []inputDoc{{Width: in.Width, Height: in.Height, XLim: in.XLim, YLim: in.YLim}}
	return append(docs, in.Series...), nil
}

// applyDocs configures the canvas and plots every series, in order.
// Canvas keys in later documents override earlier ones, matching the
// original shell plotter.
func applyDocs(canvas *plot.Canvas, docs []inputDoc) error {
	for i, doc := range docs {
		if err := applyDoc(canvas, doc); err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInvalidInput
			}
			return errors.Wrap(code, err, "input document %d", i)
		}
	}
	return nil
}

func applyDoc(canvas *plot.Canvas, doc inputDoc) error {
	if doc.Width > 0 {
		canvas.SetWidth(doc.Width)
	}
	if doc.Height > 0 {
		canvas.SetHeight(doc.Height)
	}
	if doc.XLim != nil {
		if len(doc.XLim) != 2 {
			return errors.New(errors.ErrCodeInvalidLimit, "xlim must be [min, max]")
		}
		canvas.SetXLim(doc.XLim[0], doc.XLim[1])
	}
	if doc.YLim != nil {
		if len(doc.YLim) != 2 {
			return errors.New(errors.ErrCodeInvalidLimit, "ylim must be [min, max]")
		}
		canvas.SetYLim(doc.YLim[0], doc.YLim[1])
	}

	if doc.X == nil && doc.Y.flat == nil && doc.Y.pairs == nil {
		return nil // canvas settings only
	}

	style := plot.Style{Color: doc.Color, Chars: plot.DefaultChars}
	if doc.Chars != nil {
		style.Chars = *doc.Chars
	}

	switch {
	case doc.X != nil && doc.Y.pairs != nil:
		return errors.New(errors.ErrCodeInvalidInput, "y must be a flat list when x is given")
	case doc.X != nil && doc.Y.flat == nil:
		return errors.New(errors.ErrCodeInvalidInput, "series has x values but no y values")
	case doc.X != nil:
		return canvas.PlotXY(doc.X, doc.Y.flat, style)
	case doc.Y.pairs != nil:
		return canvas.PlotPairs(doc.Y.pairs, style)
	default:
		return canvas.Plot(doc.Y.flat, style)
	}
}

// describeDocs summarizes decoded input for debug logging.
func describeDocs(docs []inputDoc) string {
	series := 0
	for _, d := range docs {
		if d.X != nil || d.Y.flat != nil || d.Y.pairs != nil {
			series++
		}
	}
	return fmt.Sprintf("%d document(s), %d series", len(docs), series)
}
