package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/matzehuels/shplot/pkg/errors"
	"github.com/matzehuels/shplot/pkg/plot"
)

// plotOpts holds the command-line flags for the root plot command.
type plotOpts struct {
	width  int    // plot body width in cells, 0 = auto
	height int    // plot body height in cells, 0 = auto
	output string // output file path, empty = stdout
}

// runPlot decodes the input, builds a canvas, and renders it. Flags set
// the initial dimensions; canvas keys in the input override them.
func (c *CLI) runPlot(path string, opts *plotOpts) error {
	in, name, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()

	docs, err := decodeInput(in, name)
	if err != nil {
		return err
	}
	c.Logger.Debugf("decoded %s from %s", describeDocs(docs), name)

	canvas := plot.New()
	if opts.width > 0 {
		canvas.SetWidth(opts.width)
	}
	if opts.height > 0 {
		canvas.SetHeight(opts.height)
	}
	if err := applyDocs(canvas, docs); err != nil {
		return err
	}

	if opts.output == "" {
		return canvas.Render(os.Stdout)
	}
	return c.renderToFile(canvas, opts.output, docs)
}

func (c *CLI) renderToFile(canvas *plot.Canvas, path string, docs []inputDoc) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating %s", path)
	}
	if err := canvas.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", path)
	}

	printSuccess("Plot rendered")
	printFile(path)
	printDetail("%s", describeDocs(docs))
	return nil
}

// openInput resolves the plot data source: the named file when given,
// otherwise piped stdin. Running interactively with no argument is an
// error rather than a silent hang.
func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			return nil, "", errors.New(errors.ErrCodeInvalidInput,
				"no input: pass a .json/.toml file or pipe JSON on stdin")
		}
		return io.NopCloser(os.Stdin), "stdin", nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errors.New(errors.ErrCodeFileNotFound, "input file not found: %s", path)
		}
		return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "opening %s", path)
	}
	return f, path, nil
}
