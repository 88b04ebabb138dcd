package plot

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Default plot body size when the terminal cannot be measured, e.g.
// when output is redirected to a file.
const (
	DefaultWidth  = 72
	DefaultHeight = 20
)

// isTerminal reports whether w is an interactive terminal. Only *os.File
// destinations can be terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// terminalSize returns the character dimensions of the terminal behind
// w. Failure is expected for non-terminal writers and is handled by the
// caller with default dimensions.
func terminalSize(w io.Writer) (width, height int, err error) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0, os.ErrInvalid
	}
	return term.GetSize(int(f.Fd()))
}
