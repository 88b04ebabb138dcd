// Package progress provides simple status output for long-running shell
// programs, such as harnesses that feed measurement series to shplot.
//
// A Reporter prints three kinds of output: section banners, transient
// progress lines that erase themselves, and durable result lines.
// Progress lines appear only when the destination is an interactive
// terminal, so piped or redirected output contains sections and results
// only. All state lives on the Reporter; callers pass it by reference
// and pair BeginSection with EndSection explicitly.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Reporter writes status lines to a single destination. It is intended
// for use by one goroutine at a time.
type Reporter struct {
	w       io.Writer
	tty     bool
	pending int // width of the transient line awaiting erasure
	section string
}

// NewReporter creates a reporter for w. Terminal-ness is sampled once at
// construction.
func NewReporter(w io.Writer) *Reporter {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd())
	}
	return &Reporter{w: w, tty: tty}
}

// BeginSection prints a banner marking the start of a named section.
// Every BeginSection should be paired with EndSection.
func (r *Reporter) BeginSection(name string) {
	r.section = name
	fmt.Fprintf(r.w, "--- %s ---\n", name)
}

// EndSection closes the current section with a blank line. It is a
// no-op when no section is open.
func (r *Reporter) EndSection() {
	if r.section == "" {
		return
	}
	r.clear()
	fmt.Fprintln(r.w)
	r.section = ""
}

// Progress draws a transient "task: state... " line that the next
// Progress or Result call erases. It writes nothing on non-terminal
// destinations. An empty state draws "task... ".
func (r *Reporter) Progress(task, state string) {
	if !r.tty {
		return
	}
	r.clear()

	line := task + "... "
	if state != "" {
		line = fmt.Sprintf("%s: %s... ", task, state)
	}
	fmt.Fprint(r.w, line)
	r.pending = len(line)
}

// Result prints a durable "task: result" line, erasing any pending
// progress line first. Results are always written.
func (r *Reporter) Result(task, result string) {
	r.clear()
	fmt.Fprintf(r.w, "%s: %s\n", task, result)
}

// clear erases the transient progress line, if any.
func (r *Reporter) clear() {
	if r.pending == 0 {
		return
	}
	fmt.Fprint(r.w, "\r"+strings.Repeat(" ", r.pending)+"\r")
	r.pending = 0
}
