package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestSections(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.BeginSection("linear scan")
	r.Result("insert", "1.2ms")
	r.EndSection()

	want := "--- linear scan ---\ninsert: 1.2ms\n\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEndSectionWithoutBegin(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.EndSection()
	if buf.Len() != 0 {
		t.Errorf("EndSection without a section wrote %q", buf.String())
	}
}

func TestProgressSkippedWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Progress("compiling", "")
	r.Progress("running", "size 1024")
	if buf.Len() != 0 {
		t.Errorf("non-terminal progress wrote %q", buf.String())
	}

	r.Result("insert", "250ns")
	if got := buf.String(); got != "insert: 250ns\n" {
		t.Errorf("result = %q", got)
	}
}

func TestProgressErasedOnTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)
	r.tty = true // pretend the buffer is a terminal

	r.Progress("running", "size 1024")
	want := "running: size 1024... "
	if got := buf.String(); got != want {
		t.Errorf("progress = %q, want %q", got, want)
	}

	r.Result("running", "done")
	got := buf.String()
	erase := "\r" + strings.Repeat(" ", len(want)) + "\r"
	if got != want+erase+"running: done\n" {
		t.Errorf("result after progress = %q", got)
	}
}

func TestProgressReplacesPrevious(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)
	r.tty = true

	r.Progress("step", "1")
	r.Progress("step", "2")

	got := buf.String()
	if !strings.Contains(got, "\r") {
		t.Error("second progress did not erase the first")
	}
	if !strings.HasSuffix(got, "step: 2... ") {
		t.Errorf("output does not end with the latest progress: %q", got)
	}
}
