package errors

import (
	stderrors "errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidColor, "unknown color %q", "mauve")

	if err.Code != ErrCodeInvalidColor {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidColor)
	}
	want := `INVALID_COLOR: unknown color "mauve"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("unexpected end of JSON input")
	err := Wrap(ErrCodeInvalidInput, cause, "decoding %s", "data.json")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error lost its cause")
	}
	want := "INVALID_INPUT: decoding data.json: unexpected end of JSON input"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNoData, "no series to plot")

	if !Is(err, ErrCodeNoData) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInvalidInput) {
		t.Error("Is matched a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNoData) {
		t.Error("Is matched a non-structured error")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeFileNotFound, "missing")); got != ErrCodeFileNotFound {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidLimit, "xlim must be [min, max]")
	if got := UserMessage(err); got != "xlim must be [min, max]" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage on plain error = %q", got)
	}
}
