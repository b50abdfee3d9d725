package tui

import (
	"strings"
	"testing"
)

func TestTruncStr(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello w…"},
		{"hello", 0, ""},
		{"héllo wörld", 7, "héllo …"},
	}
	for _, tt := range tests {
		if got := truncStr(tt.in, tt.limit); got != tt.want {
			t.Errorf("truncStr(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestPadHeight(t *testing.T) {
	out := padHeight("a\nb", 5)
	if got := len(strings.Split(out, "\n")); got != 5 {
		t.Errorf("padded to %d lines, want 5", got)
	}

	// Already tall enough: unchanged
	in := "a\nb\nc"
	if got := padHeight(in, 2); got != in {
		t.Errorf("padHeight should not shrink: got %q", got)
	}
}

func TestTruncateHeight(t *testing.T) {
	out := truncateHeight("a\nb\nc\nd", 2)
	if out != "a\nb" {
		t.Errorf("truncateHeight = %q, want %q", out, "a\nb")
	}

	in := "a\nb"
	if got := truncateHeight(in, 5); got != in {
		t.Errorf("truncateHeight should not pad: got %q", got)
	}
}

func TestWrapText(t *testing.T) {
	out := wrapText("one two three four five", 9)
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 9 {
			t.Errorf("line %q exceeds wrap width", line)
		}
	}
	if strings.ReplaceAll(out, "\n", " ") != "one two three four five" {
		t.Errorf("wrapping lost words: %q", out)
	}
}
