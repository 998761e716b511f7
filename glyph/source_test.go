package glyph

import (
	"io"
	"testing"
)

func TestReaderSourceNormalizes(t *testing.T) {
	src := StringSource("cafe\u0301\r\n", MakeAttr(1, 10))
	var got []rune
	for {
		g, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.Attr.Font() != 1 || g.Attr.Size() != 10 {
			t.Fatalf("attributes lost: got %s", g.Attr)
		}
		got = append(got, g.Code)
	}
	if string(got) != "caf\u00e9\n" {
		t.Fatalf("normalized input mismatch: got %q, want %q", string(got), "caf\u00e9\n")
	}
}

func TestConcatReportsSegments(t *testing.T) {
	src := Concat(StringSource("ab", 0), StringSource("c", 0))
	tests := []struct {
		code rune
		err  error
	}{
		{'a', nil},
		{'b', nil},
		{0, ErrEndOfSegment},
		{'c', nil},
		{0, io.EOF},
		{0, io.EOF},
	}
	for i, tt := range tests {
		g, err := src.Next()
		if err != tt.err {
			t.Fatalf("step %d: got error %v, want %v", i, err, tt.err)
		}
		if err == nil && g.Code != tt.code {
			t.Fatalf("step %d: got %q, want %q", i, g.Code, tt.code)
		}
	}
}

func TestFixedWidths(t *testing.T) {
	oracle := Fixed(2)
	tests := []struct {
		code rune
		want int
	}{
		{'x', 2},
		{' ', 2},
		{Backspace, -2},
		{'\t', 0},
	}
	for _, tt := range tests {
		if got := oracle.Width(tt.code, 0); got != tt.want {
			t.Fatalf("width of %q: got %d, want %d", tt.code, got, tt.want)
		}
	}
	g := Make('x', 0).Measured(oracle)
	if g.Width != 2 {
		t.Fatalf("measured glyph: got width %d, want 2", g.Width)
	}
}

func TestGlyphClasses(t *testing.T) {
	if !Make('Q', 0).IsLetter() || Make('1', 0).IsLetter() {
		t.Fatalf("letter classification broken")
	}
	if !Make(EmDash, 0).IsDash() || !Make('-', 0).IsDash() {
		t.Fatalf("dash classification broken")
	}
	if !Make('?', 0).EndsSentence() || Make(',', 0).EndsSentence() {
		t.Fatalf("sentence end classification broken")
	}
}
