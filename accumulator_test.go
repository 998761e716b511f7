package linefill

import (
	"testing"

	"github.com/npillmayer/linefill/glyph"
	"github.com/npillmayer/linefill/hyphenate"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestAccumulateWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linefill")
	defer teardown()
	//
	acc := NewWordAccumulator(glyph.StringSource("hello  world.\nNext one", 0))
	tests := []struct {
		text        string
		lead        int
		sentenceEnd bool
	}{
		{"hello", 1, false},
		{"world.", 2, true},
		{"Next", 2, false},
		{"one", 1, false},
	}
	for i, tt := range tests {
		w, sig := acc.NextWord()
		if sig != WordReady {
			t.Fatalf("word %d: got signal %s", i, sig)
		}
		if got := glyph.String(w.Glyphs); got != tt.text {
			t.Fatalf("word %d: got %q, want %q", i, got, tt.text)
		}
		if w.LeadWidth() != tt.lead {
			t.Errorf("word %q: lead is %d, want %d", tt.text, w.LeadWidth(), tt.lead)
		}
		if w.SentenceEnd != tt.sentenceEnd {
			t.Errorf("word %q: sentence end is %v", tt.text, w.SentenceEnd)
		}
	}
	if _, sig := acc.NextWord(); sig != EndOfInput {
		t.Fatalf("expected end of input, got %s", sig)
	}
	if _, sig := acc.NextWord(); sig != EndOfInput {
		t.Fatalf("expected end of input to be sticky, got %s", sig)
	}
	if acc.Consumed() != 22 {
		t.Errorf("expected 22 glyphs to be consumed, got %d", acc.Consumed())
	}
}

func TestAccumulatorLineSignals(t *testing.T) {
	acc := NewWordAccumulator(glyph.StringSource("a \n\n   b\n", 0))
	expect := func(want Signal, text string) {
		t.Helper()
		w, sig := acc.NextWord()
		if sig != want {
			t.Fatalf("got signal %s, want %s", sig, want)
		}
		if w != nil && glyph.String(w.Glyphs) != text {
			t.Fatalf("got word %q, want %q", glyph.String(w.Glyphs), text)
		}
	}
	expect(WordReady, "a")
	expect(EndOfLine, "")
	expect(BlankLine, "")
	expect(IndentedLine, "")
	if acc.Indent() != 3 {
		t.Errorf("indent: got %d, want 3", acc.Indent())
	}
	expect(WordReady, "b")
	expect(EndOfInput, "")
}

func TestManualBreakMarks(t *testing.T) {
	tests := []struct {
		input      string
		text       string
		marks      []int
		suppressed bool
	}{
		{"co\u00ADoperate", "cooperate", []int{2}, false},
		{"in\u00ADter\u00ADnal", "internal", []int{2, 5}, false},
		{"\u00ADfoo\u00ADbar", "foobar", nil, true},
		{"well-known", "well-known", []int{5}, false},
		{"-x", "-x", nil, false},
		{"1-2", "1-2", nil, false},
		{"em\u2014dash", "em\u2014dash", []int{3}, false},
	}
	for _, tt := range tests {
		acc := NewWordAccumulator(glyph.StringSource(tt.input, 0))
		w, sig := acc.NextWord()
		if sig != WordReady {
			t.Fatalf("%q: got signal %s", tt.input, sig)
		}
		if got := glyph.String(w.Glyphs); got != tt.text {
			t.Errorf("%q: got %q, want %q", tt.input, got, tt.text)
		}
		offsets := w.Breaks().Offsets()
		if len(offsets) != len(tt.marks) {
			t.Fatalf("%q: got marks %v, want %v", tt.input, offsets, tt.marks)
		}
		for i, m := range tt.marks {
			if offsets[i] != m {
				t.Errorf("%q: got marks %v, want %v", tt.input, offsets, tt.marks)
			}
			if src, _ := w.Breaks().Source(m); src != hyphenate.ManualBreak {
				t.Errorf("%q: mark %d has source %s", tt.input, m, src)
			}
		}
		if w.Suppressed != tt.suppressed {
			t.Errorf("%q: suppressed is %v", tt.input, w.Suppressed)
		}
	}
}

func TestWordAcrossSegments(t *testing.T) {
	src := glyph.Concat(
		glyph.StringSource("the hyph", 0),
		glyph.StringSource("en", 0),
		glyph.StringSource("ation", 0),
	)
	acc := NewWordAccumulator(src)
	if w, _ := acc.NextWord(); w == nil || glyph.String(w.Glyphs) != "the" {
		t.Fatalf("expected first word 'the', got %v", w)
	}
	for i := 0; i < 2; i++ {
		w, sig := acc.NextWord()
		if sig != EndOfSegment || w != nil {
			t.Fatalf("expected end of segment %d, got %s", i, sig)
		}
		if !acc.Pending() {
			t.Fatalf("expected word to be pending after segment %d", i)
		}
	}
	w, sig := acc.NextWord()
	if sig != WordReady {
		t.Fatalf("expected word, got %s", sig)
	}
	if got := glyph.String(w.Glyphs); got != "hyphenation" {
		t.Errorf("got %q, want %q", got, "hyphenation")
	}
	if w.Continues || acc.Pending() {
		t.Errorf("expected word to be complete")
	}
	if acc.Consumed() != 17 {
		t.Errorf("expected 15 glyphs and 2 segment ends to be consumed, got %d", acc.Consumed())
	}
}

func TestWordOverflowReportedOnce(t *testing.T) {
	var reports []Overflow
	acc := NewWordAccumulator(glyph.StringSource("abcdefghij klm", 0),
		WithWordCapacity(8),
		WithOverflowReporter(OverflowFunc(func(o Overflow) {
			reports = append(reports, o)
		})))
	w, _ := acc.NextWord()
	if got := glyph.String(w.Glyphs); got != "abcdef" {
		t.Errorf("got %q, want %q", got, "abcdef")
	}
	if len(reports) != 1 || reports[0].Kind != WordOverflow {
		t.Fatalf("expected a single word overflow, got %v", reports)
	}
	w, _ = acc.NextWord()
	if got := glyph.String(w.Glyphs); got != "klm" {
		t.Errorf("got %q, want %q", got, "klm")
	}
	if len(reports) != 1 {
		t.Errorf("expected no further reports, got %v", reports)
	}
}

func TestNextVerbatim(t *testing.T) {
	acc := NewWordAccumulator(glyph.StringSource("  a\u00ADb  \n\nc", 0))
	tests := []struct {
		text string
		sig  Signal
	}{
		{"  ab  ", EndOfLine},
		{"", EndOfLine},
		{"c", EndOfInput},
	}
	for _, tt := range tests {
		glyphs, sig := acc.NextVerbatim()
		if got := glyph.String(glyphs); got != tt.text || sig != tt.sig {
			t.Errorf("got %q/%s, want %q/%s", got, sig, tt.text, tt.sig)
		}
	}
}
