package linefill

import (
	"github.com/npillmayer/linefill/glyph"
	"github.com/npillmayer/linefill/hyphenate"
)

// Word is a run of non-space glyphs together with the inter-word space
// in front of it. Break candidates are offsets into Glyphs: a candidate c
// allows a break between Glyphs[c-1] and Glyphs[c].
type Word struct {
	Lead        []glyph.Glyph // inter-word space; dropped at the start of a line
	Glyphs      []glyph.Glyph
	Suppressed  bool // an optional hyphen in front of the word disables hyphenation
	Continues   bool // the word goes on in the next input segment
	SentenceEnd bool // the word ends a sentence at the end of an input line
	breaks      *hyphenate.BreakSet
	manual      bool // carries hand-placed candidates
	analysed    bool
	overflowed  bool
}

// Len is the number of glyphs of the word proper.
func (w *Word) Len() int { return len(w.Glyphs) }

// Width is the width of the word without its lead.
func (w *Word) Width() int { return glyph.TotalWidth(w.Glyphs) }

// LeadWidth is the width of the inter-word space in front of the word.
func (w *Word) LeadWidth() int { return glyph.TotalWidth(w.Lead) }

// Breaks returns the break candidates known for the word. Before automatic
// analysis these are the hand-placed ones only.
func (w *Word) Breaks() *hyphenate.BreakSet {
	if w.breaks == nil {
		w.breaks = hyphenate.NewBreakSet()
	}
	return w.breaks
}

// Analysed is true once the word went through automatic hyphenation.
func (w *Word) Analysed() bool { return w.analysed }

// Runes returns the code points of the word proper.
func (w *Word) Runes() []rune {
	runes := make([]rune, len(w.Glyphs))
	for i, g := range w.Glyphs {
		runes[i] = g.Code
	}
	return runes
}

func (w *Word) String() string {
	return glyph.String(w.Lead) + glyph.String(w.Glyphs)
}

func (w *Word) markManual(offset int) {
	w.Breaks().Add(offset, hyphenate.ManualBreak)
	w.manual = true
}

func (w *Word) last() (glyph.Glyph, bool) {
	if len(w.Glyphs) == 0 {
		return glyph.Glyph{}, false
	}
	return w.Glyphs[len(w.Glyphs)-1], true
}

// remainder is the part of w behind offset at. It has no lead and keeps the
// candidates behind at; it is never analysed again.
func (w *Word) remainder(at int) *Word {
	rest := &Word{
		Glyphs:      append([]glyph.Glyph(nil), w.Glyphs[at:]...),
		Suppressed:  w.Suppressed,
		SentenceEnd: w.SentenceEnd,
		breaks:      w.breaks.Cut(at),
		manual:      w.manual,
		analysed:    w.analysed,
		overflowed:  w.overflowed,
	}
	return rest
}
