package linefill

import (
	"fmt"

	"github.com/npillmayer/linefill/glyph"
	"github.com/npillmayer/linefill/hyphenate"
)

// FitResult is the outcome of placing a word onto a line.
type FitResult uint8

const (
	Fits             FitResult = iota // the whole word is on the line
	BrokenWithHyphen                  // a prefix is on the line, the remainder is returned
	DoesNotFit                        // nothing was placed, the word is returned
	ForcedOverflow                    // the word is alone on the line and too wide for it
)

func (r FitResult) String() string {
	switch r {
	case Fits:
		return "fits"
	case BrokenWithHyphen:
		return "broken"
	case DoesNotFit:
		return "does-not-fit"
	case ForcedOverflow:
		return "forced"
	}
	return fmt.Sprintf("fit(%d)", uint8(r))
}

// LineFitter places words onto lines, hyphenating where a word does not fit.
type LineFitter struct {
	engine      *hyphenate.Engine
	oracle      glyph.WidthOracle
	mode        HyphenMode
	budget      PageBudget
	lineSpacing int
}

// NewLineFitter creates a fitter asking engine for break candidates. engine
// may be nil, leaving hand-placed candidates only. It honours the options
// WithHyphenation, WithWidths and WithPageBudget.
func NewLineFitter(engine *hyphenate.Engine, opts ...Option) *LineFitter {
	o := buildOptions(opts)
	return newLineFitter(engine, &o)
}

func newLineFitter(engine *hyphenate.Engine, o *options) *LineFitter {
	return &LineFitter{
		engine:      engine,
		oracle:      o.oracle,
		mode:        o.hyphen,
		budget:      o.budget,
		lineSpacing: o.lineSpacing,
	}
}

// SetMode changes the hyphenation mode.
func (lf *LineFitter) SetMode(mode HyphenMode) { lf.mode = mode }

// Mode returns the hyphenation mode.
func (lf *LineFitter) Mode() HyphenMode { return lf.mode }

// Place appends w to line. If w does not fit, the fitter looks for the last
// candidate whose prefix, followed by a hyphen, still fits. The first word
// of a line is always placed: at the earliest candidate if none fits, or
// whole, overflowing the line, if it has no candidates at all. A word that
// no longer fits into the line buffer goes to the next line. The second
// return value is the part of w still to be placed: the remainder for
// BrokenWithHyphen, w itself for DoesNotFit.
func (lf *LineFitter) Place(w *Word, line *Line) (FitResult, *Word) {
	lead := w.Lead
	if line.words == 0 {
		lead = nil
	}
	leadWidth := glyph.TotalWidth(lead)
	if leadWidth+w.Width() > line.Remaining() && lf.mayAnalyse(w, line) {
		lf.analyse(w)
	}
	before, remaining := line.Len(), line.Remaining()
	stored := line.appendAll(lead)
	start := line.Len()
	stored += line.appendAll(w.Glyphs)
	if stored < len(lead)+len(w.Glyphs) && line.words > 0 {
		line.truncate(before)
		tracer().Debugf("line buffer full, %q goes to the next line", glyph.String(w.Glyphs))
		return DoesNotFit, w
	}
	if line.Remaining() >= 0 {
		line.words++
		return Fits, nil
	}
	cands := lf.candidates(w)
	chosen := -1
	for i := len(cands) - 1; i >= 0; i-- {
		c := cands[i]
		if remaining-leadWidth-glyph.TotalWidth(w.Glyphs[:c]) >= lf.hyphenWidth(w.Glyphs[c-1]) {
			chosen = c
			break
		}
	}
	if chosen < 0 && line.words == 0 && len(cands) > 0 {
		chosen = cands[0]
	}
	if chosen < 0 {
		if line.words == 0 {
			line.words++
			line.overfull = true
			tracer().Infof("word %q overflows the line", glyph.String(w.Glyphs))
			return ForcedOverflow, nil
		}
		line.truncate(before)
		return DoesNotFit, w
	}
	line.truncate(start + chosen)
	if prev := w.Glyphs[chosen-1]; !prev.IsDash() {
		line.append(glyph.Make(glyph.Hyphen, prev.Attr).Measured(lf.oracle))
	}
	line.words++
	if line.Remaining() < 0 {
		line.overfull = true
	}
	tracer().Debugf("break %q at %d of %v", glyph.String(w.Glyphs), chosen, cands)
	return BrokenWithHyphen, w.remainder(chosen)
}

// hyphenWidth is the width a break behind prev needs. Dashes need no
// hyphen.
func (lf *LineFitter) hyphenWidth(prev glyph.Glyph) int {
	if prev.IsDash() {
		return 0
	}
	return lf.oracle.Width(glyph.Hyphen, prev.Attr)
}

// mayAnalyse decides whether automatic hyphenation is worth trying for w.
// A line already holding words must have more than three spaces left, and
// in HyphenNotPageEnd mode there must be room for another line on the page.
func (lf *LineFitter) mayAnalyse(w *Word, line *Line) bool {
	if w.Suppressed || w.manual || w.analysed || len(w.Glyphs) == 0 {
		return false
	}
	if !lf.mode.Enabled() || lf.engine == nil {
		return false
	}
	if line.words > 0 && line.Remaining() <= 3*lf.oracle.Width(glyph.Space, w.Glyphs[0].Attr) {
		return false
	}
	if lf.mode&HyphenNotPageEnd != 0 && lf.budget != nil && lf.budget.Remaining() <= lf.lineSpacing {
		return false
	}
	return true
}

func (lf *LineFitter) analyse(w *Word) {
	w.breaks = lf.engine.FindBreaks(w.Runes())
	w.analysed = true
}

// candidates lists the usable break offsets of w in ascending order.
// Automatically found candidates leave at least two letters on either side.
func (lf *LineFitter) candidates(w *Word) []int {
	if w.breaks == nil {
		return nil
	}
	start, end, analysed := w.breaks.Letters()
	var cands []int
	for _, c := range w.breaks.Offsets() {
		if c <= 0 || c >= len(w.Glyphs) {
			continue
		}
		if analysed {
			if c <= start+1 || c >= end {
				continue
			}
			if lf.mode&HyphenNotLastTwo != 0 && c >= end-1 {
				continue
			}
			if lf.mode&HyphenNotFirstTwo != 0 && c <= start+2 {
				continue
			}
		}
		cands = append(cands, c)
	}
	return cands
}
