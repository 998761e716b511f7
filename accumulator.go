package linefill

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/linefill/glyph"
)

// Signal tells the caller of WordAccumulator.NextWord what happened.
type Signal uint8

const (
	WordReady    Signal = iota // a complete word is returned
	IndentedLine               // an input line starts with space; see Indent
	BlankLine                  // an input line is empty or all space
	EndOfLine                  // the input line ended before another word started
	EndOfSegment               // the current input segment is exhausted
	EndOfInput                 // no more input
)

func (s Signal) String() string {
	switch s {
	case WordReady:
		return "word"
	case IndentedLine:
		return "indented-line"
	case BlankLine:
		return "blank-line"
	case EndOfLine:
		return "end-of-line"
	case EndOfSegment:
		return "end-of-segment"
	case EndOfInput:
		return "end-of-input"
	}
	return fmt.Sprintf("signal(%d)", uint8(s))
}

// WordAccumulator pulls glyphs from a source and groups them into words.
//
// Spaces in front of a word are collected as the word's lead, followed by
// one synthesized space; a word ending a sentence at the end of an input
// line gets a second one in front of the next word. An optional-hyphen
// character in front of a word suppresses hyphenation of the word, inside
// a word it marks a hand-placed break candidate. A dash following a letter
// marks a candidate behind the dash.
type WordAccumulator struct {
	src         glyph.Source
	oracle      glyph.WidthOracle
	ohc         rune
	capacity    int
	reporter    OverflowReporter
	lookahead   glyph.Glyph
	hasLook     bool
	done        bool
	atLineStart bool
	sentenceEnd bool
	pending     *Word // word interrupted by the end of a segment
	indent      int
	consumed    int
}

// NewWordAccumulator creates an accumulator reading from src. It honours
// the options WithWidths, WithOptionalHyphen, WithWordCapacity and
// WithOverflowReporter.
func NewWordAccumulator(src glyph.Source, opts ...Option) *WordAccumulator {
	o := buildOptions(opts)
	return newWordAccumulator(src, &o)
}

func newWordAccumulator(src glyph.Source, o *options) *WordAccumulator {
	return &WordAccumulator{
		src:         src,
		oracle:      o.oracle,
		ohc:         o.ohc,
		capacity:    o.wordCapacity,
		reporter:    o.reporter,
		atLineStart: true,
	}
}

// Consumed is the number of glyphs and segment ends read from the source so
// far.
func (acc *WordAccumulator) Consumed() int { return acc.consumed }

// Indent is the width of the leading space of the line last signalled as
// IndentedLine.
func (acc *WordAccumulator) Indent() int { return acc.indent }

// Pending is true while a word is interrupted by the end of a segment.
func (acc *WordAccumulator) Pending() bool { return acc.pending != nil }

// SetOptionalHyphen changes the optional-hyphen character.
func (acc *WordAccumulator) SetOptionalHyphen(r rune) { acc.ohc = r }

func (acc *WordAccumulator) read() (glyph.Glyph, error) {
	if acc.hasLook {
		acc.hasLook = false
		acc.consumed++
		return acc.lookahead, nil
	}
	if acc.done {
		return glyph.Glyph{}, io.EOF
	}
	g, err := acc.src.Next()
	if err != nil {
		if errors.Is(err, glyph.ErrEndOfSegment) {
			acc.consumed++
			return g, glyph.ErrEndOfSegment
		}
		if err != io.EOF {
			tracer().Errorf("reading input: %v", err)
		}
		acc.done = true
		return g, io.EOF
	}
	acc.consumed++
	return g.Measured(acc.oracle), nil
}

func (acc *WordAccumulator) unread(g glyph.Glyph) {
	acc.lookahead, acc.hasLook = g, true
	acc.consumed--
}

// NextWord returns the next word, or nil together with a signal telling why
// there is none.
func (acc *WordAccumulator) NextWord() (*Word, Signal) {
	if acc.pending != nil {
		w := acc.pending
		acc.pending = nil
		return acc.collect(w)
	}
	if acc.atLineStart {
		acc.atLineStart = false
		width, spaces := 0, 0
		g, err := acc.read()
		for err == nil && g.IsSpace() {
			width += g.Width
			spaces++
			g, err = acc.read()
		}
		switch {
		case err == io.EOF:
			return nil, EndOfInput
		case err != nil:
			acc.atLineStart = true
			return nil, EndOfSegment
		case g.IsNewline():
			acc.atLineStart = true
			return nil, BlankLine
		case spaces > 0:
			acc.unread(g)
			acc.indent = width
			return nil, IndentedLine
		}
		acc.unread(g)
	}
	return acc.nextWord()
}

func (acc *WordAccumulator) nextWord() (*Word, Signal) {
	w := &Word{}
	var g glyph.Glyph
	var err error
	for {
		g, err = acc.read()
		switch {
		case err == io.EOF:
			return nil, EndOfInput
		case err != nil:
			return nil, EndOfSegment
		case g.IsNewline():
			acc.atLineStart = true
			return nil, EndOfLine
		case g.Code == acc.ohc:
			w.Suppressed = true
			continue
		case g.IsSpace():
			acc.store(w, g, true)
			continue
		}
		break
	}
	space := glyph.Make(glyph.Space, g.Attr).Measured(acc.oracle)
	acc.store(w, space, true)
	if acc.sentenceEnd {
		acc.store(w, space, true)
		acc.sentenceEnd = false
	}
	acc.storeChar(w, g)
	return acc.collect(w)
}

func (acc *WordAccumulator) collect(w *Word) (*Word, Signal) {
	for {
		g, err := acc.read()
		switch {
		case err == io.EOF:
			w.Continues = false
			return w, WordReady
		case err != nil:
			w.Continues = true
			acc.pending = w
			return nil, EndOfSegment
		case g.IsSpace():
			w.Continues = false
			return w, WordReady
		case g.IsNewline():
			w.Continues = false
			if last, ok := w.last(); ok && last.EndsSentence() {
				w.SentenceEnd = true
				acc.sentenceEnd = true
			}
			acc.atLineStart = true
			return w, WordReady
		}
		acc.storeChar(w, g)
	}
}

func (acc *WordAccumulator) storeChar(w *Word, g glyph.Glyph) {
	if g.Code == acc.ohc {
		if !w.Suppressed {
			w.markManual(len(w.Glyphs))
		}
		return
	}
	if !acc.store(w, g, false) {
		return
	}
	if !w.Suppressed && g.IsDash() && len(w.Glyphs) > 1 && w.Glyphs[len(w.Glyphs)-2].IsLetter() {
		w.markManual(len(w.Glyphs))
	}
}

func (acc *WordAccumulator) store(w *Word, g glyph.Glyph, lead bool) bool {
	if len(w.Lead)+len(w.Glyphs) >= acc.capacity-1 {
		if !w.overflowed {
			w.overflowed = true
			acc.reporter.ReportOverflow(Overflow{
				Kind:     WordOverflow,
				Capacity: acc.capacity,
				Text:     w.String(),
			})
		}
		return false
	}
	if lead {
		w.Lead = append(w.Lead, g)
	} else {
		w.Glyphs = append(w.Glyphs, g)
	}
	return true
}

// NextVerbatim returns the rest of the current input line as it is, for
// unfilled output. Optional-hyphen characters are dropped. The signal is
// EndOfLine, EndOfSegment (the line goes on in the next segment) or
// EndOfInput; glyphs may be non-empty with any of them.
func (acc *WordAccumulator) NextVerbatim() ([]glyph.Glyph, Signal) {
	var glyphs []glyph.Glyph
	if acc.pending != nil {
		glyphs = append(glyphs, acc.pending.Lead...)
		glyphs = append(glyphs, acc.pending.Glyphs...)
		acc.pending = nil
	}
	acc.sentenceEnd = false
	for {
		g, err := acc.read()
		switch {
		case err == io.EOF:
			return glyphs, EndOfInput
		case err != nil:
			return glyphs, EndOfSegment
		case g.IsNewline():
			acc.atLineStart = true
			return glyphs, EndOfLine
		case g.Code == acc.ohc:
			continue
		}
		acc.atLineStart = false
		glyphs = append(glyphs, g)
	}
}
