package linefill

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/linefill/glyph"
	"github.com/npillmayer/linefill/hyphenate"
	"github.com/npillmayer/linefill/hyphenate/hytab"
)

// Sink receives finished lines. A line's glyphs hold inter-word gaps as
// runs of space; gap i is to be widened by js.Extra(i).
type Sink interface {
	EmitLine(line *Line, js JustificationState) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(line *Line, js JustificationState) error

// EmitLine calls f(line, js).
func (f SinkFunc) EmitLine(line *Line, js JustificationState) error {
	return f(line, js)
}

// PageBudget reports the vertical space left before the next page boundary,
// in the units of the line spacing given to WithPageBudget.
type PageBudget interface {
	Remaining() int
}

// State is the phase of the formatter. It is observable for tracing and
// testing only.
type State uint8

const (
	Idle State = iota
	AccumulatingWord
	Fitting
	LineFull
	WordIncomplete
	Justifying
	Emitted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AccumulatingWord:
		return "accumulating"
	case Fitting:
		return "fitting"
	case LineFull:
		return "line-full"
	case WordIncomplete:
		return "word-incomplete"
	case Justifying:
		return "justifying"
	case Emitted:
		return "emitted"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Formatter fills words from a glyph source into lines and emits them to a
// sink. A formatter is not safe for concurrent use.
type Formatter struct {
	opts       options
	acc        *WordAccumulator
	engine     *hyphenate.Engine
	fitter     *LineFitter
	justifier  *Justifier
	sink       Sink
	line       *Line
	state      State
	emitted    int
	tempIndent int
	hasTemp    bool
	centered   int  // input lines still to be centered
	verbatim   bool // an unfilled line goes on in the next segment
	finished   bool
	err        error
}

// NewFormatter creates a formatter reading from src and writing to sink.
func NewFormatter(src glyph.Source, sink Sink, opts ...Option) (*Formatter, error) {
	if src == nil || sink == nil {
		return nil, errors.New("formatter needs a source and a sink")
	}
	f := &Formatter{opts: buildOptions(opts), sink: sink}
	dict := f.opts.dict
	if dict == nil {
		var err error
		if dict, err = hytab.Default(); err != nil {
			return nil, err
		}
	}
	f.engine = hyphenate.NewEngine(dict)
	f.engine.SetThreshold(f.opts.threshold)
	f.acc = newWordAccumulator(src, &f.opts)
	f.fitter = newLineFitter(f.engine, &f.opts)
	f.justifier = NewJustifier(f.opts.quantum)
	f.resetLine()
	tracer().Debugf("formatter: ll=%d in=%d fill=%v adjust=%s hy=%d", f.opts.lineLength,
		f.opts.indent, f.opts.fill, f.opts.adjust, f.opts.hyphen)
	return f, nil
}

// State returns the current phase.
func (f *Formatter) State() State { return f.state }

// Emitted is the number of lines delivered to the sink.
func (f *Formatter) Emitted() int { return f.emitted }

// Line returns the line under construction.
func (f *Formatter) Line() *Line { return f.line }

// Engine returns the hyphenation engine.
func (f *Formatter) Engine() *hyphenate.Engine { return f.engine }

// Accumulator returns the word accumulator reading the source.
func (f *Formatter) Accumulator() *WordAccumulator { return f.acc }

func (f *Formatter) setState(s State) {
	if f.state != s {
		tracer().Debugf("formatter: %s -> %s", f.state, s)
	}
	f.state = s
}

// Run steps the formatter until the input is exhausted, the sink fails or
// ctx is cancelled.
func (f *Formatter) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := f.Step(); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// Step processes the next word or input line. Every step consumes input,
// counting the end of a segment, or emits output. Step returns io.EOF after the last line has been emitted,
// or the error of a failing sink.
func (f *Formatter) Step() error {
	if f.err != nil {
		return f.err
	}
	if f.finished {
		return io.EOF
	}
	if !f.opts.fill || f.centered > 0 {
		return f.stepVerbatim()
	}
	f.setState(AccumulatingWord)
	w, sig := f.acc.NextWord()
	switch sig {
	case WordReady:
		f.place(w)
	case IndentedLine:
		f.TempIndent(f.opts.indent + f.acc.Indent())
	case BlankLine:
		f.Break()
		f.emitBlank()
	case EndOfInput:
		f.Finish()
	}
	if f.acc.Pending() {
		f.setState(WordIncomplete)
	} else {
		f.setState(Idle)
	}
	return f.result()
}

func (f *Formatter) result() error {
	if f.err != nil {
		return f.err
	}
	if f.finished {
		return io.EOF
	}
	return nil
}

// place fits w onto the current line, breaking lines until all of w is
// placed.
func (f *Formatter) place(w *Word) {
	for w != nil {
		f.setState(Fitting)
		result, rest := f.fitter.Place(w, f.line)
		tracer().Debugf("place %q: %s", w.String(), result)
		switch result {
		case Fits:
			return
		case BrokenWithHyphen:
			f.setState(WordIncomplete)
		default:
			f.setState(LineFull)
		}
		f.breakLine(true)
		w = rest
	}
}

// stepVerbatim outputs one input line unfilled, centering it if requested.
func (f *Formatter) stepVerbatim() error {
	if !f.verbatim {
		f.breakLine(false)
	}
	f.setState(AccumulatingWord)
	glyphs, sig := f.acc.NextVerbatim()
	f.line.appendAll(glyphs)
	switch sig {
	case EndOfSegment:
		f.verbatim = true
		return f.result()
	case EndOfInput:
		if f.verbatim || len(glyphs) > 0 {
			f.emitVerbatim()
		}
		f.verbatim = false
		f.Finish()
		return f.result()
	}
	f.verbatim = false
	f.emitVerbatim()
	f.setState(Idle)
	return f.result()
}

func (f *Formatter) emitVerbatim() {
	line := f.line
	if f.centered > 0 {
		f.centered--
		if rem := line.Remaining(); rem > 0 {
			line.indent += f.quantize(rem / 2)
		}
	}
	f.emit(line, JustificationState{})
	f.resetLine()
}

// breakLine ends the current line. Lines ended because the next word did
// not fit are justified; lines ended by a break are not. An empty line is
// not output.
func (f *Formatter) breakLine(full bool) {
	line := f.line
	if line.IsEmpty() && line.Words() == 0 {
		return
	}
	var js JustificationState
	if !f.opts.adjustOff {
		rem := line.Remaining()
		switch f.opts.adjust {
		case AdjustBoth:
			if full {
				f.setState(Justifying)
				js = f.justifier.ComputeGaps(line, f.emitted)
			}
		case AdjustCenter:
			if rem > 0 {
				line.indent += f.quantize(rem / 2)
			}
		case AdjustRight:
			if rem > 0 {
				line.indent += f.quantize(rem)
			}
		}
	}
	f.emit(line, js)
	f.resetLine()
}

func (f *Formatter) emitBlank() {
	f.emit(newLine(f.opts.lineLength-f.opts.indent, f.opts.indent, f.opts.lineCapacity,
		f.opts.reporter), JustificationState{})
}

func (f *Formatter) emit(line *Line, js JustificationState) {
	line.serial = f.emitted
	f.setState(Emitted)
	tracer().Debugf("emit %s %s", line.Debug(), js)
	if err := f.sink.EmitLine(line, js); err != nil && f.err == nil {
		tracer().Errorf("emitting line %d: %v", line.serial, err)
		f.err = err
	}
	f.emitted++
}

func (f *Formatter) quantize(n int) int {
	return n / f.opts.quantum * f.opts.quantum
}

// resetLine starts a new line, consuming a pending temporary indent.
func (f *Formatter) resetLine() {
	indent := f.opts.indent
	if f.hasTemp {
		indent, f.hasTemp = f.tempIndent, false
	}
	f.line = newLine(f.opts.lineLength-indent, indent, f.opts.lineCapacity, f.opts.reporter)
}

// Break outputs the partially filled line without justifying it.
func (f *Formatter) Break() {
	f.breakLine(false)
}

// Finish outputs the partially filled line and ends formatting. Further
// steps return io.EOF.
func (f *Formatter) Finish() {
	f.breakLine(false)
	f.finished = true
	f.setState(Idle)
}

// TempIndent breaks the line and indents the next one by n units instead
// of the regular indent.
func (f *Formatter) TempIndent(n int) {
	f.Break()
	f.tempIndent, f.hasTemp = max(n, 0), true
	f.resetLine()
}

// SetIndent breaks the line and changes the indent of all following lines.
func (f *Formatter) SetIndent(n int) {
	f.Break()
	f.opts.indent = max(n, 0)
	f.resetLine()
}

// SetLineLength changes the line length, effective from the next line on.
func (f *Formatter) SetLineLength(n int) {
	if n <= 0 {
		return
	}
	f.opts.lineLength = n
	if f.line.IsEmpty() && f.line.Words() == 0 {
		f.line.available = n - f.line.indent
	}
}

// SetFill breaks the line and switches filling on or off.
func (f *Formatter) SetFill(on bool) {
	f.Break()
	f.opts.fill = on
}

// SetAdjust switches adjusting on with the given mode.
func (f *Formatter) SetAdjust(mode AdjustMode) {
	f.opts.adjust, f.opts.adjustOff = mode, false
}

// NoAdjust switches adjusting off, keeping the mode for a later SetAdjust.
func (f *Formatter) NoAdjust() {
	f.opts.adjustOff = true
}

// SetHyphenation changes the hyphenation mode.
func (f *Formatter) SetHyphenation(mode HyphenMode) {
	f.opts.hyphen = mode
	f.fitter.SetMode(mode)
}

// SetThreshold changes the digram threshold; values < 0 restore the default.
func (f *Formatter) SetThreshold(t int) {
	f.engine.SetThreshold(t)
}

// AddException adds words spelled with hyphens to the exception list of
// this formatter.
func (f *Formatter) AddException(spellings ...string) {
	f.engine.AddException(spellings...)
}

// SetOptionalHyphen changes the character marking hand-placed candidates.
func (f *Formatter) SetOptionalHyphen(r rune) {
	f.opts.ohc = r
	f.acc.SetOptionalHyphen(r)
}

// Center breaks the line and centers the next n input lines, unfilled.
func (f *Formatter) Center(n int) {
	f.Break()
	f.centered = max(n, 0)
}
