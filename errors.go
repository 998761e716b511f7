package linefill

import "fmt"

// OverflowKind tells which buffer ran full.
type OverflowKind uint8

const (
	WordOverflow OverflowKind = iota // word buffer capacity exceeded
	LineOverflow                     // line buffer capacity exceeded
)

func (k OverflowKind) String() string {
	switch k {
	case WordOverflow:
		return "word overflow"
	case LineOverflow:
		return "line overflow"
	}
	return fmt.Sprintf("overflow(%d)", uint8(k))
}

// Overflow is the diagnostic for a buffer running full. Overflows are not
// fatal: surplus glyphs are dropped and formatting goes on. Each word and
// each line reports at most one overflow.
type Overflow struct {
	Kind     OverflowKind
	Capacity int    // capacity of the buffer, in glyphs
	Text     string // the text collected so far
}

func (o Overflow) Error() string {
	return fmt.Sprintf("%s (capacity %d): %q", o.Kind, o.Capacity, o.Text)
}

// OverflowReporter receives overflow diagnostics.
type OverflowReporter interface {
	ReportOverflow(Overflow)
}

// OverflowFunc adapts a function to the OverflowReporter interface.
type OverflowFunc func(Overflow)

// ReportOverflow calls f(o).
func (f OverflowFunc) ReportOverflow(o Overflow) { f(o) }

// traceReporter is the default reporter. It logs to the 'linefill' tracer.
type traceReporter struct{}

func (traceReporter) ReportOverflow(o Overflow) {
	tracer().Errorf("%v", o)
}
