package linefill

import (
	"fmt"

	"github.com/npillmayer/linefill/glyph"
)

// Line is an output line under construction. Widths are in device units;
// the available width is the line length minus the indent in effect when
// the line was started.
type Line struct {
	glyphs     []glyph.Glyph
	available  int
	width      int // width of the glyphs stored
	words      int
	indent     int
	limit      int
	overflowed bool
	overfull   bool
	serial     int
	reporter   OverflowReporter
}

func newLine(available, indent, limit int, reporter OverflowReporter) *Line {
	if reporter == nil {
		reporter = traceReporter{}
	}
	return &Line{
		available: available,
		indent:    indent,
		limit:     limit,
		reporter:  reporter,
	}
}

// NewLine creates an empty line with the given available width and indent.
func NewLine(available, indent int) *Line {
	return newLine(available, indent, DefaultLineCapacity, nil)
}

// Glyphs returns the glyphs of the line. Inter-word gaps are runs of space.
func (l *Line) Glyphs() []glyph.Glyph { return l.glyphs }

// Len is the number of glyphs stored.
func (l *Line) Len() int { return len(l.glyphs) }

// Width is the width used.
func (l *Line) Width() int { return l.width }

// Remaining is the width left. It is negative for an overfull line.
func (l *Line) Remaining() int { return l.available - l.width }

// Available is the width the line was started with.
func (l *Line) Available() int { return l.available }

// Words is the number of words placed, hyphenated fragments included.
func (l *Line) Words() int { return l.words }

// Indent is the horizontal offset of the line, including the shift of a
// centered or right-adjusted line.
func (l *Line) Indent() int { return l.indent }

// Serial is the position of the line in the output, counting from 0.
func (l *Line) Serial() int { return l.serial }

// IsEmpty is true if the line holds no glyphs.
func (l *Line) IsEmpty() bool { return len(l.glyphs) == 0 }

// Overfull is true if a word wider than the line had to be placed on it.
func (l *Line) Overfull() bool { return l.overfull }

func (l *Line) String() string {
	return glyph.String(l.glyphs)
}

// Debug shows the line metrics.
func (l *Line) Debug() string {
	return fmt.Sprintf("line#%d[in=%d w=%d/%d words=%d %q]", l.serial, l.indent,
		l.width, l.available, l.words, l.String())
}

// append stores g unless the line buffer is full. The first glyph dropped
// is reported.
func (l *Line) append(g glyph.Glyph) bool {
	if len(l.glyphs) >= l.limit-2 {
		if !l.overflowed {
			l.overflowed = true
			l.reporter.ReportOverflow(Overflow{
				Kind:     LineOverflow,
				Capacity: l.limit,
				Text:     l.String(),
			})
		}
		return false
	}
	l.glyphs = append(l.glyphs, g)
	l.width += g.Width
	return true
}

func (l *Line) appendAll(glyphs []glyph.Glyph) int {
	n := 0
	for _, g := range glyphs {
		if l.append(g) {
			n++
		}
	}
	return n
}

// truncate drops the glyphs from index n on.
func (l *Line) truncate(n int) {
	if n >= len(l.glyphs) {
		return
	}
	l.width -= glyph.TotalWidth(l.glyphs[n:])
	l.glyphs = l.glyphs[:n]
}
