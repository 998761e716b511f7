package termdev

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/linefill"
)

// Writer renders lines to a terminal. It implements linefill.Sink.
type Writer struct {
	out      *bufio.Writer
	unit     int
	spacing  int
	page     *Page
	formFeed bool
}

// NewWriter creates a writer for device units of unit per cell.
func NewWriter(w io.Writer, unit int) *Writer {
	if unit <= 0 {
		unit = 1
	}
	return &Writer{out: bufio.NewWriter(w), unit: unit, spacing: 1}
}

// SetLineSpacing outputs n-1 empty lines after every line.
func (w *Writer) SetLineSpacing(n int) {
	if n > 0 {
		w.spacing = n
	}
}

// SetPage lets the writer advance page, and separate pages with a form
// feed if formFeed is set.
func (w *Writer) SetPage(page *Page, formFeed bool) {
	w.page, w.formFeed = page, formFeed
}

// EmitLine writes line, widening its gaps as told by js.
func (w *Writer) EmitLine(line *linefill.Line, js linefill.JustificationState) error {
	if _, err := w.out.WriteString(w.Render(line, js)); err != nil {
		return err
	}
	if _, err := w.out.WriteString(strings.Repeat("\n", w.spacing)); err != nil {
		return err
	}
	if w.page != nil && w.page.Advance(w.spacing) && w.formFeed {
		if err := w.out.WriteByte('\f'); err != nil {
			return err
		}
	}
	tracer().Debugf("termdev: wrote line %d", line.Serial())
	return nil
}

// Flush writes buffered output.
func (w *Writer) Flush() error {
	return w.out.Flush()
}

// Render returns the text of line. Runs of space following text are gaps;
// trailing space is dropped.
func (w *Writer) Render(line *linefill.Line, js linefill.JustificationState) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", w.cells(line.Indent())))
	gap, run, text := -1, 0, false
	for _, g := range line.Glyphs() {
		if g.IsSpace() {
			run += g.Width
			continue
		}
		if run > 0 {
			if text {
				gap++
				run += js.Extra(gap)
			}
			sb.WriteString(strings.Repeat(" ", w.cells(run)))
			run = 0
		}
		text = true
		sb.WriteRune(g.Code)
	}
	return sb.String()
}

func (w *Writer) cells(units int) int {
	if units <= 0 {
		return 0
	}
	return units / w.unit
}
