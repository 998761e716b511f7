package glyph

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEndOfSegment is returned by a Source when the current input segment is
// exhausted but more input may follow.
var ErrEndOfSegment = errors.New("end of input segment")

// Source yields escape-decoded, attribute-tagged characters one at a time.
// It returns io.EOF at the end of the document and ErrEndOfSegment at the end
// of an input segment. Glyphs delivered by a Source are not measured yet.
type Source interface {
	Next() (Glyph, error)
}

// ReaderSource reads characters from an io.Reader. Input is normalized to
// Unicode NFC, so that a letter followed by a combining mark arrives as a
// single glyph.
type ReaderSource struct {
	rd   *bufio.Reader
	attr Attr
}

// NewReaderSource creates a source reading from r, tagging every glyph with attr.
func NewReaderSource(r io.Reader, attr Attr) *ReaderSource {
	return &ReaderSource{
		rd:   bufio.NewReader(norm.NFC.Reader(r)),
		attr: attr,
	}
}

// SetAttr changes the attributes of glyphs read from now on.
func (src *ReaderSource) SetAttr(attr Attr) {
	src.attr = attr
}

// Next returns the next glyph. Carriage returns are dropped.
func (src *ReaderSource) Next() (Glyph, error) {
	for {
		r, _, err := src.rd.ReadRune()
		if err != nil {
			return Glyph{}, err
		}
		if r == '\r' {
			continue
		}
		return Make(r, src.attr), nil
	}
}

// StringSource creates a source reading from a string.
func StringSource(s string, attr Attr) *ReaderSource {
	return NewReaderSource(strings.NewReader(s), attr)
}

type sliceSource struct {
	glyphs []Glyph
	pos    int
}

// SliceSource creates a source delivering pre-built glyphs.
func SliceSource(glyphs []Glyph) Source {
	return &sliceSource{glyphs: glyphs}
}

func (src *sliceSource) Next() (Glyph, error) {
	if src.pos >= len(src.glyphs) {
		return Glyph{}, io.EOF
	}
	g := src.glyphs[src.pos]
	src.pos++
	return g, nil
}

type concatSource struct {
	sources []Source
}

// Concat chains sources. The end of every source but the last one is reported
// as ErrEndOfSegment, the end of the last one as io.EOF.
func Concat(sources ...Source) Source {
	return &concatSource{sources: sources}
}

func (c *concatSource) Next() (Glyph, error) {
	if len(c.sources) == 0 {
		return Glyph{}, io.EOF
	}
	g, err := c.sources[0].Next()
	if err == io.EOF || err == ErrEndOfSegment {
		c.sources = c.sources[1:]
		if len(c.sources) == 0 {
			return Glyph{}, io.EOF
		}
		return Glyph{}, ErrEndOfSegment
	}
	return g, err
}
