/*
Package glyph defines the formatted characters the line composer works on,
together with the narrow contracts of its collaborators: a width oracle and
a pull-based character source.

A Glyph is a code point tagged with formatting attributes (font and size) and
its cached display width. Widths are signed: backspace-like glyphs move the
output position to the left.
*/
package glyph

import "fmt"

// Characters with a special role during line composition.
const (
	Space      rune = ' '
	Newline    rune = '\n'
	Backspace  rune = '\b'
	Hyphen     rune = '-'
	EmDash     rune = '\u2014'
	SoftHyphen rune = '\u00AD' // default optional-hyphen marker
)

// Attr packs font and size selection into a single value.
// The low byte holds the font position, the high byte the point size.
type Attr uint16

// MakeAttr creates an attribute value from a font position and a size.
func MakeAttr(font, size uint8) Attr {
	return Attr(size)<<8 | Attr(font)
}

// Font returns the font position.
func (a Attr) Font() uint8 { return uint8(a) }

// Size returns the point size.
func (a Attr) Size() uint8 { return uint8(a >> 8) }

func (a Attr) String() string {
	return fmt.Sprintf("f%d/s%d", a.Font(), a.Size())
}

// Glyph is a formatted character. Glyphs are values and never change once
// they have been measured.
type Glyph struct {
	Code  rune
	Attr  Attr
	Width int
}

// Make creates an unmeasured glyph.
func Make(r rune, attr Attr) Glyph {
	return Glyph{Code: r, Attr: attr}
}

// Measured returns a copy of g carrying the width reported by oracle.
func (g Glyph) Measured(oracle WidthOracle) Glyph {
	g.Width = oracle.Width(g.Code, g.Attr)
	return g
}

// IsSpace is true for inter-word space.
func (g Glyph) IsSpace() bool { return g.Code == Space }

// IsNewline is true for the end-of-input-line character.
func (g Glyph) IsNewline() bool { return g.Code == Newline }

// IsLetter is true for the letters of the English alphabet, upper or lower case.
func (g Glyph) IsLetter() bool { return IsLetter(g.Code) }

// IsDash is true for glyphs which may be followed by a line break without
// inserting a hyphen.
func (g Glyph) IsDash() bool { return g.Code == Hyphen || g.Code == EmDash }

// EndsSentence is true for terminal punctuation.
func (g Glyph) EndsSentence() bool {
	return g.Code == '.' || g.Code == '!' || g.Code == '?'
}

func (g Glyph) String() string {
	return fmt.Sprintf("%q(%s,w=%d)", g.Code, g.Attr, g.Width)
}

// IsLetter reports whether r is one of a–z or A–Z.
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// String returns the code points of a glyph sequence.
func String(glyphs []Glyph) string {
	runes := make([]rune, len(glyphs))
	for i, g := range glyphs {
		runes[i] = g.Code
	}
	return string(runes)
}

// TotalWidth sums the widths of a glyph sequence.
func TotalWidth(glyphs []Glyph) int {
	w := 0
	for _, g := range glyphs {
		w += g.Width
	}
	return w
}
