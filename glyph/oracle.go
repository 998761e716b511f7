package glyph

// WidthOracle supplies the display width of a formatted character in device
// units. Implementations must be deterministic for a given character and
// attribute.
type WidthOracle interface {
	Width(code rune, attr Attr) int
}

// WidthFunc adapts a function to the WidthOracle interface.
type WidthFunc func(code rune, attr Attr) int

// Width calls f(code, attr).
func (f WidthFunc) Width(code rune, attr Attr) int {
	return f(code, attr)
}

// Fixed is a width oracle for fixed-pitch devices: every printable character
// is one unit wide, a backspace moves back one unit, and control characters
// have no width. The unit is the value of Fixed itself.
type Fixed int

// Width returns the fixed width for code.
func (unit Fixed) Width(code rune, attr Attr) int {
	switch {
	case code == Backspace:
		return -int(unit)
	case code < 0x20 || code == 0x7f:
		return 0
	}
	return int(unit)
}
