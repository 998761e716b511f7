/*
Package termdev is an output device for fixed-pitch terminals: a width
oracle measuring runes in terminal cells, a line writer acting as the sink
of a linefill.Formatter, and a page model supplying the page budget.

Device units are cells multiplied by a unit factor, so callers may work at a
finer resolution than one cell and still round to whole cells on output.
*/
package termdev

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/mattn/go-runewidth"
	"github.com/npillmayer/linefill/glyph"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer writes to trace with key 'linefill'
func tracer() tracing.Trace {
	return tracing.Select("linefill")
}

// Monospace measures runes in terminal cells. Wide (East Asian) runes take
// two cells, combining marks and control characters none, a backspace
// moves back one cell.
type Monospace struct {
	unit int
	cond *runewidth.Condition
}

// NewMonospace creates an oracle returning unit device units per cell. If
// eastAsian is set, runes of ambiguous width count as wide.
func NewMonospace(unit int, eastAsian bool) *Monospace {
	if unit <= 0 {
		unit = 1
	}
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Monospace{unit: unit, cond: cond}
}

// Unit is the number of device units per cell.
func (m *Monospace) Unit() int { return m.unit }

// Width returns the width of code in device units.
func (m *Monospace) Width(code rune, attr glyph.Attr) int {
	switch {
	case code == glyph.Backspace:
		return -m.unit
	case code < 0x20 || code == 0x7f:
		return 0
	}
	return m.cond.RuneWidth(code) * m.unit
}

var eaMatch = language.NewMatcher([]language.Tag{
	language.English, // The first language is used as fallback.
	language.Chinese,
	language.Japanese,
	language.Korean,
})

// UserLocale detects the locale of the user from the environment. If
// detection fails, "en-US" is assumed.
func UserLocale() language.Tag {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Errorf(err.Error())
		userLocale = "en-US"
		tracer().Infof("termdev sets default user locale %v", userLocale)
	} else {
		tracer().Debugf("termdev detected user locale %v", userLocale)
	}
	return language.Make(userLocale)
}

// IsEastAsian is true for Chinese, Japanese and Korean locales.
func IsEastAsian(tag language.Tag) bool {
	_, index, conf := eaMatch.Match(tag)
	return index > 0 && conf >= language.High
}

// MonospaceFromEnvironment creates an oracle for the terminal of the user,
// treating ambiguous runes as wide in East Asian locales.
func MonospaceFromEnvironment(unit int) *Monospace {
	return NewMonospace(unit, IsEastAsian(UserLocale()))
}
