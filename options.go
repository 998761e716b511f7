package linefill

import (
	"fmt"
	"strings"

	"github.com/npillmayer/linefill/glyph"
	"github.com/npillmayer/linefill/hyphenate"
)

// AdjustMode selects how the leftover width of a line is used.
type AdjustMode uint8

const (
	AdjustBoth   AdjustMode = iota // stretch inter-word gaps to both margins
	AdjustLeft                     // ragged right
	AdjustCenter                   // center the line
	AdjustRight                    // flush right
)

func (m AdjustMode) String() string {
	switch m {
	case AdjustBoth:
		return "b"
	case AdjustLeft:
		return "l"
	case AdjustCenter:
		return "c"
	case AdjustRight:
		return "r"
	}
	return fmt.Sprintf("adjust(%d)", uint8(m))
}

// ParseAdjustMode reads the single-letter names used by the .ad request.
// "n" is accepted as a synonym for "b".
func ParseAdjustMode(s string) (AdjustMode, error) {
	switch strings.ToLower(s) {
	case "b", "n", "":
		return AdjustBoth, nil
	case "l":
		return AdjustLeft, nil
	case "c":
		return AdjustCenter, nil
	case "r":
		return AdjustRight, nil
	}
	return AdjustBoth, fmt.Errorf("unknown adjust mode %q", s)
}

// HyphenMode holds the hyphenation flags of the .hy request.
type HyphenMode uint8

const (
	HyphenOn          HyphenMode = 1 // automatic hyphenation enabled
	HyphenNotPageEnd  HyphenMode = 2 // not on the last line of a page
	HyphenNotLastTwo  HyphenMode = 4 // never leave just two letters behind a break
	HyphenNotFirstTwo HyphenMode = 8 // never break after the first two letters
)

// Enabled is true if automatic hyphenation is switched on.
func (m HyphenMode) Enabled() bool { return m&HyphenOn != 0 }

// Defaults.
const (
	DefaultLineLength   = 65
	DefaultWordCapacity = 170
	DefaultLineCapacity = 680
)

type options struct {
	lineLength   int
	indent       int
	fill         bool
	adjust       AdjustMode
	adjustOff    bool
	hyphen       HyphenMode
	threshold    int
	ohc          rune
	wordCapacity int
	lineCapacity int
	quantum      int
	lineSpacing  int
	budget       PageBudget
	oracle       glyph.WidthOracle
	dict         *hyphenate.Dictionary
	reporter     OverflowReporter
}

func defaultOptions() options {
	return options{
		lineLength:   DefaultLineLength,
		fill:         true,
		adjust:       AdjustBoth,
		hyphen:       HyphenOn,
		threshold:    hyphenate.DefaultThreshold,
		ohc:          glyph.SoftHyphen,
		wordCapacity: DefaultWordCapacity,
		lineCapacity: DefaultLineCapacity,
		quantum:      1,
		lineSpacing:  1,
		oracle:       glyph.Fixed(1),
		reporter:     traceReporter{},
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a Formatter or one of its parts.
type Option func(*options)

// WithLineLength sets the line length in device units.
func WithLineLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.lineLength = n
		}
	}
}

// WithIndent sets the indent in device units.
func WithIndent(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.indent = n
		}
	}
}

// WithFill switches filling on or off. Unfilled input lines are output as
// they are.
func WithFill(on bool) Option {
	return func(o *options) { o.fill = on }
}

// WithAdjust sets the adjust mode and switches adjusting on.
func WithAdjust(mode AdjustMode) Option {
	return func(o *options) {
		o.adjust = mode
		o.adjustOff = false
	}
}

// WithoutAdjust switches adjusting off. Lines are output ragged right.
func WithoutAdjust() Option {
	return func(o *options) { o.adjustOff = true }
}

// WithHyphenation sets the hyphenation mode. Zero switches automatic
// hyphenation off; hand-placed optional hyphens are still honoured.
func WithHyphenation(mode HyphenMode) Option {
	return func(o *options) { o.hyphen = mode }
}

// WithThreshold sets the digram score a break position has to exceed.
func WithThreshold(t int) Option {
	return func(o *options) { o.threshold = t }
}

// WithOptionalHyphen sets the character marking a hand-placed break
// candidate. It defaults to the Unicode soft hyphen.
func WithOptionalHyphen(r rune) Option {
	return func(o *options) { o.ohc = r }
}

// WithWordCapacity limits the number of glyphs collected for one word,
// inter-word space included.
func WithWordCapacity(n int) Option {
	return func(o *options) {
		if n > 2 {
			o.wordCapacity = n
		}
	}
}

// WithLineCapacity limits the number of glyphs stored for one line.
func WithLineCapacity(n int) Option {
	return func(o *options) {
		if n > 2 {
			o.lineCapacity = n
		}
	}
}

// WithAdjustQuantum sets the device resolution used when spreading
// leftover width. Gap extras are multiples of q.
func WithAdjustQuantum(q int) Option {
	return func(o *options) {
		if q > 0 {
			o.quantum = q
		}
	}
}

// WithPageBudget supplies the vertical space left on the page, needed for
// HyphenNotPageEnd. lineSpacing is the budget one output line consumes.
func WithPageBudget(budget PageBudget, lineSpacing int) Option {
	return func(o *options) {
		o.budget = budget
		if lineSpacing > 0 {
			o.lineSpacing = lineSpacing
		}
	}
}

// WithWidths sets the width oracle. The default is glyph.Fixed(1).
func WithWidths(oracle glyph.WidthOracle) Option {
	return func(o *options) {
		if oracle != nil {
			o.oracle = oracle
		}
	}
}

// WithDictionary sets the hyphenation dictionary. Without one the built-in
// English tables of package hytab are used.
func WithDictionary(dict *hyphenate.Dictionary) Option {
	return func(o *options) { o.dict = dict }
}

// WithOverflowReporter receives word and line overflow diagnostics. The
// default reporter writes them to the 'linefill' tracer.
func WithOverflowReporter(r OverflowReporter) Option {
	return func(o *options) {
		if r != nil {
			o.reporter = r
		}
	}
}
