/*
Package linefill composes formatted characters into output lines, the way
the classic troff/nroff formatters fill and adjust text.

Input arrives as a stream of glyphs from a glyph.Source. A WordAccumulator
groups the glyphs into words together with the inter-word space in front of
them. A LineFitter places words onto the current line; when a word does not
fit it backtracks to a hyphenation candidate (found by package hyphenate or
marked by hand with an optional-hyphen character) and inserts a hyphen, or
defers the word to the next line. Full lines are handed to a Justifier which
spreads the leftover width over the inter-word gaps, alternating the side
that receives the odd units from line to line.

The Formatter coordinates these parts. It is driven step by step or with
Run, and delivers finished lines to a Sink.

	f, err := linefill.NewFormatter(glyph.StringSource(text, 0), sink,
	    linefill.WithLineLength(65))
	...
	err = f.Run(ctx)

Further Reading

	J. F. Ossanna, B. W. Kernighan: Troff User's Manual, CSTR #54
	https://www.tuhs.org/   (V7 Unix sources)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package linefill

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linefill'
func tracer() tracing.Trace {
	return tracing.Select("linefill")
}
