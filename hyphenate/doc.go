/*
Package hyphenate finds hyphenation points in English words the way the
classic troff formatter does.

Three strategies are tried in order, the first one producing an answer wins:

  - an exception list of words with explicit break points,
  - suffix stripping driven by a table of English word endings,
  - digram statistics: five matrices of letter-pair weights which score every
    position between two vowels; the best position of each vowel-to-vowel
    segment is accepted if its score exceeds a threshold.

Tables are collected in a Dictionary. Dictionaries are filled from streaming
readers (see package hytab for the text format) and are read-only once
loaded, so one dictionary may be shared by any number of engines.

Further Reading

	J. F. Ossanna, B. W. Kernighan: Troff User's Manual, CSTR #54
	https://www.tuhs.org/   (V7 Unix sources)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package hyphenate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linefill.hyphenate'
func tracer() tracing.Trace {
	return tracing.Select("linefill.hyphenate")
}
