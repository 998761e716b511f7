package hytab

import (
	"io"
	"strings"

	"github.com/npillmayer/linefill/hyphenate"
)

// ExceptionReader streams hyphenation exceptions from \hyphenation{...} blocks.
// Words are separated by white space and spelled with hyphens at their
// break points.
type ExceptionReader struct {
	blocks  *blockScanner
	pending []string
}

// NewExceptionReader creates a reader for the exception blocks of a table file.
func NewExceptionReader(reader io.Reader) *ExceptionReader {
	return &ExceptionReader{
		blocks: newBlockScanner(reader, `\hyphenation{`),
	}
}

// Next returns the next exception as (word, positions).
// It returns io.EOF when exhausted.
func (r *ExceptionReader) Next() (string, []int, error) {
	for len(r.pending) == 0 {
		line, err := r.blocks.next()
		if err != nil {
			return "", nil, err
		}
		line, closed := strings.CutSuffix(line, "}")
		if closed {
			r.blocks.inBlock = false
		}
		r.pending = strings.Fields(line)
	}
	spelling := r.pending[0]
	r.pending = r.pending[1:]
	word, positions := hyphenate.ParseHyphenated(spelling)
	return word, positions, nil
}
