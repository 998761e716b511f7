package hytab

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/linefill/hyphenate"
)

// SuffixReader streams suffix patterns from \suffixes{...} blocks.
type SuffixReader struct {
	blocks *blockScanner
}

// NewSuffixReader creates a reader for the suffix blocks of a table file.
func NewSuffixReader(reader io.Reader) *SuffixReader {
	return &SuffixReader{
		blocks: newBlockScanner(reader, `\suffixes{`),
	}
}

// Next returns the next suffix as (ending, marks, flags).
// It returns io.EOF when exhausted.
func (r *SuffixReader) Next() (string, []int, hyphenate.SuffixFlags, error) {
	line, err := r.blocks.next()
	if err != nil {
		return "", nil, 0, err
	}
	fields := strings.Fields(line)
	if len(fields) > 2 {
		return "", nil, 0, fmt.Errorf("line %d: malformed suffix pattern %q", r.blocks.lineno, line)
	}
	ending, marks := decodeSuffix(fields[0])
	var flags hyphenate.SuffixFlags
	if len(fields) == 2 {
		for _, f := range fields[1] {
			switch f {
			case 'c':
				flags |= hyphenate.SuffixContinue
			case 'v':
				flags |= hyphenate.SuffixVowelCheck
			case 'n':
				flags |= hyphenate.SuffixNoHyphen
			default:
				return "", nil, 0, fmt.Errorf("line %d: unknown suffix flag %q", r.blocks.lineno, f)
			}
		}
	}
	return ending, marks, flags, nil
}

// decodeSuffix splits a pattern like "-i-ty" into "ity" and marks [0,1].
func decodeSuffix(pattern string) (string, []int) {
	var sb strings.Builder
	marks := make([]int, 0, 2)
	n := 0
	for _, ch := range pattern {
		if ch == '-' {
			marks = append(marks, n)
			continue
		}
		sb.WriteRune(ch)
		n++
	}
	return sb.String(), marks
}
