package hytab

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/linefill/hyphenate"
)

// DigramReader streams rows of digram weights from \digrams{...} blocks.
type DigramReader struct {
	blocks     *blockScanner
	identifier string
	matrix     hyphenate.Matrix
	weights    []int
}

// NewDigramReader creates a reader for the digram blocks of a table file.
func NewDigramReader(reader io.Reader) *DigramReader {
	r := &DigramReader{
		blocks:  newBlockScanner(reader, `\digrams{`),
		weights: make([]int, 0, hyphenate.AlphabetSize),
	}
	r.blocks.onOpen = func(name string) error {
		m, ok := hyphenate.MatrixByName(name)
		if !ok {
			return fmt.Errorf("line %d: unknown digram matrix %q", r.blocks.lineno, name)
		}
		r.matrix = m
		return nil
	}
	r.blocks.onLine = func(line string) {
		if strings.HasPrefix(line, `\message{`) && strings.HasSuffix(line, "}") {
			r.identifier = line[9 : len(line)-1]
		}
	}
	return r
}

// Identifier returns the text of the \message{...} line, once it has been read.
func (r *DigramReader) Identifier() string {
	return r.identifier
}

// Next returns the next row as (matrix, letter, weights).
// It returns io.EOF when exhausted.
// The returned slice is reused by subsequent calls.
func (r *DigramReader) Next() (hyphenate.Matrix, hyphenate.Letter, []int, error) {
	line, err := r.blocks.next()
	if err != nil {
		return 0, 0, nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 || len([]rune(fields[0])) != 1 {
		return 0, 0, nil, fmt.Errorf("line %d: malformed digram row %q", r.blocks.lineno, line)
	}
	row, ok := hyphenate.LetterOf([]rune(fields[0])[0])
	if !ok {
		return 0, 0, nil, fmt.Errorf("line %d: row is not a letter: %q", r.blocks.lineno, fields[0])
	}
	if len(fields[1]) > hyphenate.AlphabetSize {
		return 0, 0, nil, fmt.Errorf("line %d: too many weights in row %q", r.blocks.lineno, fields[0])
	}
	r.weights = r.weights[:0]
	for _, ch := range fields[1] {
		w, err := strconv.ParseUint(string(ch), 16, 8)
		if err != nil {
			return 0, 0, nil, fmt.Errorf("line %d: %w", r.blocks.lineno, err)
		}
		r.weights = append(r.weights, int(w))
	}
	return r.matrix, row, r.weights, nil
}
