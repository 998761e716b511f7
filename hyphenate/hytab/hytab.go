/*
Package hytab reads hyphenation tables from a plain text format and provides
the default English tables.

A table file consists of blocks:

	\message{english}          % identifier
	\digrams{xxh               % one block per digram matrix
	a 05686b3232a66a576683c80f86
	 ...
	}
	\suffixes{                 % suffix patterns
	-ment c
	-i-ty c
	 ...
	}
	\hyphenation{              % exception words
	ta-ble pre-sent
	}

'%' starts a comment. Digram rows consist of the leading letter and up to 26
hex digits, one weight per following letter. In suffix patterns hyphens mark
break points; a pattern without hyphens breaks in front of the suffix. Flags:
'c' continues stripping on the stem, 'v' ends suffix analysis if the stem has
no vowel, 'n' forbids breaking at the suffix.
*/
package hytab

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/linefill/hyphenate"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'linefill.hyphenate'
func tracer() tracing.Trace {
	return tracing.Select("linefill.hyphenate")
}

//go:embed english.tab
var englishTables []byte

var (
	defaultOnce sync.Once
	defaultDict *hyphenate.Dictionary
	defaultErr  error
)

// Default returns the English tables. They are parsed once; all callers
// share the same dictionary, which must not be modified.
func Default() (*hyphenate.Dictionary, error) {
	defaultOnce.Do(func() {
		defaultDict, defaultErr = LoadDictionary("english", bytes.NewReader(englishTables))
		if defaultErr != nil {
			tracer().Errorf("cannot load default hyphenation tables: %v", defaultErr)
		}
	})
	return defaultDict, defaultErr
}

// LoadDictionary loads digram weights, suffix patterns and exceptions from
// a single table file.
//
// Example usage:
//
//	f, _ := os.Open("path/to/tables/english.tab")
//	defer f.Close()
//
//	dict, err := hytab.LoadDictionary("english", f)
func LoadDictionary(name string, reader io.Reader) (*hyphenate.Dictionary, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	digrams := NewDigramReader(bytes.NewReader(data))
	dict, err := hyphenate.LoadDictionary(name, digrams, NewSuffixReader(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	if id := digrams.Identifier(); id != "" {
		dict.Identifier = id
	}
	err = dict.LoadExceptions(NewExceptionReader(bytes.NewReader(data)))
	return dict, err
}

// blockScanner iterates over the lines of one kind of block, with comments
// removed. Lines outside of such blocks are skipped.
type blockScanner struct {
	scanner *bufio.Scanner
	opener  string
	inBlock bool
	lineno  int
	onOpen  func(arg string) error
	onLine  func(line string) // called for every line outside of blocks
}

func newBlockScanner(reader io.Reader, opener string) *blockScanner {
	return &blockScanner{
		scanner: bufio.NewScanner(reader),
		opener:  opener,
	}
}

// next returns the next non-empty line inside a block.
func (bs *blockScanner) next() (string, error) {
	for bs.scanner.Scan() {
		bs.lineno++
		line := stripComment(bs.scanner.Text())
		if line == "" {
			continue
		}
		if !bs.inBlock {
			if strings.HasPrefix(line, bs.opener) {
				bs.inBlock = true
				if bs.onOpen != nil {
					if err := bs.onOpen(strings.TrimSpace(line[len(bs.opener):])); err != nil {
						return "", err
					}
				}
			} else if bs.onLine != nil {
				bs.onLine(line)
			}
			continue
		}
		if strings.HasPrefix(line, "}") {
			bs.inBlock = false
			continue
		}
		return line, nil
	}
	if err := bs.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
