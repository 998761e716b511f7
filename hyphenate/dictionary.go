package hyphenate

import (
	"fmt"
	"io"

	"github.com/npillmayer/linefill/hyphenate/dat"
)

// DigramReader yields rows of digram weights one-by-one.
// It should return io.EOF when the stream is exhausted.
type DigramReader interface {
	Next() (m Matrix, row Letter, weights []int, err error)
}

// Dictionary is a loaded set of hyphenation tables.
//
// A dictionary contains:
//   - five digram weight matrices
//   - suffix patterns (compiled into a trie of reversed endings)
//   - explicit hyphenation exceptions loaded through ExceptionReader.
//
// Dictionaries are not changed by hyphenation and may be shared.
// Exceptions should be added before a dictionary is handed to engines
// running on other goroutines.
type Dictionary struct {
	digrams    [matrixCount]DigramMatrix
	suffixes   *SuffixTable
	exceptions *ExceptionList
	Identifier string // Identifies the dictionary
}

// LoadDictionary compiles digram weights and suffix patterns from streaming,
// format-agnostic sources. Either reader may be nil.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package hytab to parse concrete formats and feed this API.
func LoadDictionary(name string, digrams DigramReader, suffixes SuffixReader) (dict *Dictionary, err error) {
	dict = &Dictionary{
		exceptions: NewExceptionList(),
		Identifier: fmt.Sprintf("hyphenation tables: %s", name),
	}
	rows := 0
	if digrams != nil {
		for {
			var m Matrix
			var row Letter
			var weights []int
			m, row, weights, err = digrams.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return nil, err
			}
			if m >= matrixCount {
				return nil, fmt.Errorf("no such digram matrix: %d", m)
			}
			if err = dict.digrams[m].SetRow(row, weights); err != nil {
				return nil, fmt.Errorf("matrix %s, row %s: %w", m, row, err)
			}
			rows++
		}
	}
	if dict.suffixes, err = loadSuffixes(suffixes); err != nil {
		return nil, err
	}
	stats := dict.suffixes.Stats()
	tracer().Infof("%s: %d digram rows, %d suffixes, suffix trie used=%d total=%d fill=%.2f",
		dict.Identifier, rows, dict.suffixes.Len(), stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return dict, nil
}

// LoadExceptions loads exception entries from a streaming source.
func (dict *Dictionary) LoadExceptions(reader ExceptionReader) (err error) {
	for {
		var word string
		var positions []int
		word, positions, err = reader.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			break
		}
		dict.AddException(word, positions)
	}
	return err
}

// LoadExceptionList loads explicit exception entries from an in-memory map.
func (dict *Dictionary) LoadExceptionList(exceptions map[string][]int) {
	for word, positions := range exceptions {
		dict.AddException(word, positions)
	}
}

// AddException registers one explicit hyphenation exception.
func (dict *Dictionary) AddException(word string, positions []int) {
	if dict.exceptions == nil {
		dict.exceptions = NewExceptionList()
	}
	dict.exceptions.Add(word, positions)
}

// AddHyphenated registers exceptions spelled with hyphens, e.g. "pre-sent".
func (dict *Dictionary) AddHyphenated(spellings ...string) {
	for _, s := range spellings {
		word, positions := ParseHyphenated(s)
		dict.AddException(word, positions)
	}
}

// Weight returns the weight of letter pair (a, b) in matrix m.
func (dict *Dictionary) Weight(m Matrix, a, b Letter) uint8 {
	if m >= matrixCount {
		return 0
	}
	return dict.digrams[m].Weight(a, b)
}

// Suffixes returns the suffix table.
func (dict *Dictionary) Suffixes() *SuffixTable {
	return dict.suffixes
}

// Exceptions returns the exception list.
func (dict *Dictionary) Exceptions() *ExceptionList {
	return dict.exceptions
}

// Stats summarizes the contents of a dictionary.
type Stats struct {
	Suffixes   int
	Exceptions int
	SuffixTrie dat.Stats
}

// Stats returns table sizes.
func (dict *Dictionary) Stats() Stats {
	return Stats{
		Suffixes:   dict.suffixes.Len(),
		Exceptions: dict.exceptions.Len(),
		SuffixTrie: dict.suffixes.Stats(),
	}
}

func spell(letters []Letter) string {
	runes := make([]rune, len(letters))
	for i, l := range letters {
		runes[i] = l.Rune()
	}
	return string(runes)
}
