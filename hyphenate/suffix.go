package hyphenate

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/linefill/hyphenate/dat"
)

// SuffixFlags control how a matching suffix is treated.
type SuffixFlags uint8

const (
	// SuffixContinue re-runs suffix stripping on the stem left over.
	SuffixContinue SuffixFlags = 1 << iota
	// SuffixVowelCheck ends suffix analysis if the stem has no vowel.
	// Without it, shorter suffixes are tried instead.
	SuffixVowelCheck
	// SuffixNoHyphen forbids breaking at this suffix; shorter suffixes are tried.
	SuffixNoHyphen
)

func (f SuffixFlags) String() string {
	var sb strings.Builder
	if f&SuffixContinue != 0 {
		sb.WriteByte('c')
	}
	if f&SuffixVowelCheck != 0 {
		sb.WriteByte('v')
	}
	if f&SuffixNoHyphen != 0 {
		sb.WriteByte('n')
	}
	return sb.String()
}

// Suffix is a word ending together with its break points.
// Marks are offsets into Ending; a mark m allows a break in front of
// Ending[m]. Mark 0 breaks in front of the whole suffix.
type Suffix struct {
	Ending string
	Marks  []int
	Flags  SuffixFlags
}

func (sfx Suffix) String() string {
	var sb strings.Builder
	m := 0
	for i, r := range sfx.Ending {
		if m < len(sfx.Marks) && sfx.Marks[m] == i {
			sb.WriteByte('-')
			m++
		}
		sb.WriteRune(r)
	}
	if sfx.Flags != 0 {
		sb.WriteByte(' ')
		sb.WriteString(sfx.Flags.String())
	}
	return sb.String()
}

// SuffixReader yields suffix patterns one-by-one.
// It should return io.EOF when the stream is exhausted.
type SuffixReader interface {
	Next() (ending string, marks []int, flags SuffixFlags, err error)
}

// SuffixTable indexes suffixes by their reversed spelling, so that all
// suffixes sharing a final letter live in one branch of the trie.
type SuffixTable struct {
	suffixes []Suffix
	index    *dat.DAT
}

// compileSuffix validates a pattern and turns it into a trie key.
func compileSuffix(ending string, marks []int, flags SuffixFlags) (Suffix, []uint16, error) {
	sfx := Suffix{Ending: strings.ToLower(ending), Flags: flags}
	if sfx.Ending == "" {
		return sfx, nil, fmt.Errorf("empty suffix")
	}
	letters := []rune(sfx.Ending)
	key := make([]uint16, len(letters))
	for i, r := range letters {
		l, ok := LetterOf(r)
		if !ok {
			return sfx, nil, fmt.Errorf("suffix %q: not a letter: %q", ending, r)
		}
		key[len(letters)-1-i] = l.dense()
	}
	sfx.Marks = append([]int(nil), marks...)
	sort.Ints(sfx.Marks)
	if len(sfx.Marks) == 0 {
		sfx.Marks = []int{0}
	}
	for _, m := range sfx.Marks {
		if m < 0 || m >= len(letters) {
			return sfx, nil, fmt.Errorf("suffix %q: mark out of range: %d", ending, m)
		}
	}
	return sfx, key, nil
}

// loadSuffixes compiles all patterns of a reader. Malformed patterns are
// skipped, as they could never match.
func loadSuffixes(reader SuffixReader) (*SuffixTable, error) {
	builder := dat.NewBuilder(AlphabetSize)
	st := &SuffixTable{}
	if reader != nil {
		for {
			ending, marks, flags, err := reader.Next()
			if err != nil {
				if err == io.EOF {
					break
				}
				return nil, err
			}
			sfx, key, err := compileSuffix(ending, marks, flags)
			if err != nil {
				tracer().Errorf("skipping suffix pattern: %v", err)
				continue
			}
			if err = builder.Insert(key, len(st.suffixes)); err != nil {
				return nil, err
			}
			st.suffixes = append(st.suffixes, sfx)
		}
	}
	st.index = builder.Freeze()
	return st, nil
}

// Len returns the number of suffix patterns.
func (st *SuffixTable) Len() int {
	if st == nil {
		return 0
	}
	return len(st.suffixes)
}

// Stats reports density metrics of the suffix index.
func (st *SuffixTable) Stats() dat.Stats {
	if st == nil || st.index == nil {
		return dat.Stats{}
	}
	return st.index.Stats()
}

// Matches returns the suffixes which end stem and are shorter than stem,
// longest first.
func (st *SuffixTable) Matches(stem []Letter) []Suffix {
	if st == nil || st.index == nil || len(stem) < 2 {
		return nil
	}
	key := make([]uint16, len(stem)-1)
	for i := range key {
		key[i] = stem[len(stem)-1-i].dense()
	}
	var found []Suffix
	st.index.Walk(key, func(depth int, value int) {
		found = append(found, st.suffixes[value])
	})
	for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
		found[i], found[j] = found[j], found[i]
	}
	return found
}
