package hyphenate

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// BreakSource tells which strategy contributed a break candidate.
type BreakSource uint8

const (
	ManualBreak BreakSource = 1 << iota
	ExceptionBreak
	SuffixBreak
	DigramBreak
)

func (src BreakSource) String() string {
	switch src {
	case ManualBreak:
		return "manual"
	case ExceptionBreak:
		return "exception"
	case SuffixBreak:
		return "suffix"
	case DigramBreak:
		return "digram"
	}
	return fmt.Sprintf("source(%d)", uint8(src))
}

// BreakSet is an ordered set of candidate break offsets of a word. An offset
// i allows a break in front of rune i. Every offset is tagged with the
// strategy which found it.
type BreakSet struct {
	offsets    *treeset.Set
	sources    map[int]BreakSource
	tried      BreakSource // strategies consulted
	start, end int         // letters analysed, if analysed
	analysed   bool
}

// NewBreakSet creates an empty break set.
func NewBreakSet() *BreakSet {
	return &BreakSet{
		offsets: treeset.NewWithIntComparator(),
		sources: make(map[int]BreakSource),
	}
}

// Add inserts a candidate. The first source recorded for an offset is kept.
func (bs *BreakSet) Add(offset int, src BreakSource) {
	if _, ok := bs.sources[offset]; ok {
		return
	}
	bs.offsets.Add(offset)
	bs.sources[offset] = src
}

// Contains is true if offset is a candidate.
func (bs *BreakSet) Contains(offset int) bool {
	if bs == nil {
		return false
	}
	return bs.offsets.Contains(offset)
}

// Source returns the strategy which found offset.
func (bs *BreakSet) Source(offset int) (BreakSource, bool) {
	if bs == nil {
		return 0, false
	}
	src, ok := bs.sources[offset]
	return src, ok
}

// Size returns the number of candidates.
func (bs *BreakSet) Size() int {
	if bs == nil {
		return 0
	}
	return bs.offsets.Size()
}

// IsEmpty is true if there are no candidates.
func (bs *BreakSet) IsEmpty() bool {
	return bs.Size() == 0
}

// Offsets returns the candidates in ascending order.
func (bs *BreakSet) Offsets() []int {
	if bs == nil {
		return nil
	}
	values := bs.offsets.Values()
	offsets := make([]int, len(values))
	for i, v := range values {
		offsets[i] = v.(int)
	}
	return offsets
}

// Tried is true if strategy src has been consulted while analysing the word.
func (bs *BreakSet) Tried(src BreakSource) bool {
	return bs != nil && bs.tried&src != 0
}

// Letters returns the range [start, end] of the letters which took part in
// automatic analysis. ok is false if no analysis took place.
func (bs *BreakSet) Letters() (start, end int, ok bool) {
	if bs == nil || !bs.analysed {
		return 0, 0, false
	}
	return bs.start, bs.end, true
}

// Equal compares offsets and sources of two break sets.
func (bs *BreakSet) Equal(other *BreakSet) bool {
	if bs.Size() != other.Size() {
		return false
	}
	for _, off := range bs.Offsets() {
		s1, _ := bs.Source(off)
		s2, ok := other.Source(off)
		if !ok || s1 != s2 {
			return false
		}
	}
	return true
}

// Cut returns the candidates behind offset at, re-based to at. Analysis
// bounds are re-based as well; the strategies tried are kept.
func (bs *BreakSet) Cut(at int) *BreakSet {
	cut := NewBreakSet()
	if bs == nil {
		return cut
	}
	for _, off := range bs.Offsets() {
		if off > at {
			cut.Add(off-at, bs.sources[off])
		}
	}
	cut.tried = bs.tried
	cut.analysed = bs.analysed
	cut.start, cut.end = bs.start-at, bs.end-at
	return cut
}

func (bs *BreakSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, off := range bs.Offsets() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%s", off, bs.sources[off])
	}
	sb.WriteByte('}')
	return sb.String()
}
