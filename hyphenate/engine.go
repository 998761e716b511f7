package hyphenate

import (
	"strings"
)

// DefaultThreshold is the digram score a position has to exceed.
const DefaultThreshold = 160

// minLetters is the minimum length of a word considered for hyphenation.
const minLetters = 5

// Engine finds hyphenation points using a dictionary.
type Engine struct {
	dict      *Dictionary
	local     *ExceptionList // exceptions added at run time
	threshold int
}

// NewEngine creates an engine working on dict with the default threshold.
func NewEngine(dict *Dictionary) *Engine {
	return &Engine{
		dict:      dict,
		local:     NewExceptionList(),
		threshold: DefaultThreshold,
	}
}

// AddException registers exceptions spelled with hyphens, e.g. "pre-sent",
// for this engine only. They take precedence over the dictionary's list.
func (e *Engine) AddException(spellings ...string) {
	for _, s := range spellings {
		word, positions := ParseHyphenated(s)
		e.local.Add(word, positions)
	}
}

// Exceptions returns the words added with AddException.
func (e *Engine) Exceptions() *ExceptionList { return e.local }

func (e *Engine) exceptionBreaks(letters []Letter, hyend int) ([]int, bool) {
	if offsets, ok := e.local.breaks(letters, hyend); ok {
		return offsets, true
	}
	return e.dict.exceptions.breaks(letters, hyend)
}

// SetThreshold changes the digram threshold. Values < 0 restore the default.
func (e *Engine) SetThreshold(threshold int) {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	e.threshold = threshold
}

// Threshold returns the digram threshold.
func (e *Engine) Threshold() int { return e.threshold }

// Dictionary returns the dictionary of the engine.
func (e *Engine) Dictionary() *Dictionary { return e.dict }

// analysis is the work area for one word. letters holds the lower case
// letters of the word's alphabetic core, which starts at rune offset start.
type analysis struct {
	letters []Letter
	start   int
	hyend   int // last letter still subject to analysis
}

// newAnalysis locates the alphabetic core of word, skipping leading and
// trailing punctuation. Words with letters behind trailing punctuation or
// with fewer than five letters are not analysed.
func newAnalysis(word []rune) (*analysis, bool) {
	i := 0
	for i < len(word) && !isLetter(word[i]) {
		i++
	}
	if i == len(word) {
		return nil, false
	}
	a := &analysis{start: i}
	for ; i < len(word) && isLetter(word[i]); i++ {
		l, _ := LetterOf(word[i])
		a.letters = append(a.letters, l)
	}
	for ; i < len(word); i++ {
		if isLetter(word[i]) {
			return nil, false
		}
	}
	if len(a.letters) < minLetters {
		return nil, false
	}
	a.hyend = len(a.letters) - 1
	return a, true
}

func isLetter(r rune) bool {
	_, ok := LetterOf(r)
	return ok
}

// FindBreaks returns the candidate break offsets of word. Calling it again
// for the same word yields the same set.
func (e *Engine) FindBreaks(word []rune) *BreakSet {
	bs := NewBreakSet()
	if e == nil || e.dict == nil {
		return bs
	}
	a, ok := newAnalysis(word)
	if !ok {
		return bs
	}
	bs.analysed = true
	bs.start, bs.end = a.start, a.start+len(a.letters)-1
	bs.tried |= ExceptionBreak
	if offsets, found := e.exceptionBreaks(a.letters, a.hyend); found {
		a.addAll(bs, offsets, ExceptionBreak)
		tracer().Debugf("hyphenate: %q is an exception: %v", string(word), bs)
		return bs
	}
	bs.tried |= SuffixBreak
	if e.stripSuffixes(a, bs) {
		tracer().Debugf("hyphenate: %q has an exception stem: %v", string(word), bs)
		return bs
	}
	bs.tried |= DigramBreak
	e.scoreDigrams(a, bs)
	tracer().Debugf("hyphenate: %q => %v", string(word), bs)
	return bs
}

func (a *analysis) addAll(bs *BreakSet, offsets []int, src BreakSource) {
	for _, off := range offsets {
		if off > 0 && off < len(a.letters) {
			bs.Add(a.start+off, src)
		}
	}
}

// stripSuffixes removes suffixes from the end of the word, marking their
// break points. It returns true if analysis is complete because the remaining
// stem is an exception word.
func (e *Engine) stripSuffixes(a *analysis, bs *BreakSet) bool {
	for {
		stem := a.letters[:a.hyend+1]
		var chosen *Suffix
		at := 0
		for _, sfx := range e.dict.suffixes.Matches(stem) {
			if sfx.Flags&SuffixNoHyphen != 0 {
				continue
			}
			at = len(stem) - len(sfx.Ending)
			if hasVowel(stem[:at+sfx.Marks[0]]) {
				chosen = &sfx
				break
			}
			if sfx.Flags&SuffixVowelCheck != 0 {
				return false
			}
		}
		if chosen == nil {
			return false
		}
		for _, m := range chosen.Marks {
			bs.Add(a.start+at+m, SuffixBreak)
		}
		a.hyend = at + chosen.Marks[0] - 1
		if chosen.Flags&SuffixContinue == 0 {
			return false
		}
		if offsets, found := e.exceptionBreaks(a.letters, a.hyend); found {
			a.addAll(bs, offsets, ExceptionBreak)
			return true
		}
	}
}

func hasVowel(letters []Letter) bool {
	for _, l := range letters {
		if l.IsVowel() {
			return true
		}
	}
	return false
}

// lastVowelBefore returns the index of the last vowel in letters[:i].
func lastVowelBefore(letters []Letter, i int) (int, bool) {
	for i--; i >= 0; i-- {
		if letters[i].IsVowel() {
			return i, true
		}
	}
	return 0, false
}

// scoreDigrams walks the stem from its end towards the front, one
// vowel-to-vowel segment at a time, and accepts the best scoring position of
// a segment if it exceeds the threshold.
func (e *Engine) scoreDigrams(a *analysis, bs *BreakSet) {
	last := len(a.letters) - 1
	hy := a.hyend
	for {
		v1, ok := lastVowelBefore(a.letters, hy+1)
		if !ok {
			return
		}
		hy = v1
		v0, ok := lastVowelBefore(a.letters, hy)
		if !ok {
			return
		}
		maxval, maxpos := 0, 0
		for i := v0; i < hy && i < last-1; i++ {
			if val := e.score(a.letters, i); val > maxval {
				maxval, maxpos = val, i+1
			}
		}
		hy = v0
		if maxval > e.threshold {
			bs.Add(a.start+maxpos, DigramBreak)
		}
	}
}

// score rates a break in front of letters[i+1].
func (e *Engine) score(letters []Letter, i int) int {
	var lead uint8
	switch i {
	case 0:
		lead = e.dict.Weight(BXH, 0, letters[0])
	case 1:
		lead = e.dict.Weight(BXXH, letters[0], letters[1])
	default:
		lead = e.dict.Weight(XXH, letters[i-1], letters[i])
	}
	return int(lead) * int(e.dict.Weight(XHX, letters[i], letters[i+1])) *
		int(e.dict.Weight(HXX, letters[i+1], letters[i+2]))
}

// HyphenationString returns word with hyphens inserted at break points.
// Example:
//
//	"hyphenation" => "hy-phen-ation".
func (e *Engine) HyphenationString(word string) string {
	return strings.Join(e.Hyphenate(word), "-")
}

// Hyphenate splits word at its break points.
//
// Example:
//
//	"table" => [ "ta", "ble" ].
func (e *Engine) Hyphenate(word string) []string {
	runes := []rune(word)
	return splitAtOffsets(runes, e.FindBreaks(runes).Offsets())
}

// Helper: split a rune slice at ascending offsets.
func splitAtOffsets(runes []rune, offsets []int) []string {
	pp := make([]string, 0, len(offsets)+1)
	prev := 0
	for _, off := range offsets {
		if off <= prev || off >= len(runes) {
			continue
		}
		pp = append(pp, string(runes[prev:off]))
		prev = off
	}
	pp = append(pp, string(runes[prev:]))
	return pp
}
