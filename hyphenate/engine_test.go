package hyphenate

import (
	"io"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type sliceDigramReader struct {
	weight int
	row    int
}

// Next fills every row of every matrix with the same weight.
func (r *sliceDigramReader) Next() (Matrix, Letter, []int, error) {
	if r.row >= int(matrixCount)*AlphabetSize {
		return 0, 0, nil, io.EOF
	}
	m, row := Matrix(r.row/AlphabetSize), Letter(r.row%AlphabetSize)
	r.row++
	weights := make([]int, AlphabetSize)
	for i := range weights {
		weights[i] = r.weight
	}
	return m, row, weights, nil
}

type sliceSuffixReader struct {
	entries []Suffix
	index   int
}

func (r *sliceSuffixReader) Next() (string, []int, SuffixFlags, error) {
	if r.index >= len(r.entries) {
		return "", nil, 0, io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.Ending, entry.Marks, entry.Flags, nil
}

type sliceExceptionReader struct {
	entries []string
	index   int
}

func (r *sliceExceptionReader) Next() (string, []int, error) {
	if r.index >= len(r.entries) {
		return "", nil, io.EOF
	}
	word, positions := ParseHyphenated(r.entries[r.index])
	r.index++
	return word, positions, nil
}

func loadTestDictionary(t *testing.T, weight int, suffixes []Suffix, exceptions ...string) *Dictionary {
	t.Helper()
	dict, err := LoadDictionary("test", &sliceDigramReader{weight: weight}, &sliceSuffixReader{entries: suffixes})
	if err != nil {
		t.Fatal(err)
	}
	if err = dict.LoadExceptions(&sliceExceptionReader{entries: exceptions}); err != nil {
		t.Fatal(err)
	}
	return dict
}

func TestShortAndNonAlphabeticWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linefill.hyphenate")
	defer teardown()
	//
	engine := NewEngine(loadTestDictionary(t, 15, nil))
	for _, word := range []string{"a", "abcd", "ab1cdef", "...", ""} {
		bs := engine.FindBreaks([]rune(word))
		if !bs.IsEmpty() {
			t.Fatalf("expected no breaks for %q, got %v", word, bs)
		}
		if bs.Tried(ExceptionBreak) {
			t.Fatalf("expected %q not to be analysed", word)
		}
	}
}

func TestDigramSegments(t *testing.T) {
	engine := NewEngine(loadTestDictionary(t, 15, nil))
	tests := []struct {
		word string
		want []int
	}{
		{"banana", []int{2, 4}},
		{"'banana'", []int{3, 5}},
		{"strength", nil}, // one vowel only
	}
	for _, tt := range tests {
		bs := engine.FindBreaks([]rune(tt.word))
		if got := bs.Offsets(); !reflect.DeepEqual(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
			t.Fatalf("breaks of %q: got %v, want %v", tt.word, got, tt.want)
		}
	}
	engine.SetThreshold(15 * 15 * 15)
	if bs := engine.FindBreaks([]rune("banana")); !bs.IsEmpty() {
		t.Fatalf("expected score to be compared with '>' against threshold, got %v", bs)
	}
}

func TestSuffixVowelPrecondition(t *testing.T) {
	suffixes := []Suffix{
		{Ending: "ing", Flags: SuffixContinue},
	}
	engine := NewEngine(loadTestDictionary(t, 0, suffixes))
	if bs := engine.FindBreaks([]rune("string")); !bs.IsEmpty() {
		t.Fatalf("'string' must not be split behind a vowel-less stem, got %v", bs)
	}
	bs := engine.FindBreaks([]rune("printing"))
	if !reflect.DeepEqual(bs.Offsets(), []int{5}) {
		t.Fatalf("'printing': got %v, want [5]", bs.Offsets())
	}
	for _, off := range bs.Offsets() {
		if !hasVowel(letters(t, "printing")[:off]) {
			t.Fatalf("break at %d leaves a vowel-less stem", off)
		}
	}
}

func TestSuffixVowelCheckStops(t *testing.T) {
	lenient := []Suffix{{Ending: "ating"}, {Ending: "ing"}}
	engine := NewEngine(loadTestDictionary(t, 0, lenient))
	if got := engine.FindBreaks([]rune("bbating")).Offsets(); !reflect.DeepEqual(got, []int{4}) {
		t.Fatalf("lenient suffixes: got %v, want [4]", got)
	}
	strict := []Suffix{{Ending: "ating", Flags: SuffixVowelCheck}, {Ending: "ing"}}
	engine = NewEngine(loadTestDictionary(t, 0, strict))
	if bs := engine.FindBreaks([]rune("bbating")); !bs.IsEmpty() {
		t.Fatalf("strict suffix: expected no breaks, got %v", bs)
	}
}

func TestSuffixNoHyphen(t *testing.T) {
	suffixes := []Suffix{
		{Ending: "ed", Flags: SuffixNoHyphen},
		{Ending: "d"},
	}
	engine := NewEngine(loadTestDictionary(t, 0, suffixes))
	if got := engine.FindBreaks([]rune("printed")).Offsets(); !reflect.DeepEqual(got, []int{6}) {
		t.Fatalf("'printed': got %v, want [6]", got)
	}
}

func TestSuffixContinuesIntoExceptionStem(t *testing.T) {
	suffixes := []Suffix{
		{Ending: "ness", Flags: SuffixContinue},
	}
	engine := NewEngine(loadTestDictionary(t, 15, suffixes, "hap-pi"))
	bs := engine.FindBreaks([]rune("happiness"))
	if !reflect.DeepEqual(bs.Offsets(), []int{3, 5}) {
		t.Fatalf("'happiness': got %v, want [3 5]", bs.Offsets())
	}
	if bs.Tried(DigramBreak) {
		t.Fatalf("digrams must not be scored once an exception stem is found")
	}
	if src, _ := bs.Source(3); src != ExceptionBreak {
		t.Fatalf("source of offset 3: got %s", src)
	}
	if src, _ := bs.Source(5); src != SuffixBreak {
		t.Fatalf("source of offset 5: got %s", src)
	}
}

func TestEngineExceptionsOverrideDictionary(t *testing.T) {
	engine := NewEngine(loadTestDictionary(t, 15, nil, "ba-nana"))
	if got := engine.HyphenationString("banana"); got != "ba-nana" {
		t.Fatalf("dictionary exception: got %q", got)
	}
	engine.AddException("ban-ana")
	if got := engine.HyphenationString("Bananas"); got != "Ban-anas" {
		t.Fatalf("engine exception: got %q", got)
	}
	if engine.Exceptions().Len() != 1 || engine.Dictionary().Exceptions().Len() != 1 {
		t.Fatalf("expected exceptions to be kept apart")
	}
}

func TestRedefinedExceptionKeepsOthers(t *testing.T) {
	engine := NewEngine(loadTestDictionary(t, 15, nil))
	engine.AddException("pre-sent")
	engine.AddException("ta-ble")
	engine.AddException("tab-le")
	if got := engine.HyphenationString("table"); got != "tab-le" {
		t.Fatalf("redefined exception: got %q, want %q", got, "tab-le")
	}
	bs := engine.FindBreaks([]rune("present"))
	if !reflect.DeepEqual(bs.Offsets(), []int{3}) {
		t.Fatalf("breaks of 'present': got %v, want [3]", bs.Offsets())
	}
	if src, _ := bs.Source(3); src != ExceptionBreak {
		t.Fatalf("source of offset 3: got %s, want exception", src)
	}
	if n := engine.Exceptions().Len(); n != 2 {
		t.Fatalf("exception count: got %d, want 2", n)
	}
	if words := engine.Exceptions().Words(""); !reflect.DeepEqual(words, []string{"present", "table"}) {
		t.Fatalf("exception words: got %v", words)
	}
}

func TestFindBreaksIsIdempotent(t *testing.T) {
	engine := NewEngine(loadTestDictionary(t, 15, []Suffix{{Ending: "ing", Flags: SuffixContinue}}))
	word := []rune("bananaing")
	first := engine.FindBreaks(word)
	second := engine.FindBreaks(word)
	if !first.Equal(second) {
		t.Fatalf("break sets differ: %v vs %v", first, second)
	}
}

func letters(t *testing.T, word string) []Letter {
	t.Helper()
	ll := make([]Letter, 0, len(word))
	for _, r := range word {
		l, ok := LetterOf(r)
		if !ok {
			t.Fatalf("not a letter: %q", r)
		}
		ll = append(ll, l)
	}
	return ll
}
