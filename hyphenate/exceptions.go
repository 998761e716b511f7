package hyphenate

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
)

// ExceptionReader yields hyphenation exceptions one-by-one.
// It should return io.EOF when the stream is exhausted.
//
// positions has one entry per rune of word; an odd entry at index i allows a
// break in front of rune i (e.g., "ta-ble" => [0,0,1,0,0]).
type ExceptionReader interface {
	Next() (word string, positions []int, err error)
}

// exception is the trie node payload. Redefining a word updates it in place.
type exception struct {
	offsets []int
}

// ExceptionList maps whole words to their explicit break points.
type ExceptionList struct {
	words *trie.Trie
	count int
}

// NewExceptionList creates an empty exception list.
func NewExceptionList() *ExceptionList {
	return &ExceptionList{words: trie.New()}
}

// ParseHyphenated splits a word spelled with hyphens at its break points,
// e.g., "pre-sent" => ("present", [0,0,0,1,0,0,0]).
func ParseHyphenated(spelling string) (string, []int) {
	positions := make([]int, 0, len(spelling))
	wasHyphen := false
	for _, ch := range spelling {
		if ch == '-' {
			wasHyphen = true
			continue
		}
		if wasHyphen {
			positions = append(positions, 1)
			wasHyphen = false
		} else {
			positions = append(positions, 0)
		}
	}
	return strings.ReplaceAll(spelling, "-", ""), positions
}

// Add registers word with break positions (see ExceptionReader).
func (el *ExceptionList) Add(word string, positions []int) {
	word = strings.ToLower(word)
	if word == "" {
		return
	}
	n := len([]rune(word))
	offsets := make([]int, 0, 4)
	for i, pos := range positions {
		if i > 0 && i < n && pos%2 != 0 {
			offsets = append(offsets, i)
		}
	}
	if node, found := el.words.Find(word); found {
		if exc, ok := node.Meta().(*exception); ok {
			exc.offsets = offsets
			return
		}
	}
	el.count++
	el.words.Add(word, &exception{offsets: offsets})
}

// Lookup returns the break offsets of a lower case word.
func (el *ExceptionList) Lookup(word string) ([]int, bool) {
	if el == nil || el.count == 0 {
		return nil, false
	}
	node, found := el.words.Find(word)
	if !found {
		return nil, false
	}
	exc, ok := node.Meta().(*exception)
	if !ok {
		return nil, false
	}
	return exc.offsets, true
}

// Len returns the number of exception words.
func (el *ExceptionList) Len() int {
	if el == nil {
		return 0
	}
	return el.count
}

// Words returns the exception words starting with prefix, sorted.
func (el *ExceptionList) Words(prefix string) []string {
	if el == nil || el.count == 0 {
		return nil
	}
	var words []string
	if prefix == "" {
		words = el.words.Keys()
	} else {
		words = el.words.PrefixSearch(strings.ToLower(prefix))
	}
	sort.Strings(words)
	return words
}

// breaks looks up letters[0..hyend]. If hyend is the last letter and it is a
// plural 's', the word without the 's' matches as well.
func (el *ExceptionList) breaks(letters []Letter, hyend int) ([]int, bool) {
	if el.Len() == 0 {
		return nil, false
	}
	if offsets, ok := el.Lookup(spell(letters[:hyend+1])); ok {
		return offsets, true
	}
	if hyend == len(letters)-1 && letters[hyend].Rune() == 's' {
		return el.Lookup(spell(letters[:hyend]))
	}
	return nil, false
}
