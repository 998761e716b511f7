package hyphenate

// Letter is one of the 26 letters of the English alphabet, 0 for 'a'.
type Letter uint8

// AlphabetSize is the number of letters.
const AlphabetSize = 26

// LetterOf maps r to a Letter, ignoring case.
func LetterOf(r rune) (Letter, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Letter(r - 'a'), true
	case r >= 'A' && r <= 'Z':
		return Letter(r - 'A'), true
	}
	return 0, false
}

// Rune returns the lower case rune for l.
func (l Letter) Rune() rune {
	return 'a' + rune(l)
}

// IsVowel is true for a, e, i, o, u and y.
func (l Letter) IsVowel() bool {
	switch l.Rune() {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

func (l Letter) String() string {
	return string(l.Rune())
}

// dense maps a letter to its symbol in the suffix trie alphabet (1..26).
func (l Letter) dense() uint16 {
	return uint16(l) + 1
}
