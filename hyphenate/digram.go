package hyphenate

import "fmt"

// Matrix selects one of the five digram weight tables. The names follow the
// troff tradition: b stands for the beginning of the word, h for the
// hyphenation point, x for a letter.
type Matrix uint8

const (
	BXH  Matrix = iota // first letter of a word (row 'a' only)
	BXXH               // first two letters of a word
	XXH                // letter pair ending at the candidate position
	XHX                // letter pair straddling the candidate position
	HXX                // letter pair following the candidate position
	matrixCount
)

var matrixNames = [...]string{"bxh", "bxxh", "xxh", "xhx", "hxx"}

func (m Matrix) String() string {
	if m >= matrixCount {
		return fmt.Sprintf("matrix(%d)", m)
	}
	return matrixNames[m]
}

// MatrixByName returns the matrix for one of the names bxh, bxxh, xxh, xhx, hxx.
func MatrixByName(name string) (Matrix, bool) {
	for i, n := range matrixNames {
		if n == name {
			return Matrix(i), true
		}
	}
	return 0, false
}

const rowBytes = (AlphabetSize + 1) / 2

// DigramMatrix keeps weights 0..15 for every pair of letters, two weights per
// byte: the high nibble for an even column, the low nibble for an odd one.
type DigramMatrix [AlphabetSize][rowBytes]byte

// packWeights packs one row of weights, column by column.
func packWeights(weights []int) ([rowBytes]byte, error) {
	var packed [rowBytes]byte
	if len(weights) > AlphabetSize {
		return packed, fmt.Errorf("too many columns: %d", len(weights))
	}
	for col, val := range weights {
		if val < 0 || val > 15 {
			return packed, fmt.Errorf("weight out of range (0..15): %d", val)
		}
		if col%2 == 0 {
			packed[col/2] |= byte(val << 4)
		} else {
			packed[col/2] |= byte(val)
		}
	}
	return packed, nil
}

// SetRow stores the weights of all pairs starting with letter a.
// Missing trailing columns are zero.
func (m *DigramMatrix) SetRow(a Letter, weights []int) error {
	if a >= AlphabetSize {
		return fmt.Errorf("row out of range: %d", a)
	}
	packed, err := packWeights(weights)
	if err != nil {
		return err
	}
	m[a] = packed
	return nil
}

// Weight returns the weight of the letter pair (a, b).
func (m *DigramMatrix) Weight(a, b Letter) uint8 {
	if a >= AlphabetSize || b >= AlphabetSize {
		return 0
	}
	cell := m[a][b/2]
	if b%2 == 0 {
		return cell >> 4
	}
	return cell & 0x0F
}

// Row returns the unpacked weights of row a.
func (m *DigramMatrix) Row(a Letter) []int {
	row := make([]int, AlphabetSize)
	for b := Letter(0); b < AlphabetSize; b++ {
		row[b] = int(m.Weight(a, b))
	}
	return row
}
