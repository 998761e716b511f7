/*
Package dat implements a frozen double-array trie over a small dense
alphabet.

Keys are sequences of dense symbols in [1..Sigma]. Every node may carry an
integer value. Tries are assembled with a Builder and frozen into the
double-array form, which is read-only and safe for concurrent use.
*/
package dat

// DAT is a frozen double-array trie.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Values:
//   - If Value[s] != 0, node s terminates a key and carries value Value[s]-1.
type DAT struct {
	// Root state index.
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Value holds the biased value of terminal nodes, 0 meaning "none".
	Value []int32 // len == N
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || dense > d.Sigma {
		return 0, false
	}
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// ValueAt returns the value stored at state, if any.
func (d *DAT) ValueAt(state uint32) (int, bool) {
	if int(state) >= len(d.Value) || d.Value[state] == 0 {
		return 0, false
	}
	return int(d.Value[state] - 1), true
}

// Walk follows key from the root and calls found for every prefix of key
// which carries a value, shortest prefix first. depth is the length of the
// prefix.
func (d *DAT) Walk(key []uint16, found func(depth int, value int)) {
	state := d.Root
	for i, c := range key {
		next, ok := d.Transition(state, c)
		if !ok {
			return
		}
		state = next
		if v, ok := d.ValueAt(state); ok {
			found(i+1, v)
		}
	}
}

// Stats reports density metrics of the double-array.
type Stats struct {
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio is the share of used slots.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats computes density metrics.
func (d *DAT) Stats() Stats {
	stats := Stats{
		TotalSlots: d.NStates(),
		MaxStateID: int(d.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(d.Root)
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}
