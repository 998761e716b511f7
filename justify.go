package linefill

import "fmt"

// JustificationState describes how the leftover width of a line is spread
// over its inter-word gaps: every gap receives BaseGap extra units, and
// RemainderGaps of them one Quantum more. FrontLoaded tells whether these
// are the leftmost or the rightmost gaps.
type JustificationState struct {
	BaseGap       int
	RemainderGaps int
	Gaps          int
	Quantum       int
	FrontLoaded   bool
}

// Extra is the additional width of gap i, counting from 0 at the left.
func (js JustificationState) Extra(i int) int {
	if i < 0 || i >= js.Gaps {
		return 0
	}
	extra := js.BaseGap
	if js.FrontLoaded {
		if i < js.RemainderGaps {
			extra += js.Quantum
		}
	} else if i >= js.Gaps-js.RemainderGaps {
		extra += js.Quantum
	}
	return extra
}

// Total is the width added to the line.
func (js JustificationState) Total() int {
	return js.BaseGap*js.Gaps + js.RemainderGaps*js.Quantum
}

func (js JustificationState) String() string {
	side := "right"
	if js.FrontLoaded {
		side = "left"
	}
	return fmt.Sprintf("gaps=%d base=%d rem=%d(%s)", js.Gaps, js.BaseGap, js.RemainderGaps, side)
}

// Justifier computes the gap distribution of full lines. Lines with an even
// serial number get the odd units in their leftmost gaps, odd lines in
// their rightmost ones.
type Justifier struct {
	quantum int
}

// NewJustifier creates a justifier working in multiples of quantum device
// units.
func NewJustifier(quantum int) *Justifier {
	if quantum <= 0 {
		quantum = 1
	}
	return &Justifier{quantum: quantum}
}

// ComputeGaps distributes the remaining width of line, which is to be the
// output line number serial, over its gaps. Lines with a single word or
// nothing left to spread get the zero distribution.
func (j *Justifier) ComputeGaps(line *Line, serial int) JustificationState {
	js := JustificationState{Quantum: j.quantum}
	js.Gaps = max(line.Words()-1, 0)
	remaining := line.Remaining()
	if js.Gaps == 0 || remaining <= 0 {
		return js
	}
	js.BaseGap = remaining / js.Gaps / j.quantum * j.quantum
	js.RemainderGaps = (remaining - js.BaseGap*js.Gaps) / j.quantum
	js.FrontLoaded = serial%2 == 0
	return js
}
