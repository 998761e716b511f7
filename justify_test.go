package linefill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fourWordLine(t *testing.T) *Line {
	line := NewLine(20, 0)
	fitter := NewLineFitter(nil)
	fitter.Place(makeWord(t, 0, "a"), line)
	for _, text := range []string{"bb", "cc", "dd"} {
		fitter.Place(makeWord(t, 1, text), line)
	}
	return line
}

func TestComputeGaps(t *testing.T) {
	line := fourWordLine(t)
	assert.Equal(t, 10, line.Remaining())
	j := NewJustifier(1)
	even := j.ComputeGaps(line, 0)
	assert.Equal(t, 3, even.Gaps)
	assert.Equal(t, 3, even.BaseGap)
	assert.Equal(t, 1, even.RemainderGaps)
	assert.True(t, even.FrontLoaded)
	assert.Equal(t, []int{4, 3, 3}, extras(even))
	assert.Equal(t, 10, even.Total())
	//
	odd := j.ComputeGaps(line, 1)
	assert.False(t, odd.FrontLoaded)
	assert.Equal(t, []int{3, 3, 4}, extras(odd))
	assert.Equal(t, 0, odd.Extra(3), "there are only three gaps")
}

func TestComputeGapsWithQuantum(t *testing.T) {
	line := fourWordLine(t)
	js := NewJustifier(2).ComputeGaps(line, 0)
	assert.Equal(t, 2, js.BaseGap)
	assert.Equal(t, 2, js.RemainderGaps)
	assert.Equal(t, []int{4, 4, 2}, extras(js))
	assert.Equal(t, 10, js.Total())
}

func TestNothingToJustify(t *testing.T) {
	j := NewJustifier(0)
	single := NewLine(10, 0)
	NewLineFitter(nil).Place(makeWord(t, 0, "word"), single)
	assert.Equal(t, JustificationState{Quantum: 1}, j.ComputeGaps(single, 0))
	//
	full := NewLine(5, 0)
	fitter := NewLineFitter(nil)
	fitter.Place(makeWord(t, 0, "ab"), full)
	fitter.Place(makeWord(t, 1, "cd"), full)
	js := j.ComputeGaps(full, 0)
	assert.Equal(t, 0, js.Total())
	assert.Equal(t, 1, js.Gaps)
}

func extras(js JustificationState) []int {
	e := make([]int, js.Gaps)
	for i := range e {
		e[i] = js.Extra(i)
	}
	return e
}
