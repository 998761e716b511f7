package hyphenate

import (
	"reflect"
	"testing"
)

func TestPackWeights(t *testing.T) {
	packed, err := packWeights([]int{0, 5, 0, 3, 15})
	if err != nil {
		t.Fatalf("packWeights failed: %v", err)
	}
	want := [rowBytes]byte{0x05, 0x03, 0xF0}
	if packed != want {
		t.Fatalf("packed mismatch: got %v, want %v", packed, want)
	}
}

func TestPackWeightsRejectsOutOfNibbleRange(t *testing.T) {
	if _, err := packWeights([]int{16}); err == nil {
		t.Fatalf("expected out-of-range weight error")
	}
	if _, err := packWeights(make([]int, 27)); err == nil {
		t.Fatalf("expected too-many-columns error")
	}
}

func TestDigramMatrixWeights(t *testing.T) {
	var m DigramMatrix
	row := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b, _ := LetterOf('b')
	if err := m.SetRow(b, row); err != nil {
		t.Fatalf("SetRow failed: %v", err)
	}
	if !reflect.DeepEqual(m.Row(b), row) {
		t.Fatalf("row mismatch: got %v, want %v", m.Row(b), row)
	}
	z, _ := LetterOf('Z')
	if w := m.Weight(b, z); w != 10 {
		t.Fatalf("weight (b,z): got %d, want 10", w)
	}
	a, _ := LetterOf('a')
	if w := m.Weight(a, z); w != 0 {
		t.Fatalf("weight (a,z): got %d, want 0", w)
	}
}

func TestMatrixNames(t *testing.T) {
	for m := BXH; m < matrixCount; m++ {
		got, ok := MatrixByName(m.String())
		if !ok || got != m {
			t.Fatalf("matrix name round trip failed for %s", m)
		}
	}
	if _, ok := MatrixByName("xyz"); ok {
		t.Fatalf("unknown matrix name accepted")
	}
}
