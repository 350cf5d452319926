package bench

import (
	"testing"
)

func TestSampleSetDeterministic(t *testing.T) {
	a := NewSampleSet(256, 42)
	b := NewSampleSet(256, 42)

	for i := range a.F64 {
		if a.F64[i] != b.F64[i] {
			t.Fatalf("F64[%d] differs between identically seeded draws", i)
		}
	}

	for i := range a.C128 {
		if a.C128[i] != b.C128[i] {
			t.Fatalf("C128[%d] differs between identically seeded draws", i)
		}
	}
}

func TestSampleSetRanges(t *testing.T) {
	s := NewSampleSet(4096, 7)

	if len(s.F64) != 4096 || len(s.F32) != 4096 || len(s.C128) != 4096 {
		t.Fatalf("lengths = %d, %d, %d; want 4096 each", len(s.F64), len(s.F32), len(s.C128))
	}

	for i, v := range s.F64 {
		if v < 0 || v >= 1 {
			t.Fatalf("F64[%d] = %g outside [0, 1)", i, v)
		}

		if s.F32[i] != float32(v) {
			t.Fatalf("F32[%d] is not the cast of F64[%d]", i, i)
		}
	}

	for i, z := range s.C128 {
		if re := real(z); re < 0 || re >= 1 {
			t.Fatalf("real(C128[%d]) = %g outside [0, 1)", i, re)
		}

		if im := imag(z); im < 0 || im >= 1 {
			t.Fatalf("imag(C128[%d]) = %g outside [0, 1)", i, im)
		}
	}
}

func TestSampleSetSeedMatters(t *testing.T) {
	a := NewSampleSet(64, 1)
	b := NewSampleSet(64, 2)

	same := true
	for i := range a.F64 {
		if a.F64[i] != b.F64[i] {
			same = false
			break
		}
	}

	if same {
		t.Error("different seeds produced identical draws")
	}
}
