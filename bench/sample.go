package bench

import (
	"math/rand/v2"
)

// SampleSet holds the reference input vectors for one run size: the
// same underlying draw in double precision, its single-precision cast,
// and an independent complex draw from the unit square. The vectors
// are generated once, shared read-only across every backend in the
// run size, and remapped (never mutated) per function.
type SampleSet struct {
	F64  []float64
	F32  []float32
	C128 []complex128
}

// NewSampleSet draws n reference samples from a seeded PCG source.
// Real samples are uniform on [0,1); complex samples are uniform on
// the unit square [0,1) x [0,1)i. A fixed seed keeps run-to-run and
// backend-to-backend comparisons apples-to-apples.
func NewSampleSet(n int, seed uint64) *SampleSet {
	rng := rand.New(rand.NewPCG(seed, seed))

	s := &SampleSet{
		F64:  make([]float64, n),
		F32:  make([]float32, n),
		C128: make([]complex128, n),
	}

	for i := range s.F64 {
		v := rng.Float64()
		s.F64[i] = v
		s.F32[i] = float32(v)
	}

	for i := range s.C128 {
		s.C128[i] = complex(rng.Float64(), rng.Float64())
	}

	return s
}
