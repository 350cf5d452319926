package backend

import (
	"io"

	"github.com/cwbudde/algo-funcbench/bench"
)

// sampleSeed fixes the reference sample draw so that runs are
// comparable with each other.
const sampleSeed = 0x5eed

// NewSuite assembles the full backend set into a suite, applies the
// caller's filter, and returns the suite together with the selected
// canonical names. The approximation-cache backend is only built for
// the selected names, since each fit costs startup time.
//
// Backend order is fixed: single-precision backends first, then
// double, then complex, each in declaration order below.
func NewSuite(out, errw io.Writer, filter []string) (*bench.Suite, []string) {
	domains := Domains()

	s := &bench.Suite{
		F32: []*bench.Registry[float32]{
			StdF32(),
			HighwayF32(),
			OpsF32(),
		},
		F64: []*bench.Registry[float64]{
			StdF64(),
			GonumF64(),
			ApproxF64(),
			HighwayF64(),
			SincosF64(),
			OpsF64(),
		},
		C128: []*bench.Registry[complex128]{
			CmplxC128(),
			HankelC128(),
		},
		Domains:  domains,
		RunSizes: bench.DefaultRunSizes,
		Seed:     sampleSeed,
		Out:      out,
		Err:      errw,
	}

	keys := s.Select(filter)
	s.F64 = append(s.F64, InterpF64(keys, domains, errw))

	return s, keys
}
