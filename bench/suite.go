package bench

import (
	"fmt"
	"io"
	"sort"
)

// RunSize is one throughput-measurement regime: how many samples each
// adapter call sees and how often the call is repeated.
type RunSize struct {
	N      int
	Repeat int
}

// DefaultRunSizes stresses both regimes: many repeats over a small
// vector (per-call overhead) and one pass over a huge vector
// (sustained throughput).
var DefaultRunSizes = []RunSize{
	{N: 1024, Repeat: 10000},
	{N: 1024 * 10000, Repeat: 1},
}

// Suite sweeps every backend over every selected canonical function.
// Backends run in slice order, single-threaded, one (function,
// backend) pair at a time; results stream to Out as they complete.
type Suite struct {
	F32  []*Registry[float32]
	F64  []*Registry[float64]
	C128 []*Registry[complex128]

	Domains  Table
	RunSizes []RunSize
	Seed     uint64

	// Out receives result lines; Err receives progress notices.
	Out io.Writer
	Err io.Writer
}

// Union returns the sorted union of canonical names implemented by
// any backend in the suite.
func (s *Suite) Union() []string {
	seen := make(map[string]struct{})

	for _, r := range s.F32 {
		for _, name := range r.Names() {
			seen[name] = struct{}{}
		}
	}

	for _, r := range s.F64 {
		for _, name := range r.Names() {
			seen[name] = struct{}{}
		}
	}

	for _, r := range s.C128 {
		for _, name := range r.Names() {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Select intersects the union with a user-supplied filter. An empty
// filter selects everything; unknown filter names simply do not
// intersect and have no effect.
func (s *Suite) Select(filter []string) []string {
	union := s.Union()
	if len(filter) == 0 {
		return union
	}

	want := make(map[string]struct{}, len(filter))
	for _, name := range filter {
		want[name] = struct{}{}
	}

	selected := union[:0]

	for _, name := range union {
		if _, ok := want[name]; ok {
			selected = append(selected, name)
		}
	}

	return selected
}

// Run benchmarks every selected function against every backend for
// each run size, streaming one line per non-empty result and a blank
// separator line after each function's full backend sweep.
func (s *Suite) Run(keys []string) {
	sizes := s.RunSizes
	if len(sizes) == 0 {
		sizes = DefaultRunSizes
	}

	for _, size := range sizes {
		fmt.Fprintf(s.Err, "Running benchmark with input vector of length %d and %d repeats.\n",
			size.N, size.Repeat)

		samples := NewSampleSet(size.N, s.Seed)

		for _, key := range keys {
			for _, reg := range s.F32 {
				Run(key, reg, s.Domains, samples.F32, size.Repeat).Format(s.Out)
			}

			for _, reg := range s.F64 {
				Run(key, reg, s.Domains, samples.F64, size.Repeat).Format(s.Out)
			}

			for _, reg := range s.C128 {
				Run(key, reg, s.Domains, samples.C128, size.Repeat).Format(s.Out)
			}

			fmt.Fprintln(s.Out)
		}
	}
}
