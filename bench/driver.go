package bench

import (
	"time"
)

// Run benchmarks one canonical function against one backend registry.
//
// If the registry has no entry for name, the returned Result carries
// only its label and an empty output buffer; the reporter suppresses
// it. Otherwise the reference samples are remapped into the function's
// domain, and the adapter is invoked nrepeat times over the full
// buffer while only the evaluation loop is timed. The output buffer is
// reused across repeats; the last repeat's values are what the Result
// retains.
//
// nrepeat >= 1 is a caller precondition: with zero repeats no time is
// measured and throughput is reported as zero.
func Run[T Value](name string, reg *Registry[T], domains Table, in []T, nrepeat int) Result[T] {
	label := reg.Prefix + "_" + name

	a, ok := reg.Lookup(name)
	if !ok {
		return Result[T]{Label: label}
	}

	d := domains.Lookup(name)
	vals := TransformDomain(in, d)
	n := len(vals)

	// Vector kernels only see whole chunks: round the buffers up and
	// trim the padding from the reported output afterwards.
	padded := roundUp(n, a.width)
	if padded != n {
		vals = append(vals, make([]T, padded-n)...)
	}

	out := make([]T, padded*a.outPerInput)

	start := time.Now()
	for k := 0; k < nrepeat; k++ {
		a.apply(out, vals)
	}
	elapsed := time.Since(start)

	return Result[T]{
		Label:   label,
		Out:     out[:n*a.outPerInput],
		Elapsed: elapsed,
		Evals:   n * nrepeat,
		Domain:  d,
	}
}

// roundUp returns the least multiple of w that is >= n.
func roundUp(n, w int) int {
	if w <= 1 {
		return n
	}

	rem := n % w
	if rem == 0 {
		return n
	}

	return n + w - rem
}
