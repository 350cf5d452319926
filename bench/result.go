package bench

import (
	"fmt"
	"io"
	"time"
)

// Result is one timed (function, backend) measurement. It is created
// by Run, immutable afterwards, and consumed immediately by the
// reporter. A Result with an empty output buffer means the backend
// does not implement the function; the reporter emits nothing for it.
type Result[T Value] struct {
	// Label is "<backend prefix>_<canonical name>".
	Label string
	// Out holds the last repeat's output values (logical length only,
	// padding trimmed).
	Out []T
	// Elapsed is the monotonic wall time of the timed loop.
	Elapsed time.Duration
	// Evals counts evaluations performed (input length x repeats).
	Evals int
	// Domain is the input interval the samples were mapped into.
	Domain Domain
}

// Empty reports whether the backend skipped this function.
func (r Result[T]) Empty() bool { return len(r.Out) == 0 }

// MEvals returns throughput in millions of evaluations per second,
// or 0 when no time was measured.
func (r Result[T]) MEvals() float64 {
	sec := r.Elapsed.Seconds()
	if sec == 0 {
		return 0
	}

	return float64(r.Evals) / sec / 1e6
}

// Mean returns the arithmetic mean of the output buffer, accumulated
// in the result's own element type. Single-precision backends report
// single-precision-accumulated means on purpose: the accumulation
// error is part of the precision characteristic being compared.
func (r Result[T]) Mean() T {
	var sum T
	for _, v := range r.Out {
		sum += v
	}

	if len(r.Out) == 0 {
		return sum
	}

	return sum / fromFloat[T](float64(len(r.Out)))
}

// Format writes the one-line report for the result, or nothing when
// the result is empty. Columns: label, throughput (6 significant
// digits), mean (15 significant digits), domain bounds (5 significant
// digits).
func (r Result[T]) Format(w io.Writer) {
	if r.Empty() {
		return
	}

	fmt.Fprintf(w, "%-25s%-15.6g%-15.15g     [%.5g, %.5g]\n",
		r.Label+":", r.MEvals(), r.Mean(), r.Domain.Lo, r.Domain.Hi)
}
