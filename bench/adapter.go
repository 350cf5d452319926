package bench

// Adapter wraps one backend calling convention behind a uniform
// "evaluate a buffer of inputs into a buffer of outputs" capability.
// Adapters are plain values: they own (or close over) their backend
// call and carry no state beyond it, so a Registry can store them by
// value without lifetime concerns.
type Adapter[T Value] struct {
	apply       func(dst, src []T)
	width       int
	outPerInput int
}

// Width returns the vector width the adapter consumes per kernel call.
// Scalar and paired adapters have width 1; whole-buffer adapters report
// width 1 as well since they chunk internally.
func (a Adapter[T]) Width() int { return a.width }

// OutPerInput returns the number of outputs written per input element
// (2 for paired-output adapters, 1 otherwise).
func (a Adapter[T]) OutPerInput() int { return a.outPerInput }

func (a Adapter[T]) valid() bool { return a.apply != nil }

// Scalar wraps an elementwise T -> T function.
func Scalar[T Value](f func(T) T) Adapter[T] {
	return Adapter[T]{
		apply: func(dst, src []T) {
			for i, v := range src {
				dst[i] = f(v)
			}
		},
		width:       1,
		outPerInput: 1,
	}
}

// Vector wraps a fixed-width kernel. The kernel is invoked once per
// whole chunk of width elements; the driver guarantees the buffers it
// passes are padded to a multiple of width, so no partial chunk ever
// reaches the kernel.
func Vector[T Value](width int, f func(dst, src []T)) Adapter[T] {
	return Adapter[T]{
		apply: func(dst, src []T) {
			for i := 0; i+width <= len(src); i += width {
				f(dst[i:i+width], src[i:i+width])
			}
		},
		width:       width,
		outPerInput: 1,
	}
}

// Paired wraps a function producing two correlated outputs per input
// (e.g. a Hankel-function pair). Outputs are written to consecutive
// positions, so the output buffer must be twice the input length.
func Paired[T Value](f func(T) (T, T)) Adapter[T] {
	return Adapter[T]{
		apply: func(dst, src []T) {
			for i, v := range src {
				dst[2*i], dst[2*i+1] = f(v)
			}
		},
		width:       1,
		outPerInput: 2,
	}
}

// Batched wraps an evaluator that consumes the whole input buffer in
// one call, such as a fitted interpolation cache or a backend that
// dispatches per-operation rather than per-element.
func Batched[T Value](f func(dst, src []T)) Adapter[T] {
	return Adapter[T]{
		apply:       f,
		width:       1,
		outPerInput: 1,
	}
}
