package bench

// Value enumerates the element types a backend can evaluate.
type Value interface {
	float32 | float64 | complex128
}

// fromFloat converts a real constant to the element type T. Complex
// backends receive the constant on the real axis.
func fromFloat[T Value](x float64) T {
	var v T

	switch p := any(&v).(type) {
	case *float32:
		*p = float32(x)
	case *float64:
		*p = x
	case *complex128:
		*p = complex(x, 0)
	}

	return v
}
