package backend

import (
	"math"

	"github.com/cwbudde/algo-funcbench/bench"
)

// lgamma drops math.Lgamma's sign return; the benchmark compares the
// log-magnitude all other libraries report.
func lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}

// powi computes x^n for small positive integer n by binary
// exponentiation, the multiply-only scheme integer-power bindings use
// instead of a general pow.
func powi(x float64, n int) float64 {
	acc := 1.0

	for n > 0 {
		if n&1 == 1 {
			acc *= x
		}

		x *= x
		n >>= 1
	}

	return acc
}

// stdScalars is the shared stdlib math binding list; StdF64 uses it
// directly and StdF32 wraps each entry through float32 casts, the way
// a single-precision caller of libm would.
func stdScalars() map[string]func(float64) float64 {
	return map[string]func(float64) float64{
		"tgamma": math.Gamma,
		"lgamma": lgamma,
		"sin":    math.Sin,
		"cos":    math.Cos,
		"tan":    math.Tan,
		"asin":   math.Asin,
		"acos":   math.Acos,
		"atan":   math.Atan,
		"sinh":   math.Sinh,
		"cosh":   math.Cosh,
		"tanh":   math.Tanh,
		"asinh":  math.Asinh,
		"acosh":  math.Acosh,
		"atanh":  math.Atanh,
		"sin_pi": func(x float64) float64 { return math.Sin(math.Pi * x) },
		"cos_pi": func(x float64) float64 { return math.Cos(math.Pi * x) },
		"erf":    math.Erf,
		"erfc":   math.Erfc,
		"log":    math.Log,
		"log2":   math.Log2,
		"log10":  math.Log10,
		"exp":    math.Exp,
		"exp2":   math.Exp2,
		"exp10":  func(x float64) float64 { return math.Pow(10, x) },
		"sqrt":   math.Sqrt,
		"rsqrt":  func(x float64) float64 { return 1 / math.Sqrt(x) },
		"cbrt":   math.Cbrt,
		"pow3.5": func(x float64) float64 { return math.Pow(x, 3.5) },
		"pow13":  func(x float64) float64 { return math.Pow(x, 13) },
	}
}

// StdF64 returns the double-precision scalar stdlib backend.
func StdF64() *bench.Registry[float64] {
	reg := bench.NewRegistry[float64]("std_dx1")

	for name, f := range stdScalars() {
		reg.Register(name, bench.Scalar(f))
	}

	return reg
}

// StdF32 returns the single-precision scalar stdlib backend. Go's math
// package is float64-only, so each call rounds through float32 at the
// boundary; the round trip is part of what the fx1 label measures.
func StdF32() *bench.Registry[float32] {
	reg := bench.NewRegistry[float32]("std_fx1")

	for name, f := range stdScalars() {
		f := f
		reg.Register(name, bench.Scalar(func(x float32) float32 {
			return float32(f(float64(x)))
		}))
	}

	return reg
}
