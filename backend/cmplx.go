package backend

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-funcbench/bench"
)

// CmplxC128 returns the complex-valued scalar backend over math/cmplx.
func CmplxC128() *bench.Registry[complex128] {
	reg := bench.NewRegistry[complex128]("cmplx_cdx1")

	funcs := map[string]func(complex128) complex128{
		"sin":  cmplx.Sin,
		"cos":  cmplx.Cos,
		"tan":  cmplx.Tan,
		"exp":  cmplx.Exp,
		"log":  cmplx.Log,
		"sqrt": cmplx.Sqrt,
	}

	for name, f := range funcs {
		reg.Register(name, bench.Scalar(f))
	}

	return reg
}

// hank103 returns the Hankel-function pair (H0(z), H1(z)) of the first
// kind, evaluated on the real axis: H_n(x) = J_n(x) + i*Y_n(x). The
// stdlib has no complex-argument Bessel kernels, so arguments are
// projected onto their real part before evaluation; values are exact
// on the axis only.
func hank103(z complex128) (complex128, complex128) {
	x := real(z)

	return complex(math.J0(x), math.Y0(x)), complex(math.J1(x), math.Y1(x))
}

// HankelC128 returns the paired-output Hankel backend: one complex
// input, two correlated complex outputs per evaluation.
func HankelC128() *bench.Registry[complex128] {
	reg := bench.NewRegistry[complex128]("hankel_cdx1")
	reg.Register("hank103", bench.Paired(hank103))

	return reg
}

// SincosF64 returns the real paired-output backend: math.Sincos
// produces the sine and cosine of one argument in a single call.
func SincosF64() *bench.Registry[float64] {
	reg := bench.NewRegistry[float64]("sincos_dx1")
	reg.Register("sincos", bench.Paired(math.Sincos))

	return reg
}
