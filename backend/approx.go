package backend

import (
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-funcbench/bench"
)

// ln2 is the natural logarithm of 2, used for log base conversions.
const ln2 = 0.693147180559945309417232121458

// ApproxF64 returns the fast-approximation backend. algo-approx only
// ships natural exp/log and sqrt; the base-2 variants use the
// identities log2(x) = ln(x)/ln(2) and 2^x = e^(x*ln(2)).
func ApproxF64() *bench.Registry[float64] {
	reg := bench.NewRegistry[float64]("approx_dx1")

	reg.Register("exp", bench.Scalar(approx.FastExp))
	reg.Register("log", bench.Scalar(approx.FastLog))
	reg.Register("sqrt", bench.Scalar(approx.FastSqrt))
	reg.Register("exp2", bench.Scalar(func(x float64) float64 {
		return approx.FastExp(x * ln2)
	}))
	reg.Register("log2", bench.Scalar(func(x float64) float64 {
		return approx.FastLog(x) / ln2
	}))
	reg.Register("rsqrt", bench.Scalar(func(x float64) float64 {
		return 1 / approx.FastSqrt(x)
	}))

	return reg
}
