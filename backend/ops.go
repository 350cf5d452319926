package backend

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/cwbudde/algo-funcbench/bench"
)

// op is the closed set of whole-slice operations the ops backend
// supports. The backend dispatches through one switch per adapter call
// with a direct-call loop in every case, so no per-element indirect
// call lands inside the measured loop.
type op int

const (
	opCos op = iota
	opSin
	opTan
	opCosh
	opSinh
	opTanh
	opExp
	opLog
	opLog10
	opPow35
	opPow13
	opAsin
	opAcos
	opAtan
	opAsinh
	opAcosh
	opAtanh
	opErf
	opErfc
	opLgamma
	opDigamma
	opNdtri
	opSqrt
	opRSqrt
)

// opsTable maps canonical names to ops; shared by both precisions.
func opsTable() map[string]op {
	return map[string]op{
		"cos":     opCos,
		"sin":     opSin,
		"tan":     opTan,
		"cosh":    opCosh,
		"sinh":    opSinh,
		"tanh":    opTanh,
		"exp":     opExp,
		"log":     opLog,
		"log10":   opLog10,
		"pow3.5":  opPow35,
		"pow13":   opPow13,
		"asin":    opAsin,
		"acos":    opAcos,
		"atan":    opAtan,
		"asinh":   opAsinh,
		"acosh":   opAcosh,
		"atanh":   opAtanh,
		"erf":     opErf,
		"erfc":    opErfc,
		"lgamma":  opLgamma,
		"digamma": opDigamma,
		"ndtri":   opNdtri,
		"sqrt":    opSqrt,
		"rsqrt":   opRSqrt,
	}
}

// applyOp64 evaluates one op over the whole slice. One switch, then a
// tight loop of direct calls per case.
func applyOp64(o op, dst, src []float64) {
	switch o {
	case opCos:
		for i, x := range src {
			dst[i] = math.Cos(x)
		}
	case opSin:
		for i, x := range src {
			dst[i] = math.Sin(x)
		}
	case opTan:
		for i, x := range src {
			dst[i] = math.Tan(x)
		}
	case opCosh:
		for i, x := range src {
			dst[i] = math.Cosh(x)
		}
	case opSinh:
		for i, x := range src {
			dst[i] = math.Sinh(x)
		}
	case opTanh:
		for i, x := range src {
			dst[i] = math.Tanh(x)
		}
	case opExp:
		for i, x := range src {
			dst[i] = math.Exp(x)
		}
	case opLog:
		for i, x := range src {
			dst[i] = math.Log(x)
		}
	case opLog10:
		for i, x := range src {
			dst[i] = math.Log10(x)
		}
	case opPow35:
		for i, x := range src {
			dst[i] = math.Pow(x, 3.5)
		}
	case opPow13:
		for i, x := range src {
			dst[i] = powi(x, 13)
		}
	case opAsin:
		for i, x := range src {
			dst[i] = math.Asin(x)
		}
	case opAcos:
		for i, x := range src {
			dst[i] = math.Acos(x)
		}
	case opAtan:
		for i, x := range src {
			dst[i] = math.Atan(x)
		}
	case opAsinh:
		for i, x := range src {
			dst[i] = math.Asinh(x)
		}
	case opAcosh:
		for i, x := range src {
			dst[i] = math.Acosh(x)
		}
	case opAtanh:
		for i, x := range src {
			dst[i] = math.Atanh(x)
		}
	case opErf:
		for i, x := range src {
			dst[i] = math.Erf(x)
		}
	case opErfc:
		for i, x := range src {
			dst[i] = math.Erfc(x)
		}
	case opLgamma:
		for i, x := range src {
			dst[i] = lgamma(x)
		}
	case opDigamma:
		for i, x := range src {
			dst[i] = mathext.Digamma(x)
		}
	case opNdtri:
		for i, x := range src {
			dst[i] = mathext.NormalQuantile(x)
		}
	case opSqrt:
		for i, x := range src {
			dst[i] = math.Sqrt(x)
		}
	case opRSqrt:
		for i, x := range src {
			dst[i] = 1 / math.Sqrt(x)
		}
	}
}

// applyOp32 is the single-precision variant of applyOp64; values round
// through float32 at the slice boundary.
func applyOp32(o op, dst, src []float32) {
	switch o {
	case opCos:
		for i, x := range src {
			dst[i] = float32(math.Cos(float64(x)))
		}
	case opSin:
		for i, x := range src {
			dst[i] = float32(math.Sin(float64(x)))
		}
	case opTan:
		for i, x := range src {
			dst[i] = float32(math.Tan(float64(x)))
		}
	case opCosh:
		for i, x := range src {
			dst[i] = float32(math.Cosh(float64(x)))
		}
	case opSinh:
		for i, x := range src {
			dst[i] = float32(math.Sinh(float64(x)))
		}
	case opTanh:
		for i, x := range src {
			dst[i] = float32(math.Tanh(float64(x)))
		}
	case opExp:
		for i, x := range src {
			dst[i] = float32(math.Exp(float64(x)))
		}
	case opLog:
		for i, x := range src {
			dst[i] = float32(math.Log(float64(x)))
		}
	case opLog10:
		for i, x := range src {
			dst[i] = float32(math.Log10(float64(x)))
		}
	case opPow35:
		for i, x := range src {
			dst[i] = float32(math.Pow(float64(x), 3.5))
		}
	case opPow13:
		for i, x := range src {
			dst[i] = float32(powi(float64(x), 13))
		}
	case opAsin:
		for i, x := range src {
			dst[i] = float32(math.Asin(float64(x)))
		}
	case opAcos:
		for i, x := range src {
			dst[i] = float32(math.Acos(float64(x)))
		}
	case opAtan:
		for i, x := range src {
			dst[i] = float32(math.Atan(float64(x)))
		}
	case opAsinh:
		for i, x := range src {
			dst[i] = float32(math.Asinh(float64(x)))
		}
	case opAcosh:
		for i, x := range src {
			dst[i] = float32(math.Acosh(float64(x)))
		}
	case opAtanh:
		for i, x := range src {
			dst[i] = float32(math.Atanh(float64(x)))
		}
	case opErf:
		for i, x := range src {
			dst[i] = float32(math.Erf(float64(x)))
		}
	case opErfc:
		for i, x := range src {
			dst[i] = float32(math.Erfc(float64(x)))
		}
	case opLgamma:
		for i, x := range src {
			dst[i] = float32(lgamma(float64(x)))
		}
	case opDigamma:
		for i, x := range src {
			dst[i] = float32(mathext.Digamma(float64(x)))
		}
	case opNdtri:
		for i, x := range src {
			dst[i] = float32(mathext.NormalQuantile(float64(x)))
		}
	case opSqrt:
		for i, x := range src {
			dst[i] = float32(math.Sqrt(float64(x)))
		}
	case opRSqrt:
		for i, x := range src {
			dst[i] = float32(1 / math.Sqrt(float64(x)))
		}
	}
}

// OpsF64 returns the double-precision enum-dispatch backend.
func OpsF64() *bench.Registry[float64] {
	reg := bench.NewRegistry[float64]("ops_dxx")

	for name, o := range opsTable() {
		o := o
		reg.Register(name, bench.Batched(func(dst, src []float64) {
			applyOp64(o, dst, src)
		}))
	}

	return reg
}

// OpsF32 returns the single-precision enum-dispatch backend.
func OpsF32() *bench.Registry[float32] {
	reg := bench.NewRegistry[float32]("ops_fxx")

	for name, o := range opsTable() {
		o := o
		reg.Register(name, bench.Batched(func(dst, src []float32) {
			applyOp32(o, dst, src)
		}))
	}

	return reg
}
