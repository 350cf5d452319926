package backend

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy"
	hwymath "github.com/ajroetker/go-highway/hwy/contrib/math"

	"github.com/cwbudde/algo-funcbench/bench"
)

// vecAdapter lifts a hwy vector function into a fixed-width bench
// adapter: load one chunk, apply the kernel, store one chunk.
func vecAdapter[T hwyFloat](width int, f func(hwy.Vec[T]) hwy.Vec[T]) bench.Adapter[T] {
	return bench.Vector(width, func(dst, src []T) {
		f(hwy.Load(src)).Store(dst)
	})
}

// hwyFloat is the overlap of bench.Value and hwy.Floats.
type hwyFloat interface {
	float32 | float64
}

// highwayRegistry builds the go-highway vector backend for one element
// type. The width is whatever the detected SIMD level gives
// (hwy.MaxLanes), so the label records it: highway_fx8, highway_dx4
// on AVX2, and so on.
func highwayRegistry[T hwyFloat](letter string) *bench.Registry[T] {
	w := hwy.MaxLanes[T]()
	reg := bench.NewRegistry[T](fmt.Sprintf("highway_%sx%d", letter, w))

	funcs := map[string]func(hwy.Vec[T]) hwy.Vec[T]{
		"copy":  func(v hwy.Vec[T]) hwy.Vec[T] { return v },
		"sin":   hwymath.Sin[T],
		"cos":   hwymath.Cos[T],
		"tan":   hwymath.Tan[T],
		"sinh":  hwymath.Sinh[T],
		"cosh":  hwymath.Cosh[T],
		"tanh":  hwymath.Tanh[T],
		"asin":  hwymath.Asin[T],
		"acos":  hwymath.Acos[T],
		"atan":  hwymath.Atan[T],
		"asinh": hwymath.Asinh[T],
		"acosh": hwymath.Acosh[T],
		"atanh": hwymath.Atanh[T],
		"exp":   hwymath.Exp[T],
		"exp2":  hwymath.Exp2[T],
		"exp10": hwymath.Exp10[T],
		"log":   hwymath.Log[T],
		"log2":  hwymath.Log2[T],
		"log10": hwymath.Log10[T],
		"erf":   hwymath.Erf[T],
		"cbrt":  hwymath.Cbrt[T],
		"sqrt":  hwy.Sqrt[T],
		"rsqrt": hwy.RSqrt[T],
		"pow3.5": func(v hwy.Vec[T]) hwy.Vec[T] {
			return hwymath.Pow(v, hwy.Set(T(3.5)))
		},
		"pow13": func(v hwy.Vec[T]) hwy.Vec[T] {
			return hwymath.Pow(v, hwy.Set(T(13)))
		},
	}

	for name, f := range funcs {
		reg.Register(name, vecAdapter(w, f))
	}

	return reg
}

// HighwayF32 returns the single-precision go-highway vector backend.
func HighwayF32() *bench.Registry[float32] {
	return highwayRegistry[float32]("f")
}

// HighwayF64 returns the double-precision go-highway vector backend.
func HighwayF64() *bench.Registry[float64] {
	return highwayRegistry[float64]("d")
}
