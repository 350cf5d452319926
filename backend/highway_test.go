package backend

import (
	"math"
	"strings"
	"testing"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-funcbench/bench"
)

func TestHighwayPrefixCarriesWidth(t *testing.T) {
	f32 := HighwayF32()
	f64 := HighwayF64()

	if !strings.HasPrefix(f32.Prefix, "highway_fx") {
		t.Errorf("float32 prefix = %q, want highway_fx<lanes>", f32.Prefix)
	}

	if !strings.HasPrefix(f64.Prefix, "highway_dx") {
		t.Errorf("float64 prefix = %q, want highway_dx<lanes>", f64.Prefix)
	}

	a, ok := f64.Lookup("sin")
	if !ok {
		t.Fatal("sin not registered in the highway backend")
	}

	if a.Width() != hwy.MaxLanes[float64]() {
		t.Errorf("adapter width = %d, want hwy.MaxLanes = %d", a.Width(), hwy.MaxLanes[float64]())
	}
}

func TestHighwayCopyRoundTrip(t *testing.T) {
	reg := HighwayF64()

	// An odd count forces the driver's padding path as well.
	in := make([]float64, 37)
	for i := range in {
		in[i] = float64(i) * 0.01
	}

	res := bench.Run("copy", reg, bench.Table{}, in, 1)
	if res.Empty() {
		t.Fatal("copy not registered in the highway backend")
	}

	for i := range in {
		if res.Out[i] != in[i] {
			t.Errorf("Out[%d] = %g, want %g", i, res.Out[i], in[i])
		}
	}
}

func TestHighwayF64AgainstStdlib(t *testing.T) {
	reg := HighwayF64()

	in := bench.NewSampleSet(256, 11).F64
	tests := []struct {
		name string
		ref  func(float64) float64
		tol  float64
	}{
		{"sin", math.Sin, 1e-9},
		{"cos", math.Cos, 1e-9},
		{"exp", math.Exp, 1e-9},
		{"sqrt", math.Sqrt, 1e-9},
		{"tanh", math.Tanh, 1e-9},
	}

	for _, tt := range tests {
		res := bench.Run(tt.name, reg, bench.Table{}, in, 1)
		if res.Empty() {
			t.Errorf("%s: not registered", tt.name)
			continue
		}

		for i, x := range in {
			want := tt.ref(x)
			if math.Abs(res.Out[i]-want) > tt.tol {
				t.Errorf("%s(%g) = %g, want %g", tt.name, x, res.Out[i], want)
				break
			}
		}
	}
}

func TestHighwayF32AgainstStdlib(t *testing.T) {
	reg := HighwayF32()

	in := bench.NewSampleSet(256, 11).F32
	res := bench.Run("sin", reg, bench.Table{}, in, 1)
	if res.Empty() {
		t.Fatal("sin not registered in the float32 highway backend")
	}

	for i, x := range in {
		want := float32(math.Sin(float64(x)))
		if math.Abs(float64(res.Out[i]-want)) > 1e-5 {
			t.Errorf("sin(%g) = %g, want %g", x, res.Out[i], want)
			break
		}
	}
}
