package backend

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-funcbench/bench"
)

// evalOne pushes a single value through a registered backend function
// on the identity domain.
func evalOne[T bench.Value](t *testing.T, reg *bench.Registry[T], name string, x T) T {
	t.Helper()

	res := bench.Run(name, reg, bench.Table{}, []T{x}, 1)
	if res.Empty() {
		t.Fatalf("%s: not registered in %s", name, reg.Prefix)
	}

	return res.Out[0]
}

func TestPowi(t *testing.T) {
	tests := []struct {
		x float64
		n int
	}{
		{2, 0},
		{2, 1},
		{2, 10},
		{1.5, 13},
		{0.3, 7},
		{-2, 3},
	}

	for _, tt := range tests {
		got := powi(tt.x, tt.n)
		want := math.Pow(tt.x, float64(tt.n))

		if math.Abs(got-want) > 1e-9*math.Abs(want) {
			t.Errorf("powi(%g, %d) = %g, want %g", tt.x, tt.n, got, want)
		}
	}
}

func TestLgamma(t *testing.T) {
	// lgamma drops the sign: Gamma(-0.5) is negative but its
	// log-magnitude is what gets reported.
	want, _ := math.Lgamma(-0.5)
	if got := lgamma(-0.5); got != want {
		t.Errorf("lgamma(-0.5) = %g, want %g", got, want)
	}

	if got := lgamma(5); math.Abs(got-math.Log(24)) > 1e-12 {
		t.Errorf("lgamma(5) = %g, want log(24)", got)
	}
}

func TestStdF64Bindings(t *testing.T) {
	reg := StdF64()

	if reg.Prefix != "std_dx1" {
		t.Fatalf("Prefix = %q, want std_dx1", reg.Prefix)
	}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"sin", math.Pi / 2, 1},
		{"cos", 0, 1},
		{"sin_pi", 0.5, 1},
		{"cos_pi", 1, -1},
		{"exp10", 2, 100},
		{"rsqrt", 4, 0.5},
		{"pow13", 1, 1},
		{"tgamma", 5, 24},
	}

	for _, tt := range tests {
		got := evalOne(t, reg, tt.name, tt.x)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s(%g) = %g, want %g", tt.name, tt.x, got, tt.want)
		}
	}
}

func TestStdF32MatchesF64(t *testing.T) {
	reg64 := StdF64()
	reg32 := StdF32()

	if reg32.Prefix != "std_fx1" {
		t.Fatalf("Prefix = %q, want std_fx1", reg32.Prefix)
	}

	if reg32.Len() != reg64.Len() {
		t.Errorf("single-precision backend has %d entries, double has %d", reg32.Len(), reg64.Len())
	}

	got := evalOne(t, reg32, "exp", float32(1))
	if math.Abs(float64(got)-math.E) > 1e-6 {
		t.Errorf("exp(1) = %g, want e", got)
	}
}
