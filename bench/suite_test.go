package bench

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func testSuite(out, errw *strings.Builder) *Suite {
	sin64 := NewRegistry[float64]("alpha_dx1")
	sin64.Register("sin", Scalar(math.Sin))
	sin64.Register("cos", Scalar(math.Cos))

	exp64 := NewRegistry[float64]("beta_dx1")
	exp64.Register("exp", Scalar(math.Exp))
	exp64.Register("sin", Scalar(math.Sin))

	sqrt32 := NewRegistry[float32]("gamma_fx1")
	sqrt32.Register("sqrt", Scalar(func(x float32) float32 {
		return float32(math.Sqrt(float64(x)))
	}))

	return &Suite{
		F32:     []*Registry[float32]{sqrt32},
		F64:     []*Registry[float64]{sin64, exp64},
		Domains: Table{"sin": {Lo: 0, Hi: 2 * math.Pi}, "cos": {Lo: 0, Hi: 2 * math.Pi}},
		RunSizes: []RunSize{
			{N: 512, Repeat: 2},
		},
		Seed: 99,
		Out:  out,
		Err:  errw,
	}
}

func TestSuiteUnion(t *testing.T) {
	var out, errw strings.Builder
	s := testSuite(&out, &errw)

	got := s.Union()
	want := []string{"cos", "exp", "sin", "sqrt"}

	if len(got) != len(want) {
		t.Fatalf("Union = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Union = %v, want %v", got, want)
		}
	}
}

func TestSuiteSelect(t *testing.T) {
	var out, errw strings.Builder
	s := testSuite(&out, &errw)

	tests := []struct {
		name   string
		filter []string
		want   []string
	}{
		{"empty selects all", nil, []string{"cos", "exp", "sin", "sqrt"}},
		{"single", []string{"sin"}, []string{"sin"}},
		{"unknown ignored", []string{"sin", "nonesuch"}, []string{"sin"}},
		{"all unknown", []string{"nonesuch"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Select(tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("Select(%v) = %v, want %v", tt.filter, got, tt.want)
			}

			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Select(%v) = %v, want %v", tt.filter, got, tt.want)
				}
			}
		})
	}
}

func TestSuiteRunStreamsSelected(t *testing.T) {
	var out, errw strings.Builder
	s := testSuite(&out, &errw)

	s.Run([]string{"sin"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")

	// Both float64 backends implement sin; the float32 one does not.
	if len(lines) != 2 {
		t.Fatalf("got %d result lines, want 2:\n%s", len(lines), out.String())
	}

	if !strings.HasPrefix(lines[0], "alpha_dx1_sin:") {
		t.Errorf("line 0 = %q, want alpha_dx1_sin first", lines[0])
	}

	if !strings.HasPrefix(lines[1], "beta_dx1_sin:") {
		t.Errorf("line 1 = %q, want beta_dx1_sin second", lines[1])
	}

	if !strings.Contains(errw.String(), "length 512 and 2 repeats") {
		t.Errorf("progress notice missing run size: %q", errw.String())
	}
}

func TestSuiteRunBlankSeparators(t *testing.T) {
	var out, errw strings.Builder
	s := testSuite(&out, &errw)

	s.Run([]string{"cos", "exp"})

	// Each function sweep ends with a blank line, including functions
	// implemented by a single backend.
	text := out.String()
	if strings.Count(text, "\n\n") != 2 {
		t.Errorf("want a blank separator after each of 2 functions, got:\n%q", text)
	}
}

func TestSuiteRunMeanOverDomain(t *testing.T) {
	var out, errw strings.Builder

	reg := NewRegistry[float64]("mono_dx1")
	reg.Register("cos", Scalar(math.Cos))

	s := &Suite{
		F64:      []*Registry[float64]{reg},
		Domains:  Table{"cos": {Lo: 0, Hi: 2 * math.Pi}},
		RunSizes: []RunSize{{N: 65536, Repeat: 1}},
		Seed:     3,
		Out:      &out,
		Err:      &errw,
	}

	s.Run([]string{"cos"})

	// The mean of cos over a full period is 0; with 64k uniform samples
	// the sample mean lands within a few standard errors of it.
	fields := strings.Fields(out.String())
	if len(fields) < 3 {
		t.Fatalf("unexpected output: %q", out.String())
	}

	mean, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		t.Fatalf("cannot parse mean from %q: %v", fields[2], err)
	}

	if math.Abs(mean) > 0.02 {
		t.Errorf("mean of cos over [0, 2pi] = %g, want near 0", mean)
	}
}
