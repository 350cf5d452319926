package backend

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/cwbudde/algo-funcbench/bench"
)

// ErrDegenerateDomain is returned when a fitted evaluator is requested
// over an empty interval.
var ErrDegenerateDomain = errors.New("funcbench: cannot fit evaluator over degenerate domain")

// fitKnots is the number of sample knots a fitted evaluator is built
// from across its domain.
const fitKnots = 512

// fitRefs lists the reference functions eligible for fitted
// evaluators: the expensive special functions where an interpolation
// cache can pay off.
func fitRefs() map[string]func(float64) float64 {
	return map[string]func(float64) float64{
		"bessel_J0": math.J0,
		"bessel_J1": math.J1,
		"bessel_J2": func(x float64) float64 { return math.Jn(2, x) },
		"bessel_Y0": math.Y0,
		"bessel_Y1": math.Y1,
		"bessel_Y2": func(x float64) float64 { return math.Yn(2, x) },
	}
}

// fittedEval is a managed black-box evaluator built once from a
// reference scalar function and a domain. It exposes the batched
// contract the driver expects.
type fittedEval struct {
	spline interp.AkimaSpline
}

// newFittedEval samples ref at fitKnots uniform knots over d and fits
// an Akima spline through them.
func newFittedEval(ref func(float64) float64, d bench.Domain) (*fittedEval, error) {
	if d.Hi <= d.Lo {
		return nil, ErrDegenerateDomain
	}

	xs := make([]float64, fitKnots)
	ys := make([]float64, fitKnots)
	step := (d.Hi - d.Lo) / float64(fitKnots-1)

	for i := range xs {
		x := d.Lo + float64(i)*step
		xs[i] = x
		ys[i] = ref(x)
	}

	e := &fittedEval{}
	if err := e.spline.Fit(xs, ys); err != nil {
		return nil, err
	}

	return e, nil
}

// evalBatch evaluates the cache over a whole buffer.
func (e *fittedEval) evalBatch(dst, src []float64) {
	for i, x := range src {
		dst[i] = e.spline.Predict(x)
	}
}

// InterpF64 builds the approximation-cache backend for the selected
// canonical names. Each fit is attempted independently and only
// successful fits are registered: a name whose evaluator could not be
// constructed stays absent, so the driver can never call through a
// half-built cache. Construction happens before any timing starts.
func InterpF64(names []string, domains bench.Table, errw io.Writer) *bench.Registry[float64] {
	reg := bench.NewRegistry[float64]("interp_dx1")
	refs := fitRefs()

	for _, name := range names {
		ref, ok := refs[name]
		if !ok {
			continue
		}

		fmt.Fprintf(errw, "Fitting interpolated evaluator for %q.\n", name)

		e, err := newFittedEval(ref, domains.Lookup(name))
		if err != nil {
			fmt.Fprintf(errw, "Skipping %q: %v.\n", name, err)
			continue
		}

		reg.Register(name, bench.Batched(e.evalBatch))
	}

	return reg
}
