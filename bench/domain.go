package bench

import (
	"github.com/cwbudde/algo-vecmath"
)

// Domain is the valid input interval of a canonical function.
// Invariant: Lo <= Hi.
type Domain struct {
	Lo, Hi float64
}

// DefaultDomain is the identity interval used for functions without a
// registered domain: samples already live in [0,1] and pass through
// unchanged.
var DefaultDomain = Domain{0, 1}

// Table maps canonical function names to their evaluation domains.
type Table map[string]Domain

// Lookup returns the domain registered for name, or DefaultDomain.
func (t Table) Lookup(name string) Domain {
	if d, ok := t[name]; ok {
		return d
	}

	return DefaultDomain
}

// TransformDomain remaps a reference sample vector into the domain:
// every element v becomes v*(Hi-Lo)+Lo. The input is never modified;
// one output vector is allocated.
func TransformDomain[T Value](in []T, d Domain) []T {
	out := make([]T, len(in))
	delta := d.Hi - d.Lo

	switch src := any(in).(type) {
	case []float64:
		dst := any(out).([]float64)
		vecmath.ScaleBlock(dst, src, delta)

		for i := range dst {
			dst[i] += d.Lo
		}
	default:
		dT := fromFloat[T](delta)
		lo := fromFloat[T](d.Lo)

		for i, v := range in {
			out[i] = v*dT + lo
		}
	}

	return out
}
