package backend

import (
	"math"

	"github.com/cwbudde/algo-funcbench/bench"
)

// Domains returns the evaluation domain for every canonical function
// that needs one. Functions absent from the table run on the identity
// domain [0,1]: samples pass through unchanged.
//
// The bounds keep every backend inside its numerically valid range:
// Bessel Y diverges at 0, acosh needs arguments >= 1, atanh is only
// defined on (-1,1), and so on.
func Domains() bench.Table {
	return bench.Table{
		"sin_pi": {Lo: 0, Hi: 2},
		"cos_pi": {Lo: 0, Hi: 2},
		"sin":    {Lo: 0, Hi: 2 * math.Pi},
		"cos":    {Lo: 0, Hi: 2 * math.Pi},
		"tan":    {Lo: 0, Hi: 2 * math.Pi},
		"sincos": {Lo: 0, Hi: 2 * math.Pi},
		"asin":   {Lo: -1, Hi: 1},
		"acos":   {Lo: -1, Hi: 1},
		"atan":   {Lo: -100, Hi: 100},
		"erf":    {Lo: -1, Hi: 1},
		"erfc":   {Lo: -1, Hi: 1},
		"exp":    {Lo: -10, Hi: 10},
		"log":    {Lo: 0, Hi: 10},
		"asinh":  {Lo: -100, Hi: 100},
		"acosh":  {Lo: 1, Hi: 1000},
		"atanh":  {Lo: -1, Hi: 1},

		"bessel_Y0": {Lo: 0.1, Hi: 30},
		"bessel_Y1": {Lo: 0.1, Hi: 30},
		"bessel_Y2": {Lo: 0.1, Hi: 30},
	}
}
