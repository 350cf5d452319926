// Command funcbench benchmarks elementary special-function evaluation
// across every compiled-in backend and prints one line per
// (function, backend) pair: throughput in millions of evaluations per
// second, mean output value, and the evaluation domain.
//
// Usage:
//
//	funcbench [function-name ...]
//
// Positional arguments filter the run to the named canonical functions
// ("sin", "bessel_Y0", "pow13", ...). Without arguments the full union
// of functions implemented by any backend is benchmarked. Unknown
// names simply select nothing.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-funcbench/backend"
)

// printEnvironment reports the runtime and detected SIMD features on
// stderr, so result logs carry the machine context they were taken on.
func printEnvironment(w *os.File) {
	feat := cpu.DetectFeatures()

	fmt.Fprintf(w, "funcbench: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "funcbench: cpu %s sse2=%v avx2=%v neon=%v\n",
		feat.Architecture, cpu.HasSSE2(), cpu.HasAVX2(), cpu.HasNEON())
}

func main() {
	printEnvironment(os.Stderr)

	suite, keys := backend.NewSuite(os.Stdout, os.Stderr, os.Args[1:])
	suite.Run(keys)
}
