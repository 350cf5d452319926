// Package bench is the execution and dispatch engine of the
// special-function benchmark harness.
//
// The engine separates four concerns:
//
//   - Registry: a per-backend mapping from canonical function name
//     ("sin", "bessel_Y0", "pow13", ...) to an evaluation adapter.
//     No backend is required to implement every name; absence means
//     the backend is skipped for that name.
//   - Adapter: a calling-convention wrapper that lets the driver treat
//     scalar, fixed-width-vector, paired-output and whole-buffer
//     backends uniformly as "evaluate N inputs into N (or 2N) outputs".
//   - Domain: the valid input interval for a canonical function, used
//     to affinely remap a shared reference sample vector (uniform on
//     [0,1]) into physically meaningful ranges.
//   - Driver and Suite: Run times repeated batched evaluation of one
//     (function, backend) pair with the monotonic clock; Suite sweeps
//     every backend over every selected function for two run sizes and
//     streams one tabulated result line per non-empty result.
//
// All evaluation is single-threaded and synchronous so that timings
// stay attributable to the backend under test.
package bench
