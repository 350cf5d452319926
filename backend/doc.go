// Package backend enumerates the library bindings benchmarked by the
// harness: one registry per (library, calling convention, precision)
// combination, the canonical-name domain table, and the assembly of
// all of them into a bench.Suite.
//
// The tables are deliberately flat and mechanical; the interesting
// machinery (dispatch, timing, reporting) lives in package bench.
package backend
