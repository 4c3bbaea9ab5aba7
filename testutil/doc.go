// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for random bit patterns and helpers
// for building expected string renderings.
//
// # Random Bit Patterns
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bools(130)          // index 0 first
//	want := testutil.BoolsToString(bits)
//	s := rng.BitString(64)          // MSB-first '0'/'1' text
package testutil
