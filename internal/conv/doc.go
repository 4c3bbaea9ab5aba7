// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Mapping bit indices to roaring's uint32 universe
//   - Converting between Go's int and the uint lengths of bitset interop
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
