// Package simd provides word-level kernels for packed bit vectors.
//
// # Supported Platforms
//
//   - x86-64: AVX2, AVX-512 (unrolled kernels)
//   - ARM64: NEON, SVE2 (unrolled kernels)
//   - everything else: generic scalar loops
//
// Runtime CPU feature detection selects the kernel set at init. Set
// BITVEC_SIMD=generic to force the scalar fallback.
//
// # Operations
//
//   - Algebra: AndWords, OrWords, XorWords, NotWords
//   - Fill: FillWords
//   - Counting: PopcountWords
//
// All kernel sets are bit-identical; only throughput differs.
package simd
