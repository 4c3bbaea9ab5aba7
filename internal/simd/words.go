package simd

import "math/bits"

// Kernel sets. The word kernels are portable Go; a wide ISA only selects
// the unrolled variants.
const (
	KernelsGeneric  = "generic"
	KernelsUnrolled = "unrolled"
)

// Kernel function pointers for word operations. selectKernels swaps them
// at init according to the active ISA. Callers guarantee len(src) >= len(dst).
var (
	kernelSet = KernelsGeneric

	kernelAndWords      = andWordsGeneric
	kernelOrWords       = orWordsGeneric
	kernelXorWords      = xorWordsGeneric
	kernelNotWords      = notWordsGeneric
	kernelFillWords     = fillWordsGeneric
	kernelPopcountWords = popcountWordsGeneric
)

func selectKernels(isa ISA) {
	kernelSet = kernelSetFor(isa)
	if isa == Generic {
		kernelAndWords = andWordsGeneric
		kernelOrWords = orWordsGeneric
		kernelXorWords = xorWordsGeneric
		kernelNotWords = notWordsGeneric
		kernelFillWords = fillWordsGeneric
		kernelPopcountWords = popcountWordsGeneric
		return
	}

	// Wide ISAs: 4-way unrolled loops let the compiler keep independent
	// lanes in flight.
	kernelAndWords = andWordsUnrolled
	kernelOrWords = orWordsUnrolled
	kernelXorWords = xorWordsUnrolled
	kernelNotWords = notWordsUnrolled
	kernelFillWords = fillWordsUnrolled
	kernelPopcountWords = popcountWordsUnrolled
}

func kernelSetFor(isa ISA) string {
	if isa == Generic {
		return KernelsGeneric
	}
	return KernelsUnrolled
}

// KernelSet reports which word kernels are in use.
func KernelSet() string {
	return kernelSet
}

// AndWords performs dst[i] &= src[i] for all words of dst.
func AndWords(dst, src []uint64) {
	kernelAndWords(dst, src)
}

// OrWords performs dst[i] |= src[i] for all words of dst.
func OrWords(dst, src []uint64) {
	kernelOrWords(dst, src)
}

// XorWords performs dst[i] ^= src[i] for all words of dst.
func XorWords(dst, src []uint64) {
	kernelXorWords(dst, src)
}

// NotWords performs dst[i] = ^dst[i] for all words of dst.
func NotWords(dst []uint64) {
	kernelNotWords(dst)
}

// FillWords sets every word of dst to v.
func FillWords(dst []uint64, v uint64) {
	kernelFillWords(dst, v)
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// ==============================================================================
// Generic implementations
// ==============================================================================

func andWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] &= src[i]
	}
}

func orWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] |= src[i]
	}
}

func xorWordsGeneric(dst, src []uint64) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func notWordsGeneric(dst []uint64) {
	for i := range dst {
		dst[i] = ^dst[i]
	}
}

func fillWordsGeneric(dst []uint64, v uint64) {
	for i := range dst {
		dst[i] = v
	}
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	for _, w := range words {
		count += bits.OnesCount64(w)
	}
	return count
}

// ==============================================================================
// Unrolled implementations
// ==============================================================================

func andWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

func orWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

func xorWordsUnrolled(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

func notWordsUnrolled(dst []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = ^dst[i]
		dst[i+1] = ^dst[i+1]
		dst[i+2] = ^dst[i+2]
		dst[i+3] = ^dst[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] = ^dst[i]
	}
}

func fillWordsUnrolled(dst []uint64, v uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] = v
		dst[i+1] = v
		dst[i+2] = v
		dst[i+3] = v
	}
	for ; i < len(dst); i++ {
		dst[i] = v
	}
}

func popcountWordsUnrolled(words []uint64) int {
	var c0, c1, c2, c3 int
	i := 0
	for ; i+4 <= len(words); i += 4 {
		c0 += bits.OnesCount64(words[i])
		c1 += bits.OnesCount64(words[i+1])
		c2 += bits.OnesCount64(words[i+2])
		c3 += bits.OnesCount64(words[i+3])
	}
	count := c0 + c1 + c2 + c3
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}
