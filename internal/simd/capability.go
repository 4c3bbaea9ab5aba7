package simd

import (
	"os"
	"runtime"
	"strings"
)

// EnvOverride is the environment variable consulted at init to force an ISA.
const EnvOverride = "BITVEC_SIMD"

// ISA represents a SIMD instruction set architecture detected on the host.
// It only chooses between kernel sets; see KernelSet.
type ISA uint8

const (
	// Generic represents pure Go scalar loops.
	Generic ISA = iota
	// NEON represents ARM64 NEON (ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2.
	SVE2
	// AVX2 represents x86-64 AVX2.
	AVX2
	// AVX512 represents x86-64 AVX-512 (F+BW).
	AVX512
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "neon":
		return NEON, true
	case "sve2":
		return SVE2, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Package-level state, initialized once from the platform init.
var (
	activeISA   ISA
	hasOverride bool

	hasASIMD    bool
	hasSVE2     bool
	hasAVX2     bool
	hasAVX512F  bool
	hasAVX512BW bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected. It also runs from the fallback init
// on architectures without detection.
func initCapabilities() {
	activeISA = Generic
	hasOverride = false

	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				activeISA = isa
				selectKernels(activeISA)
				return
			}
			// Unavailable override: fall through to auto-detection.
		}
	}

	activeISA = selectBestISA()
	selectKernels(activeISA)
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return hasASIMD
	case SVE2:
		return hasSVE2
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512F && hasAVX512BW
	default:
		return false
	}
}

func selectBestISA() ISA {
	switch runtime.GOARCH {
	case "arm64":
		// Apple silicon emulates SVE2; NEON is the faster path there.
		if hasSVE2 && runtime.GOOS != "darwin" {
			return SVE2
		}
		if hasASIMD {
			return NEON
		}
	case "amd64":
		if hasAVX512F && hasAVX512BW {
			return AVX512
		}
		if hasAVX2 {
			return AVX2
		}
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if BITVEC_SIMD was set to a recognized value.
func IsOverridden() bool {
	return hasOverride
}
