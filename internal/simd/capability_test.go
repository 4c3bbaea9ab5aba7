package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISA(t *testing.T) {
	tests := []struct {
		in   string
		want ISA
		ok   bool
	}{
		{"generic", Generic, true},
		{" AVX2 ", AVX2, true},
		{"neon", NEON, true},
		{"sve2", SVE2, true},
		{"avx512", AVX512, true},
		{"mmx", Generic, false},
	}

	for _, tt := range tests {
		got, ok := ParseISA(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestISAString(t *testing.T) {
	assert.Equal(t, "generic", Generic.String())
	assert.Equal(t, "avx512", AVX512.String())
	assert.Equal(t, "unknown", ISA(99).String())
}

func TestOverrideGeneric(t *testing.T) {
	// Registered first so it runs after the env var is restored.
	t.Cleanup(initCapabilities)
	t.Setenv(EnvOverride, "generic")

	initCapabilities()

	assert.True(t, IsOverridden())
	assert.Equal(t, Generic, ActiveISA())
}
