package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bools returns n uniformly random booleans.
// Locks only once per call.
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Int63()&1 == 1
	}
	return out
}

// SparseBools returns n booleans where each is true with probability p.
func (r *RNG) SparseBools(n int, p float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < p
	}
	return out
}

// BitString returns a random string of n '0'/'1' characters.
func (r *RNG) BitString(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for _, b := range r.Bools(n) {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Reverse returns s with its bytes in reverse order. Handy for turning a
// []bool index order into the MSB-first String form.
func Reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// BoolsToString renders bits (index 0 first) in MSB-first order.
func BoolsToString(bits []bool) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
