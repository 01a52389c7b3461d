package wheel

import (
	"math/rand"
	"time"
)

// ForcedIndex is the list position rig mode lands on: the 4th name.
const ForcedIndex = 3

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// NewRNG returns a math/rand source seeded with seed, or with the current
// time when seed is 0. The result is not safe for concurrent use; the
// controller serialises access to it.
func NewRNG(seed int64) RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Rigged reports whether rig mode applies to an n-name list.
func Rigged(n int, rigMode bool) bool {
	return rigMode && n > ForcedIndex
}

// Select picks the winning index for one spin. With rig mode on and more
// than ForcedIndex names it always returns ForcedIndex; otherwise it draws
// uniformly from [0, n). n must be at least 1.
func Select(n int, rigMode bool, rng RNG) int {
	if Rigged(n, rigMode) {
		return ForcedIndex
	}
	return rng.Intn(n)
}
