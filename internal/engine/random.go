package engine

import (
	"math/rand"
	"time"
)

// Random is the source used for tile spawning.
// *rand.Rand satisfies it; tests supply scripted sequences.
type Random interface {
	// Intn returns an int in [0, n).
	Intn(n int) int
	// Float64 returns a float in [0.0, 1.0).
	Float64() float64
}

// NewRandom returns a math/rand source. A zero seed uses the current time.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
