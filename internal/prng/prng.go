package prng

import (
	"math/rand"
	"time"
)

var std *rand.Rand

// Default returns the process-wide generator, creating it on first use with a
// clock-derived seed. The generator is never reseeded and is not safe for
// concurrent use; callers that shuffle from multiple goroutines must
// synchronize externally or use their own seeded generator.
func Default() *rand.Rand {
	if std == nil {
		std = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return std
}
