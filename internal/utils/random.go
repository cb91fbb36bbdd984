package utils

import (
	"math/rand"
	"time"
)

// NewRand returns a generator private to one optimization run. A zero seed
// means seeding from the wall clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
