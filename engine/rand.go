package engine

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// SeededRand builds a deterministic PCG source from a single seed
// Non-cryptographic PRNG is intentional for reproducible simulation behavior
func SeededRand(seed int64) *rand.Rand {
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// RandDuration draws a uniformly random duration in [min, max] inclusive
func RandDuration(rng *rand.Rand, min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rng.Int64N(int64(max-min)+1))
}

// RandImpulse draws a single impulse axis component in [-magnitude, magnitude]
func RandImpulse(rng *rand.Rand, magnitude float64) float64 {
	return (rng.Float64()*2 - 1) * magnitude
}
