package model

import "math/rand/v2"

// NewRand returns a PCG-backed source for the given seed. The process seeds
// it once at startup; tests pass fixed seeds.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>32|1))
}
