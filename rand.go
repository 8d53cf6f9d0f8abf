package main

import "math/rand/v2"

// Rand is a deterministic random number generator. The particle world must
// produce the same particles for the same recorded session, so every random
// decision goes through a Rand created from the session's seed, never through
// the global generator.
// Rand is a plain value: copying it produces a second generator that returns
// exactly the same numbers as the original from that point on.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9E3779B97F4A7C15)
	return
}

// RInt returns a random integer in the interval [min, max].
func (r *Rand) RInt(min int64, max int64) int64 {
	if max <= min {
		return min
	}
	return min + int64(r.pcg.Uint64()%uint64(max-min+1))
}

// RFloat returns a random float in the interval [min, max).
func (r *Rand) RFloat(min float64, max float64) float64 {
	if max <= min {
		return min
	}
	f := float64(r.pcg.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}
