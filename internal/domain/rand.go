package domain

import "math/rand/v2"

// Rand supplies the perturbation terms used by damage scoring and the AQI
// stub. It is a package-level capability, mirroring the clock, so tests can
// swap in a fixed-sequence source and get bit-identical output.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

type realRand struct{}

func (realRand) Float64() float64 { return rand.Float64() }

var rng Rand = realRand{}

// SetRand swaps the random source. Pass nil to reset to the real one.
func SetRand(r Rand) {
	if r == nil {
		rng = realRand{}
		return
	}
	rng = r
}
