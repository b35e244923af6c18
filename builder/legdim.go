// Package builder: leg-dimension policy.
package builder

import "math/rand"

// Regime thresholds on a uniform draw from [1, 100].
const (
	lowRegimeMax = 50 // [f, f²]
	midRegimeMax = 85 // [f², f³]; above: [f³, f⁴]
)

// RandomLegDim draws a closed-leg dimension for base factor f: with
// probability 50% from [f, f²], 35% from [f², f³] and 15% from [f³, f⁴],
// all bounds inclusive.
//
// Complexity: O(1). Deterministic for a fixed rng state.
func RandomLegDim(rng *rand.Rand, f int64) int64 {
	f2 := f * f
	f3 := f2 * f
	switch c := randint(rng, 1, 100); {
	case c <= lowRegimeMax:
		return randint(rng, f, f2)
	case c <= midRegimeMax:
		return randint(rng, f2, f3)
	default:
		return randint(rng, f3, f3*f)
	}
}

// OpenLegDim is the dimension of an open leg folding count logical
// indices: f^count.
func OpenLegDim(f int64, count int) int64 {
	d := int64(1)
	for i := 0; i < count; i++ {
		d *= f
	}
	return d
}

// randint returns a uniform integer in [lo, hi].
func randint(rng *rand.Rand, lo, hi int64) int64 {
	return lo + rng.Int63n(hi-lo+1)
}
