package adapt

import (
	"math/rand/v2"

	"github.com/authzed/lazyseq/pkg/cursor"
)

// Random returns a view of amount values drawn from sample. It is a
// generator whose producer happens to be a distribution/engine pair;
// dereferencing is deliberately non-idempotent, each pull draws a fresh
// value.
func Random[T any](sample func() T, amount int) cursor.View[T] {
	return Generate(sample, amount)
}

// RandomInt returns a view of amount integers drawn uniformly from the
// inclusive range [lo, hi].
func RandomInt(rng *rand.Rand, lo, hi, amount int) cursor.View[int] {
	return Random(func() int {
		return lo + rng.IntN(hi-lo+1)
	}, amount)
}

// RandomFloat64 returns a view of amount floats drawn uniformly from [0, 1).
func RandomFloat64(rng *rand.Rand, amount int) cursor.View[float64] {
	return Random(rng.Float64, amount)
}
