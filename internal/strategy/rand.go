package strategy

import "math/rand/v2"

// Rand is the source of every arbitrary choice a strategy makes.
// *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // it's ok
}

// NewRand returns the process-wide source for seed 0 and a seeded,
// reproducible source otherwise.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return globalRand{}
	}

	return rand.New(rand.NewPCG(seed, seed)) //nolint: gosec // it's ok
}

func pick[T any](rnd Rand, items []T) T {
	return items[rnd.IntN(len(items))]
}
