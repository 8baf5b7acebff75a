package solver

import "math/rand"

// OrderPolicy yields the candidate digits tried at one cell. The solver
// calls it once per visited cell, so a randomized policy re-permutes at
// every level of the recursion.
type OrderPolicy interface {
	Candidates(dst *[9]uint8)
}

// Sequential yields 1..9 ascending. Solving with it is fully deterministic:
// an all-empty grid always completes to the same canonical solution.
type Sequential struct{}

func (Sequential) Candidates(dst *[9]uint8) {
	for i := range dst {
		dst[i] = uint8(i + 1)
	}
}

// Shuffled yields a fresh permutation of 1..9 on every call. This is what
// makes generated solutions vary run to run.
type Shuffled struct {
	Rng *rand.Rand
}

func (s Shuffled) Candidates(dst *[9]uint8) {
	for i := range dst {
		dst[i] = uint8(i + 1)
	}
	s.Rng.Shuffle(9, func(i, j int) { dst[i], dst[j] = dst[j], dst[i] })
}
