package generator

import (
	"math/rand"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
)

// SeedPolicy selects how the interior of the first block is filled during
// seeding.
type SeedPolicy int

const (
	// SeedLastValid keeps the last legal candidate in row-0 order for each
	// interior cell. This matches the distribution of the original
	// generator, which never broke out of its candidate loop.
	SeedLastValid SeedPolicy = iota

	// SeedFirstValid stops at the first legal candidate instead.
	SeedFirstValid
)

func (p SeedPolicy) String() string {
	if p == SeedFirstValid {
		return "first-valid"
	}
	return "last-valid"
}

// seed fills row 0, column 0, and the interior of the first block with a
// structurally valid random arrangement, leaving the other 69 cells empty.
// Seeding by hand instead of running the solver on an empty grid keeps the
// result from skewing toward the solver's candidate ordering.
func (g *Randomized) seed(grid *domain.Grid, rng *rand.Rand) {
	row := perm9(rng)
	grid[0] = row

	// Column 0 starts from an independent permutation. The digit at row0[0]
	// leaves the pool, since it cannot repeat in the column. The digits at
	// row0[1] and row0[2] move to the tail of the pool: the front of the
	// pool seeds rows 1-2, which share the first block with those two cells
	// and must not duplicate them.
	p := perm9(rng)
	pool := p[:]
	pool = remove(pool, row[0])
	for i := 1; i < 3; i++ {
		pool = remove(pool, row[i])
		pool = append(pool, row[i])
	}
	// Rows 1-2 are now safe; reshuffle from index 3 on so rows 3-8 stay
	// random without disturbing that guarantee.
	tail := pool[3:]
	rng.Shuffle(len(tail), func(i, j int) { tail[i], tail[j] = tail[j], tail[i] })
	for r := 1; r < 9; r++ {
		grid[r][0] = pool[r-1]
	}

	// The four interior cells of the first block, iterating candidates in
	// row 0's order. Under SeedLastValid every legal candidate overwrites
	// the cell, so the last one in iteration order wins.
	for r := 1; r < 3; r++ {
		for c := 1; c < 3; c++ {
			for _, v := range row {
				if !grid.Possible(r, c, v) {
					continue
				}
				grid[r][c] = v
				if g.policy == SeedFirstValid {
					break
				}
			}
		}
	}
}

// perm9 deals 1..9 in uniformly random order.
func perm9(rng *rand.Rand) [9]uint8 {
	var p [9]uint8
	for i, v := range rng.Perm(9) {
		p[i] = uint8(v + 1)
	}
	return p
}

// remove drops the first occurrence of v, preserving order.
func remove(pool []uint8, v uint8) []uint8 {
	for i, x := range pool {
		if x == v {
			return append(pool[:i], pool[i+1:]...)
		}
	}
	return pool
}
