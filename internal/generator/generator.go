package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
	"github.com/dnellessen/terminal-sudoku/internal/ports"
	"github.com/dnellessen/terminal-sudoku/internal/solver"
)

// Removal count ranges per difficulty, both ends inclusive. Tuned so that at
// least 35 givens remain; much below 30 and solving time and the odds of
// multiple solutions climb steeply.
var removals = map[domain.Difficulty][2]int{
	domain.Easy:   {28, 34},
	domain.Medium: {34, 40},
	domain.Hard:   {40, 46},
}

// ErrSeedInvariant reports that a freshly seeded grid had no completion. A
// consistent seed always admits at least one full grid, so this can only
// mean the seeding step produced an inconsistent partial fill.
var ErrSeedInvariant = errors.New("generator: seeded grid has no completion")

// Randomized generates puzzles by seeding a partial grid by hand, completing
// it with a shuffled-order backtracking solver, and carving cells back out.
// Every call works on its own rand.Rand (rand.Rand is not safe for concurrent
// use); the shared source only hands out seeds, under the mutex.
type Randomized struct {
	mu     sync.Mutex
	src    *rand.Rand
	policy SeedPolicy
	unique ports.Solver // non-nil enables the post-carve uniqueness pass
}

// Option configures a Randomized generator.
type Option func(*Randomized)

// WithRand injects the random source. Tests pass a seeded rand.Rand here for
// reproducible puzzles.
func WithRand(rng *rand.Rand) Option {
	return func(g *Randomized) { g.src = rng }
}

// WithSeedPolicy selects how the first-block interior is seeded.
func WithSeedPolicy(p SeedPolicy) Option {
	return func(g *Randomized) { g.policy = p }
}

// WithUniquenessCheck restores carved cells until the puzzle has exactly one
// solution, using the given solver's up-to-2 counter. The base generator
// does not do this; enabling it is new behavior with no counterpart in the
// original removal step.
func WithUniquenessCheck(s ports.Solver) Option {
	return func(g *Randomized) { g.unique = s }
}

func NewRandomized(opts ...Option) *Randomized {
	g := &Randomized{
		src:    rand.New(rand.NewSource(time.Now().UnixNano())),
		policy: SeedLastValid,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// newRand derives a fresh per-call rand.Rand. Drawing the seed from the
// shared source keeps a fixed WithRand source producing a reproducible
// sequence of puzzles.
func (g *Randomized) newRand() *rand.Rand {
	g.mu.Lock()
	seed := g.src.Int63()
	g.mu.Unlock()
	return rand.New(rand.NewSource(seed))
}

// Generate produces a puzzle at the requested difficulty. The board is the
// solution with a difficulty-dependent number of cells blanked; solution and
// board are separate copies, so mutating one never touches the other.
func (g *Randomized) Generate(ctx context.Context, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	bounds, ok := removals[d]
	if !ok {
		return nil, ports.Stats{}, fmt.Errorf("generator: unknown difficulty %d", int(d))
	}

	rng := g.newRand()
	var grid domain.Grid
	g.seed(&grid, rng)

	s := solver.NewBacktrackingWithOrder(solver.Shuffled{Rng: rng})
	solved, st, err := s.Solve(ctx, &grid)
	if err != nil {
		return nil, st, err
	}
	if !solved {
		return nil, st, ErrSeedInvariant
	}
	solution := grid

	removed := carve(&grid, bounds, rng)
	nodes := st.Nodes
	if g.unique != nil {
		n, err := g.ensureUnique(ctx, &grid, &solution, removed)
		nodes += n
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
	}

	p := &domain.Puzzle{Difficulty: d, Board: grid, Solution: solution}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// carve zeroes a number of cells drawn uniformly from bounds. Positions are
// drawn with replacement; hitting an already empty cell is skipped, not
// counted. Returns the cleared cells in removal order.
func carve(grid *domain.Grid, bounds [2]int, rng *rand.Rand) []domain.CellCoord {
	target := bounds[0] + rng.Intn(bounds[1]-bounds[0]+1)
	removed := make([]domain.CellCoord, 0, target)
	for len(removed) < target {
		r, c := rng.Intn(9), rng.Intn(9)
		if grid[r][c] != 0 {
			grid[r][c] = 0
			removed = append(removed, domain.CellCoord{Row: r, Col: c})
		}
	}
	return removed
}

// ensureUnique puts carved cells back, most recently removed first, until
// the grid has exactly one completion. Restoring everything trivially ends
// the loop, so it always terminates.
func (g *Randomized) ensureUnique(ctx context.Context, grid *domain.Grid, solution *domain.Grid, removed []domain.CellCoord) (int, error) {
	nodes := 0
	for i := len(removed); ; i-- {
		ok, st, err := g.unique.Unique(ctx, *grid)
		nodes += st.Nodes
		if err != nil {
			return nodes, err
		}
		if ok || i == 0 {
			return nodes, nil
		}
		cell := removed[i-1]
		grid[cell.Row][cell.Col] = solution[cell.Row][cell.Col]
	}
}
