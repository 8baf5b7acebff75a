package ports

import (
	"context"
	"time"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a grid in place and can count solutions. Solve returning
// false with a nil error means the grid has no legal completion; that is a
// normal outcome, not an error.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (bool, Stats, error)
	Unique(ctx context.Context, g domain.Grid) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, d domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator judges a candidate grid against the puzzle board it came from.
type Validator interface {
	Check(ctx context.Context, candidate, original *domain.Grid) (solved bool, conflicts []domain.CellCoord, err error)
}

// Hinter suggests the next logical placement, if one exists.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}
