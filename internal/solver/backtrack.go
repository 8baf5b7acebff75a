package solver

import (
	"context"
	"time"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
	"github.com/dnellessen/terminal-sudoku/internal/ports"
)

// Backtracking is a plain recursive depth-first solver. Sudoku's constraint
// density prunes the tree early enough that no propagation or memoization is
// worth the complexity at this size.
type Backtracking struct {
	order OrderPolicy
}

// NewBacktracking returns a solver with deterministic candidate ordering.
func NewBacktracking() *Backtracking {
	return &Backtracking{order: Sequential{}}
}

// NewBacktrackingWithOrder returns a solver using the given candidate
// ordering. The generator passes a Shuffled policy here.
func NewBacktrackingWithOrder(p OrderPolicy) *Backtracking {
	return &Backtracking{order: p}
}

// Solve completes g in place and reports whether a full legal assignment was
// found. On false every tentative placement has been undone, so the grid is
// back in its starting state. A canceled context surfaces as ctx.Err() so it
// is never mistaken for "no completion".
func (s *Backtracking) Solve(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	if err := g.Validate(); err != nil {
		return false, ports.Stats{}, err
	}
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := g.FindEmpty()
		if !ok {
			return true
		}
		var cand [9]uint8
		s.order.Candidates(&cand)
		for _, v := range cand {
			nodes++
			if g.Possible(r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	ok := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok && ctx.Err() != nil {
		return false, st, ctx.Err()
	}
	return ok, st, nil
}
