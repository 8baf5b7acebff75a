package solver

import (
	"context"
	"time"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
	"github.com/dnellessen/terminal-sudoku/internal/ports"
)

// Unique counts completions of g up to 2 and reports whether exactly one
// exists. It works on its own copy and always searches in sequential order;
// ordering cannot change how many solutions there are.
func (s *Backtracking) Unique(ctx context.Context, g domain.Grid) (bool, ports.Stats, error) {
	start := time.Now()
	if err := g.Validate(); err != nil {
		return false, ports.Stats{}, err
	}
	nodes := 0
	count := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := g.FindEmpty()
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
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
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if ctx.Err() != nil {
		return false, st, ctx.Err()
	}
	return count == 1, st, nil
}
