package validator

import (
	"context"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
)

// Rules checks a candidate grid against the Sudoku constraints.
type Rules struct{}

func New() *Rules { return &Rules{} }

// Check judges every filled cell of candidate against all of its row,
// column, and block peers. Empty cells leave the board unsolved but are
// never conflicts. A violating cell is reported only where original is
// empty: givens came from a solved grid and are not the player's to fix, so
// they are never flagged even if tampered with. Conflicts come back in
// row-major order.
func (v *Rules) Check(ctx context.Context, candidate, original *domain.Grid) (bool, []domain.CellCoord, error) {
	if err := candidate.Validate(); err != nil {
		return false, nil, err
	}
	if err := original.Validate(); err != nil {
		return false, nil, err
	}
	solved := true
	conflicts := make([]domain.CellCoord, 0, 8)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			d := candidate[r][c]
			if d == 0 {
				solved = false
				continue
			}
			if candidate.Possible(r, c, d) {
				continue
			}
			solved = false
			if original[r][c] == 0 {
				conflicts = append(conflicts, domain.CellCoord{Row: r, Col: c})
			}
		}
	}
	return solved, conflicts, nil
}
