package hint

import (
	"context"
	"fmt"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles: empty
// cells with exactly one legal candidate.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single in row-major order.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if err := g.Validate(); err != nil {
		return domain.Hint{}, false, err
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				continue
			}
			if d, ok := soleCandidate(g, r, c); ok {
				return domain.Hint{
					Message: fmt.Sprintf("only %d fits at row %d, column %d", d, r+1, c+1),
					Cell:    domain.CellCoord{Row: r, Col: c},
					Digit:   d,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(g *domain.Grid, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for d := uint8(1); d <= 9; d++ {
		if g.Possible(r, c, d) {
			last = d
			count++
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
