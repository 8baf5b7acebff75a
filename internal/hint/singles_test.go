package hint

import (
	"context"
	"errors"
	"testing"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
)

var full = domain.Grid{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{2, 1, 4, 3, 6, 5, 8, 9, 7},
	{3, 6, 5, 8, 9, 7, 2, 1, 4},
	{8, 9, 7, 2, 1, 4, 3, 6, 5},
	{5, 3, 1, 6, 4, 2, 9, 7, 8},
	{6, 4, 2, 9, 7, 8, 5, 3, 1},
	{9, 7, 8, 5, 3, 1, 6, 4, 2},
}

func TestHintNakedSingle(t *testing.T) {
	g := full
	g[4][4] = 0 // only 9 fits back in

	h, found, err := NewSingles().Hint(context.Background(), &g)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("expected a naked single")
	}
	if h.Cell != (domain.CellCoord{Row: 4, Col: 4}) || h.Digit != 9 {
		t.Fatalf("hint = %+v, want digit 9 at (4,4)", h)
	}
	if h.Message == "" {
		t.Error("hint carries no message")
	}
}

func TestHintNoneOnEmptyGrid(t *testing.T) {
	var g domain.Grid
	_, found, err := NewSingles().Hint(context.Background(), &g)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("empty grid has no naked single")
	}
}

func TestHintInvalidInput(t *testing.T) {
	var g domain.Grid
	g[0][0] = 10
	if _, _, err := NewSingles().Hint(context.Background(), &g); !errors.Is(err, domain.ErrBadCell) {
		t.Fatalf("Hint = %v, want ErrBadCell", err)
	}
}
