package solver

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
	"github.com/dnellessen/terminal-sudoku/internal/validator"
)

// A classic, solvable Sudoku (0 = empty).
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// The completion a sequential-order search finds for the all-empty grid.
// Fixed scan order plus lowest-candidate-first makes this a stable
// regression oracle.
var canonical = domain.Grid{
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

func TestSolveSample(t *testing.T) {
	g := sample
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	solved, st, err := NewBacktracking().Solve(ctx, &g)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if !solved {
		t.Fatal("sample grid reported unsolvable")
	}
	if !g.Complete() {
		t.Fatal("solved grid still has empty cells")
	}
	// givens untouched
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if sample[r][c] != 0 && g[r][c] != sample[r][c] {
				t.Fatalf("given at (%d,%d) changed from %d to %d", r, c, sample[r][c], g[r][c])
			}
		}
	}
	orig := sample
	ok, conf, err := validator.New().Check(ctx, &g, &orig)
	if err != nil || !ok {
		t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
	}
}

func TestSolveEmptyGridCanonical(t *testing.T) {
	var g domain.Grid
	solved, _, err := NewBacktracking().Solve(context.Background(), &g)
	if err != nil || !solved {
		t.Fatalf("Solve(empty) = %v, %v", solved, err)
	}
	if g != canonical {
		t.Fatalf("sequential solve of empty grid diverged from canonical oracle:\n%v", g)
	}
}

func TestSolveShuffledStillValid(t *testing.T) {
	var g domain.Grid
	s := NewBacktrackingWithOrder(Shuffled{Rng: rand.New(rand.NewSource(42))})
	solved, _, err := s.Solve(context.Background(), &g)
	if err != nil || !solved {
		t.Fatalf("Solve = %v, %v", solved, err)
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !g.Possible(r, c, g[r][c]) {
				t.Fatalf("cell (%d,%d)=%d violates a constraint", r, c, g[r][c])
			}
		}
	}
}

func TestSolveNoCompletion(t *testing.T) {
	// The canonical grid with a duplicate 2 planted in row 0 and the cell
	// that held the column's 2 cleared. Nothing legal fits the cleared cell.
	g := canonical
	g[0][0] = 2
	g[3][0] = 0
	before := g

	solved, _, err := NewBacktracking().Solve(context.Background(), &g)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if solved {
		t.Fatal("contradictory grid reported solved")
	}
	if g != before {
		t.Fatal("failed solve left tentative placements behind")
	}
}

func TestSolveInvalidInput(t *testing.T) {
	var g domain.Grid
	g[0][0] = 12
	if _, _, err := NewBacktracking().Solve(context.Background(), &g); !errors.Is(err, domain.ErrBadCell) {
		t.Fatalf("Solve = %v, want ErrBadCell", err)
	}
}

func TestSolveCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var g domain.Grid
	solved, _, err := NewBacktracking().Solve(ctx, &g)
	if solved {
		t.Fatal("canceled solve reported success")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Solve = %v, want context.Canceled", err)
	}
}

func TestUnique(t *testing.T) {
	s := NewBacktracking()

	g := canonical
	g[0][0] = 0
	ok, _, err := s.Unique(context.Background(), g)
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if !ok {
		t.Error("single blank cell should have a unique completion")
	}

	// Blank an unavoidable rectangle: digits 1 and 2 at rows 0 and 3,
	// columns 0 and 1, swappable without breaking any unit.
	g = canonical
	for _, cc := range [][2]int{{0, 0}, {0, 1}, {3, 0}, {3, 1}} {
		g[cc[0]][cc[1]] = 0
	}
	ok, _, err = s.Unique(context.Background(), g)
	if err != nil {
		t.Fatalf("Unique: %v", err)
	}
	if ok {
		t.Error("rectangle-blanked grid has two completions, reported unique")
	}
}
