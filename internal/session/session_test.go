package session

import (
	"errors"
	"testing"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
)

func puzzleFixture() *domain.Puzzle {
	solution := domain.Grid{
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
	board := solution
	board[0][0] = 0
	board[4][4] = 0
	return &domain.Puzzle{Difficulty: domain.Easy, Board: board, Solution: solution}
}

func TestSetRespectsGivens(t *testing.T) {
	s := New(puzzleFixture())
	if err := s.Set(0, 1, 5); !errors.Is(err, ErrFixedCell) {
		t.Fatalf("writing a given: err = %v, want ErrFixedCell", err)
	}
	if err := s.Set(0, 0, 5); err != nil {
		t.Fatalf("writing an empty cell: %v", err)
	}
	if got := s.Board()[0][0]; got != 5 {
		t.Fatalf("board[0][0] = %d, want 5", got)
	}
	if err := s.Clear(0, 0); err != nil {
		t.Fatal(err)
	}
	if got := s.Board()[0][0]; got != 0 {
		t.Fatalf("cleared cell holds %d", got)
	}
}

func TestSetOutOfRange(t *testing.T) {
	s := New(puzzleFixture())
	for _, tc := range [][3]int{{-1, 0, 1}, {0, 9, 1}, {0, 0, 10}} {
		if err := s.Set(tc[0], tc[1], uint8(tc[2])); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Set(%d,%d,%d) = %v, want ErrOutOfRange", tc[0], tc[1], tc[2], err)
		}
	}
}

func TestSessionDoesNotMutatePuzzle(t *testing.T) {
	p := puzzleFixture()
	dealt := p.Board
	s := New(p)
	if err := s.Set(0, 0, 7); err != nil {
		t.Fatal(err)
	}
	if p.Board != dealt {
		t.Fatal("session write leaked into the puzzle board")
	}
}

func TestCursorWraps(t *testing.T) {
	s := New(puzzleFixture())
	if cc := s.Move(-1, 0); cc.Row != 8 {
		t.Fatalf("moving up from row 0 gave row %d, want 8", cc.Row)
	}
	if cc := s.Move(1, 0); cc.Row != 0 {
		t.Fatalf("moving back down gave row %d, want 0", cc.Row)
	}
	if cc := s.Move(0, -1); cc.Col != 8 {
		t.Fatalf("moving left from col 0 gave col %d, want 8", cc.Col)
	}
	if cc := s.Move(0, 1); cc.Col != 0 {
		t.Fatalf("moving back right gave col %d, want 0", cc.Col)
	}
}

func TestReveal(t *testing.T) {
	p := puzzleFixture()
	s := New(p)
	s.Reveal()
	if s.Board() != p.Solution {
		t.Fatal("Reveal did not copy the solution")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	id1 := r.Open(New(puzzleFixture()))
	id2 := r.Open(New(puzzleFixture()))
	if id1 == id2 {
		t.Fatal("registry handed out duplicate ids")
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	if _, err := r.Get(id1); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(unknown) = %v, want ErrNotFound", err)
	}
	r.Close(id1)
	if _, err := r.Get(id1); !errors.Is(err, ErrNotFound) {
		t.Fatal("closed session still retrievable")
	}
	r.Close("nope") // no-op
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}
