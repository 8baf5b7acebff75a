// Package session holds the play state the original terminal UI kept in
// process-wide globals: the working board, the cursor, and which cells the
// player may edit. A Session owns its Puzzle by composition and never
// mutates it.
package session

import (
	"errors"

	"github.com/dnellessen/terminal-sudoku/internal/domain"
)

var (
	// ErrFixedCell rejects writes to givens.
	ErrFixedCell = errors.New("session: cell is a given")
	// ErrOutOfRange rejects coordinates or digits outside the board.
	ErrOutOfRange = errors.New("session: coordinate or digit out of range")
	// ErrNotFound means the registry has no session under that id.
	ErrNotFound = errors.New("session: no such session")
)

// Session is one player's view of a puzzle. It is not safe for concurrent
// use; all grid operations assume exclusive sequential access.
type Session struct {
	puzzle   *domain.Puzzle
	board    domain.Grid
	cursor   domain.CellCoord
	editable [9][9]bool
}

func New(p *domain.Puzzle) *Session {
	s := &Session{puzzle: p, board: p.Board}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			s.editable[r][c] = !p.Given(r, c)
		}
	}
	return s
}

// Puzzle returns the underlying puzzle. Its board and solution are the
// originals as dealt, not the player's working copy.
func (s *Session) Puzzle() *domain.Puzzle { return s.puzzle }

// Board returns a snapshot of the working grid.
func (s *Session) Board() domain.Grid { return s.board }

// Cursor returns the current cursor position.
func (s *Session) Cursor() domain.CellCoord { return s.cursor }

// Editable reports whether the player may write to (row, col).
func (s *Session) Editable(row, col int) bool {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		return false
	}
	return s.editable[row][col]
}

// Move shifts the cursor by (dr, dc), wrapping at the board edges the way
// the arrow keys did in the terminal UI.
func (s *Session) Move(dr, dc int) domain.CellCoord {
	s.cursor.Row = wrap(s.cursor.Row + dr)
	s.cursor.Col = wrap(s.cursor.Col + dc)
	return s.cursor
}

func wrap(i int) int {
	if i < 0 {
		return 8
	}
	if i > 8 {
		return 0
	}
	return i
}

// Set writes digit into (row, col) on the working board. Digit 0 clears the
// cell. Writes to givens are rejected.
func (s *Session) Set(row, col int, digit uint8) error {
	if row < 0 || row > 8 || col < 0 || col > 8 || digit > 9 {
		return ErrOutOfRange
	}
	if !s.editable[row][col] {
		return ErrFixedCell
	}
	s.board[row][col] = digit
	return nil
}

// Clear empties (row, col) if the player may edit it.
func (s *Session) Clear(row, col int) error {
	return s.Set(row, col, 0)
}

// Reveal copies the solution into the working board.
func (s *Session) Reveal() {
	s.board = s.puzzle.Solution
}
