package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Grid is a 9x9 Sudoku board. Zero marks an empty cell. Grids are plain
// arrays, so assignment always deep-copies.
type Grid [9][9]uint8

// ErrBadCell is wrapped by Validate for any cell value outside 0..9.
var ErrBadCell = errors.New("cell value out of range")

// ErrBadGrid is returned by ParseGrid for malformed textual input.
var ErrBadGrid = errors.New("malformed grid")

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a suggested placement for the UI.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Digit   uint8     `json:"digit"`
}

// Validate fails fast if any cell holds a value above 9. Dimensions are
// fixed by the array type, so values are the only thing to guard.
func (g *Grid) Validate() error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] > 9 {
				return fmt.Errorf("%w: %d at row %d, col %d", ErrBadCell, g[r][c], r, c)
			}
		}
	}
	return nil
}

// Possible reports whether digit may occupy (row, col) without clashing with
// another cell in the same row, column, or 3x3 block. The cell itself is
// excluded from the comparison, so a digit already in place never rejects
// itself.
func (g *Grid) Possible(row, col int, digit uint8) bool {
	for c := 0; c < 9; c++ {
		if g[row][c] == digit && c != col {
			return false
		}
	}
	for r := 0; r < 9; r++ {
		if g[r][col] == digit && r != row {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if g[r][c] == digit && (r != row || c != col) {
				return false
			}
		}
	}
	return true
}

// FindEmpty returns the first empty cell in row-major order. The fixed scan
// order keeps solving deterministic when candidate ordering is not
// randomized.
func (g *Grid) FindEmpty() (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Complete reports whether the grid has no empty cells.
func (g *Grid) Complete() bool {
	_, _, empty := g.FindEmpty()
	return !empty
}

// ParseGrid reads the textual form used by the CLI: nine rows of nine
// digits, '0' or '.' for empty, spaces and blank lines ignored.
func ParseGrid(s string) (Grid, error) {
	var g Grid
	rows := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rows == 9 {
			return Grid{}, fmt.Errorf("%w: more than 9 rows", ErrBadGrid)
		}
		cols := 0
		for _, ch := range line {
			switch {
			case ch == ' ' || ch == '\t' || ch == '|':
				continue
			case ch == '.':
				ch = '0'
			case ch < '0' || ch > '9':
				return Grid{}, fmt.Errorf("%w: unexpected %q in row %d", ErrBadGrid, ch, rows)
			}
			if cols == 9 {
				return Grid{}, fmt.Errorf("%w: more than 9 columns in row %d", ErrBadGrid, rows)
			}
			g[rows][cols] = uint8(ch - '0')
			cols++
		}
		if cols != 9 {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns", ErrBadGrid, rows, cols)
		}
		rows++
	}
	if rows != 9 {
		return Grid{}, fmt.Errorf("%w: got %d rows", ErrBadGrid, rows)
	}
	return g, nil
}

// String renders the grid in the same textual form ParseGrid accepts, with
// '.' for empty cells.
func (g Grid) String() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + g[r][c])
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
