package domain

// Puzzle is one generated game: the board as dealt and its full solution.
// Board holds the givens; consumers work on their own copy (see the session
// package), so Board and Solution stay untouched and never alias each other.
type Puzzle struct {
	Difficulty Difficulty `json:"difficulty"`
	Board      Grid       `json:"board"`
	Solution   Grid       `json:"solution"`
}

// Given reports whether (row, col) was dealt filled and is therefore not
// player-editable.
func (p *Puzzle) Given(row, col int) bool {
	return p.Board[row][col] != 0
}
