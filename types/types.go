// Package types contains shared data structures for pegsol.
package types

import (
	"fmt"
	"strings"
)

// Shape selects one of the two supported cross-shaped boards.
type Shape int

const (
	English  Shape = iota // 7x7 cross, 33 holes
	European              // 9x9 cross, 45 holes
)

// Size returns the side length of the square grid the board lives in.
func (s Shape) Size() int {
	if s == European {
		return 9
	}
	return 7
}

// Offset returns the width of each corner block cut out of the grid.
func (s Shape) Offset() int {
	if s == European {
		return 3
	}
	return 2
}

func (s Shape) String() string {
	if s == European {
		return "european"
	}
	return "english"
}

// Title returns a human readable board name, e.g. "English (7x7)".
func (s Shape) Title() string {
	n := s.Size()
	if s == European {
		return fmt.Sprintf("European (%dx%d)", n, n)
	}
	return fmt.Sprintf("English (%dx%d)", n, n)
}

// ParseShape accepts "english"/"european" (case-insensitive) or the board size.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "english", "en", "7", "7x7":
		return English, nil
	case "european", "eu", "9", "9x9":
		return European, nil
	}
	return English, fmt.Errorf("unknown board %q", name)
}

// Pos is a cell on the board, 0-indexed from the top-left corner.
type Pos struct {
	Row int
	Col int
}

// Cell is the content of a single grid position.
type Cell int

const (
	CellVoid  Cell = iota // outside the cross
	CellEmpty             // hole without a peg
	CellPeg               // hole holding a peg
)

// Phase names used by BoardState.
const (
	PhaseAwaiting = "awaiting_selection"
	PhaseSelected = "peg_selected"
	PhaseFinished = "game_over"
)

// BoardState is a read-only snapshot of a session, indexed as Cells[row][col].
type BoardState struct {
	Shape      Shape
	MoveNumber int
	PegsLeft   int
	Diagonal   bool
	Phase      string
	Cells      [][]Cell
	Selected   *Pos
	LastMove   *[3]Pos // from, jumped, to
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// Size returns the side length of the board.
func (b *BoardState) Size() int {
	return len(b.Cells)
}

// At returns the cell at (row, col), or CellVoid when out of range.
func (b *BoardState) At(row, col int) Cell {
	if row < 0 || col < 0 || row >= len(b.Cells) || col >= len(b.Cells[row]) {
		return CellVoid
	}
	return b.Cells[row][col]
}
