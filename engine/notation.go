package engine

import (
	"fmt"
	"strconv"
	"strings"

	"pegsol/types"
)

// Square notation:
// - Columns: a-i, left to right
// - Rows: 1-9, top to bottom
// - Example: d4 is the center of the English board, e5 of the European one
//
// A move is written as two squares joined by a dash, e.g. d2-d4.

// PosToLabel converts a 0-indexed position to square notation.
// (0, 0) -> a1, (1, 3) -> d2, (3, 3) -> d4
func PosToLabel(p types.Pos) string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.Col), p.Row+1)
}

// ParseLabel converts square notation to a position on a board of the
// given size.
func ParseLabel(label string, size int) (types.Pos, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) < 2 {
		return types.Pos{}, fmt.Errorf("invalid square: %q", label)
	}

	col := int(label[0] - 'a')
	if label[0] < 'a' || col >= size {
		return types.Pos{}, fmt.Errorf("invalid column in square: %q", label)
	}

	row, err := strconv.Atoi(label[1:])
	if err != nil {
		return types.Pos{}, fmt.Errorf("invalid row in square: %q", label)
	}
	if row < 1 || row > size {
		return types.Pos{}, fmt.Errorf("square out of bounds: %q", label)
	}

	return types.Pos{Row: row - 1, Col: col}, nil
}

// ParseMove parses "from-to" notation, e.g. "d2-d4".
func ParseMove(text string, size int) (from, to types.Pos, err error) {
	parts := strings.Split(strings.TrimSpace(text), "-")
	if len(parts) != 2 {
		return from, to, fmt.Errorf("invalid move: %q", text)
	}
	if from, err = ParseLabel(parts[0], size); err != nil {
		return from, to, err
	}
	if to, err = ParseLabel(parts[1], size); err != nil {
		return from, to, err
	}
	return from, to, nil
}

// Play selects from and jumps to to in one step, e.g. for scripted input.
// On error the selection is restored to what it was before the call.
func (s *Session) Play(from, to types.Pos) (Move, error) {
	prev := s.Selected()
	if s.selected == nil || *s.selected != from {
		if _, err := s.SelectPeg(from.Row, from.Col); err != nil {
			return Move{}, err
		}
	}
	m, err := s.AttemptMove(to.Row, to.Col)
	if err != nil {
		s.selected = prev
		return Move{}, err
	}
	return m, nil
}
