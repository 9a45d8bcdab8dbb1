package engine

import (
	"fmt"

	"pegsol/types"
)

// State is the position of a Session in its select/move cycle.
type State int

const (
	AwaitingSelection State = iota
	PegSelected
	GameOver
)

func (s State) String() string {
	switch s {
	case PegSelected:
		return types.PhaseSelected
	case GameOver:
		return types.PhaseFinished
	default:
		return types.PhaseAwaiting
	}
}

// Selection describes what a successful SelectPeg did.
type Selection int

const (
	Selected Selection = iota + 1
	Switched
	Deselected
)

// Move is a completed jump.
type Move struct {
	From types.Pos
	Over types.Pos
	To   types.Pos
}

func (m Move) String() string {
	return fmt.Sprintf("%s-%s", PosToLabel(m.From), PosToLabel(m.To))
}

// Outcome is the result of a Click: either a selection change or a move.
type Outcome struct {
	Selection Selection // zero when a move was made
	Move      *Move
}

// Session holds one board plus the move counter, the diagonal option and
// the pending selection. All mutation goes through its methods.
type Session struct {
	board    *Board
	moves    int
	diagonal bool
	selected *types.Pos
	lastMove *Move
	over     bool
}

// NewSession creates a session with a freshly initialized board.
func NewSession(cfg GameConfig) *Session {
	s := &Session{diagonal: cfg.Diagonal}
	s.NewGame(cfg.Shape)
	return s
}

// NewGame rebuilds the board for shape and resets counters and selection.
func (s *Session) NewGame(shape types.Shape) {
	s.board = NewBoard(shape)
	s.reset()
}

// Restart refills the current board with the starting layout.
func (s *Session) Restart() {
	s.board.fill()
	s.reset()
}

func (s *Session) reset() {
	s.moves = 0
	s.selected = nil
	s.lastMove = nil
	s.over = !s.board.HasMove(s.diagonal)
}

// Board returns the session's board. It has no exported mutators.
func (s *Session) Board() *Board {
	return s.board
}

// Shape returns the shape of the current board.
func (s *Session) Shape() types.Shape {
	return s.board.shape
}

// Moves returns the number of successful moves since the last reset.
func (s *Session) Moves() int {
	return s.moves
}

// PegCount returns the number of pegs left on the board.
func (s *Session) PegCount() int {
	return s.board.PegCount()
}

// Diagonal reports whether diagonal jumps are allowed.
func (s *Session) Diagonal() bool {
	return s.diagonal
}

// SetDiagonal toggles diagonal jumps. A live game left with no legal jump
// under the new rule ends immediately; a finished game stays finished.
func (s *Session) SetDiagonal(enabled bool) {
	s.diagonal = enabled
	if !s.over && s.IsTerminal() {
		s.over = true
		s.selected = nil
	}
}

// Selected returns the selected peg, or nil.
func (s *Session) Selected() *types.Pos {
	if s.selected == nil {
		return nil
	}
	p := *s.selected
	return &p
}

// LastMove returns the most recent move, or nil.
func (s *Session) LastMove() *Move {
	if s.lastMove == nil {
		return nil
	}
	m := *s.lastMove
	return &m
}

// State returns the current state.
func (s *Session) State() State {
	switch {
	case s.over:
		return GameOver
	case s.selected != nil:
		return PegSelected
	default:
		return AwaitingSelection
	}
}

// IsTerminal reports whether no peg has a legal jump under the current
// diagonal setting.
func (s *Session) IsTerminal() bool {
	return !s.board.HasMove(s.diagonal)
}

// SelectPeg picks the peg at (row, col) as the source of the next move.
// Selecting the already-selected peg clears the selection.
func (s *Session) SelectPeg(row, col int) (Selection, error) {
	if s.over {
		return 0, ErrGameOver
	}
	if !s.board.IsHole(row, col) {
		return 0, ErrNotAHole
	}
	if !s.board.HasPeg(row, col) {
		return 0, ErrEmptyCell
	}

	pos := types.Pos{Row: row, Col: col}
	switch {
	case s.selected == nil:
		s.selected = &pos
		return Selected, nil
	case *s.selected == pos:
		s.selected = nil
		return Deselected, nil
	default:
		s.selected = &pos
		return Switched, nil
	}
}

// AttemptMove jumps the selected peg to (row, col). On any error the board,
// counter and selection are left untouched.
func (s *Session) AttemptMove(row, col int) (Move, error) {
	if s.over {
		return Move{}, ErrGameOver
	}
	if s.selected == nil {
		return Move{}, ErrNoSelection
	}
	if !s.board.IsHole(row, col) {
		return Move{}, ErrNotAHole
	}
	if s.board.HasPeg(row, col) {
		return Move{}, ErrTargetOccupied
	}

	from := *s.selected
	dr, dc := row-from.Row, col-from.Col
	if !s.legalVector(dr, dc) {
		return Move{}, ErrIllegalJump
	}

	over := types.Pos{Row: from.Row + dr/2, Col: from.Col + dc/2}
	if !s.board.HasPeg(over.Row, over.Col) {
		return Move{}, ErrNothingToJump
	}

	s.board.setPeg(from.Row, from.Col, false)
	s.board.setPeg(over.Row, over.Col, false)
	s.board.setPeg(row, col, true)

	m := Move{From: from, Over: over, To: types.Pos{Row: row, Col: col}}
	s.moves++
	s.selected = nil
	s.lastMove = &m
	if s.IsTerminal() {
		s.over = true
	}
	return m, nil
}

func (s *Session) legalVector(dr, dc int) bool {
	adr, adc := abs(dr), abs(dc)
	if (adr == 2 && dc == 0) || (adc == 2 && dr == 0) {
		return true
	}
	return s.diagonal && adr == 2 && adc == 2
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Click routes one cell activation the way a board click behaves: pick a
// peg, toggle or switch the selection, or jump into an empty hole.
func (s *Session) Click(row, col int) (Outcome, error) {
	if s.over {
		return Outcome{}, ErrGameOver
	}
	if s.selected != nil && s.board.IsHole(row, col) && !s.board.HasPeg(row, col) {
		m, err := s.AttemptMove(row, col)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Move: &m}, nil
	}
	sel, err := s.SelectPeg(row, col)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Selection: sel}, nil
}

// BoardState returns a snapshot of the session for rendering.
func (s *Session) BoardState() *types.BoardState {
	state := &types.BoardState{
		Shape:      s.board.shape,
		MoveNumber: s.moves,
		PegsLeft:   s.board.PegCount(),
		Diagonal:   s.diagonal,
		Phase:      s.State().String(),
		Cells:      s.board.Cells(),
		Selected:   s.Selected(),
	}
	if s.lastMove != nil {
		state.LastMove = &[3]types.Pos{s.lastMove.From, s.lastMove.Over, s.lastMove.To}
	}
	return state
}
