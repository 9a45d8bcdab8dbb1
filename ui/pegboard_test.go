package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"pegsol/config"
	"pegsol/engine"
	"pegsol/types"
)

func newTestBoard(t *testing.T, cfg engine.GameConfig) (*PegBoardUI, *tview.TextView) {
	t.Helper()
	c := config.DefaultConfig
	hint := tview.NewTextView()
	board := NewPegBoard(&c, hint)
	CreateGameLayout(board, hint)
	board.SetSession(engine.NewSession(cfg))
	return board, hint
}

func TestStatusFor(t *testing.T) {
	m := engine.Move{}
	tests := []struct {
		name string
		out  engine.Outcome
		err  error
		want string
	}{
		{"selected", engine.Outcome{Selection: engine.Selected}, nil, msgSelected},
		{"switched", engine.Outcome{Selection: engine.Switched}, nil, msgSwitched},
		{"deselected", engine.Outcome{Selection: engine.Deselected}, nil, msgDeselected},
		{"moved", engine.Outcome{Move: &m}, nil, msgMoved},
		{"empty", engine.Outcome{}, engine.ErrEmptyCell, msgEmptyHole},
		{"game over", engine.Outcome{}, engine.ErrGameOver, msgGameOver},
		{"illegal", engine.Outcome{}, engine.ErrIllegalJump, msgInvalid},
		{"occupied", engine.Outcome{}, engine.ErrTargetOccupied, msgInvalid},
		{"nothing to jump", engine.Outcome{}, engine.ErrNothingToJump, msgInvalid},
		{"wrapped", engine.Outcome{}, fmt.Errorf("click: %w", engine.ErrGameOver), msgGameOver},
	}
	for _, tt := range tests {
		if got := statusFor(tt.out, tt.err); got != tt.want {
			t.Errorf("%s: statusFor() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMoveCursorSkipsCorners(t *testing.T) {
	board, _ := newTestBoard(t, engine.DefaultConfig())

	board.MoveCursor(0, 1)
	if c := board.Cursor(); c == nil || *c != (types.Pos{Row: 3, Col: 3}) {
		t.Fatalf("first move should land on the center, got %v", c)
	}

	// Walk up to the top edge of the cross.
	for i := 0; i < 5; i++ {
		board.MoveCursor(-1, 0)
	}
	if c := board.Cursor(); *c != (types.Pos{Row: 0, Col: 3}) {
		t.Fatalf("cursor = %v, want (0,3)", c)
	}

	// (0,5) and (0,6) are outside the cross; the cursor stays put.
	board.MoveCursor(0, 1)
	board.MoveCursor(0, 1)
	if c := board.Cursor(); *c != (types.Pos{Row: 0, Col: 4}) {
		t.Fatalf("cursor = %v, want (0,4)", c)
	}

	// From (2,0) moving up skips the cut corner entirely and stays.
	board.curRow, board.curCol = 2, 0
	board.MoveCursor(-1, 0)
	if c := board.Cursor(); *c != (types.Pos{Row: 2, Col: 0}) {
		t.Fatalf("cursor = %v, want (2,0)", c)
	}
}

func TestActivatePlaysMove(t *testing.T) {
	board, hint := newTestBoard(t, engine.DefaultConfig())

	board.ActivateAt(1, 3)
	if !strings.Contains(hint.GetText(true), msgSelected) {
		t.Fatalf("hint = %q", hint.GetText(true))
	}

	board.ActivateAt(3, 3)
	if !strings.Contains(hint.GetText(true), msgMoved) {
		t.Fatalf("hint = %q", hint.GetText(true))
	}
	if got := board.MoveLog(); len(got) != 1 || got[0] != "d2-d4" {
		t.Fatalf("MoveLog() = %v", got)
	}
	if board.BoardState.PegsLeft != 31 || board.BoardState.MoveNumber != 1 {
		t.Fatalf("snapshot not refreshed: %+v", board.BoardState)
	}

	// Clicking outside the cross is ignored.
	board.ActivateAt(0, 0)
	if !strings.Contains(hint.GetText(true), msgMoved) {
		t.Fatalf("hint changed on void click: %q", hint.GetText(true))
	}

	// (3,3) cannot jump back over the emptied (2,3).
	board.ActivateAt(3, 3)
	board.ActivateAt(1, 3)
	if !strings.Contains(hint.GetText(true), msgInvalid) {
		t.Fatalf("hint = %q", hint.GetText(true))
	}
	if board.Session().Moves() != 1 {
		t.Fatal("invalid move must not count")
	}
}

func TestClearSelectionAndRestart(t *testing.T) {
	board, _ := newTestBoard(t, engine.DefaultConfig())

	if board.ClearSelection() {
		t.Fatal("nothing selected yet")
	}
	board.ActivateAt(5, 3)
	if !board.ClearSelection() {
		t.Fatal("expected the selection to be cleared")
	}
	if board.Session().Selected() != nil {
		t.Fatal("session still has a selection")
	}

	board.ActivateAt(5, 3)
	board.ActivateAt(3, 3)
	board.Restart()
	if board.Session().Moves() != 0 || len(board.MoveLog()) != 0 {
		t.Fatal("Restart should reset moves and the log")
	}
	if board.BoardState.PegsLeft != 32 {
		t.Fatalf("PegsLeft = %d, want 32", board.BoardState.PegsLeft)
	}
}

func TestToggleDiagonal(t *testing.T) {
	board, hint := newTestBoard(t, engine.DefaultConfig())
	if !board.ToggleDiagonal() || !board.Session().Diagonal() {
		t.Fatal("diagonal should be on")
	}
	if !strings.Contains(hint.GetText(true), "Diagonal moves enabled.") {
		t.Fatalf("hint = %q", hint.GetText(true))
	}
	if board.ToggleDiagonal() {
		t.Fatal("diagonal should be off")
	}
}

func TestDrawBoard(t *testing.T) {
	board, _ := newTestBoard(t, engine.DefaultConfig())
	board.ActivateAt(1, 3)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(40, 20)

	board.Box.SetRect(0, 0, 40, 20)
	board.Box.Draw(screen)

	cellAt := func(row, col int) (rune, tcell.Style) {
		ch, _, style, _ := screen.GetContent(boardLeft+col*2, row)
		return ch, style
	}

	if ch, _ := cellAt(0, 3); ch != '●' {
		t.Errorf("(0,3) = %q, want peg", ch)
	}
	if ch, _ := cellAt(3, 3); ch != '○' {
		t.Errorf("(3,3) = %q, want empty hole", ch)
	}
	if ch, _ := cellAt(0, 0); ch != ' ' {
		t.Errorf("(0,0) = %q, want blank", ch)
	}

	_, style := cellAt(1, 3)
	if _, bg, _ := style.Decompose(); bg != tcell.PaletteColor(config.DefaultTheme.Colors.SelectedColorBG) {
		t.Errorf("selected peg background = %v", bg)
	}

	// Column letters under the board, row numbers on the left.
	if ch, _, _, _ := screen.GetContent(boardLeft, 7); ch != 'a' {
		t.Errorf("column label = %q, want 'a'", ch)
	}
	if ch, _, _, _ := screen.GetContent(2, 0); ch != '1' {
		t.Errorf("row label = %q, want '1'", ch)
	}
}

func TestInfoPanel(t *testing.T) {
	board, _ := newTestBoard(t, engine.GameConfig{Shape: types.European, Diagonal: true})
	board.ActivateAt(2, 4)
	board.ActivateAt(4, 4)

	text := board.infoPanel.Box().GetText(true)
	for _, want := range []string{"European (9x9)", "Diagonal: on", "Moves: 1", "Pegs left: 43", "e3-e5"} {
		if !strings.Contains(text, want) {
			t.Errorf("info panel missing %q:\n%s", want, text)
		}
	}
}

func TestRating(t *testing.T) {
	mk := func(pegs int, center bool) *types.BoardState {
		s := engine.NewSession(engine.DefaultConfig()).BoardState()
		s.PegsLeft = pegs
		if center {
			s.Cells[3][3] = types.CellPeg
		}
		return s
	}
	tests := []struct {
		st   *types.BoardState
		want string
	}{
		{mk(1, true), "Perfect: one peg, in the center"},
		{mk(1, false), "Solved: one peg left"},
		{mk(3, false), "Very good"},
		{mk(5, false), "Good"},
		{mk(8, false), "8 pegs left"},
	}
	for _, tt := range tests {
		if got := rating(tt.st); got != tt.want {
			t.Errorf("rating(%d) = %q, want %q", tt.st.PegsLeft, got, tt.want)
		}
	}
}
