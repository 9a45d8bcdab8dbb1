// Package ui specifies custom controls for tview to play peg solitaire in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"pegsol/config"
	"pegsol/engine"
	"pegsol/types"
)

// Status messages shown in the hint bar.
const (
	msgNewGame    = "New game started. Select a peg, then select an empty hole."
	msgRestarted  = "Game restarted. Select a peg, then select an empty hole."
	msgSelected   = "Peg selected. Now pick a destination empty hole."
	msgSwitched   = "Switched selection. Now pick a destination empty hole."
	msgDeselected = "Selection cleared. Select a peg."
	msgEmptyHole  = "That hole is empty. Select a peg first."
	msgMoved      = "Move made. Select a peg for the next move."
	msgMovedOver  = "Move made. Game over: no moves available."
	msgInvalid    = "Invalid move. Jump over exactly one peg into an empty hole."
	msgGameOver   = "Game over: no moves available. Start a New Game or Restart."
)

const boardLeft = 4 // columns reserved for row numbers

type PegBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	session    *engine.Session
	curRow     int
	curCol     int
	status     string
	moveLog    []string
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *PegBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *PegBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *PegBoardUI) IsFocusMode() bool {
	return g.focusMode
}

// Cursor returns the cursor position, or nil when hidden.
func (g *PegBoardUI) Cursor() *types.Pos {
	if g.curRow == -1 && g.curCol == -1 {
		return nil
	}
	return &types.Pos{Row: g.curRow, Col: g.curCol}
}

// MoveCursor moves the cursor by (dRow, dCol), skipping cells outside the
// cross. The first call after the cursor was hidden places it on the
// center hole.
func (g *PegBoardUI) MoveCursor(dRow, dCol int) {
	if g.session == nil {
		return
	}
	b := g.session.Board()
	if g.Cursor() == nil {
		mid := b.Size() / 2
		g.curRow, g.curCol = mid, mid
		return
	}
	r, c := g.curRow+dRow, g.curCol+dCol
	for b.InBounds(r, c) {
		if b.IsHole(r, c) {
			g.curRow, g.curCol = r, c
			return
		}
		r, c = r+dRow, c+dCol
	}
}

func (g *PegBoardUI) ResetCursor() {
	g.curRow = -1
	g.curCol = -1
}

func NewPegBoard(c *config.Config, hint *tview.TextView) *PegBoardUI {
	board := &PegBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		curRow:     -1,
		curCol:     -1,
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

func (g *PegBoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	state := g.BoardState
	if state == nil || state.Size() == 0 {
		return x, y, 1, 1
	}
	size := state.Size()
	theme := g.cfg.Theme

	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cell := state.At(r, c)
			if cell == types.CellVoid {
				continue
			}
			bg := g.styles[0]
			fg := g.styles[1]
			ch := theme.Symbols.Hole
			if cell == types.CellPeg {
				fg = g.styles[2]
				ch = theme.Symbols.Peg
			}

			switch {
			case r == g.curRow && c == g.curCol && theme.DrawCursorBackground:
				bg = g.styles[3]
			case state.Selected != nil && state.Selected.Row == r && state.Selected.Col == c:
				bg = g.styles[4]
			case state.LastMove != nil && state.LastMove[2] == (types.Pos{Row: r, Col: c}) && theme.DrawLastMovedBackground:
				bg = g.styles[5]
			}
			drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), ch, r, c, x+boardLeft, y)
		}
	}

	boardW, boardH := size*2, size
	if theme.ShowCoordinates {
		drawCoordinates(screen, x, y, g)
		boardH++
	}
	return x, y, boardW + boardLeft, boardH
}

// SetSession attaches a session to the board and resets the view.
func (g *PegBoardUI) SetSession(s *engine.Session) {
	g.session = s
	g.moveLog = nil
	g.ResetCursor()
	g.status = msgNewGame
	g.sync()
}

// Session returns the attached session.
func (g *PegBoardUI) Session() *engine.Session {
	return g.session
}

// MoveLog returns the moves played since the last reset, oldest first.
func (g *PegBoardUI) MoveLog() []string {
	return g.moveLog
}

// Activate clicks the cell under the cursor.
func (g *PegBoardUI) Activate() {
	if cur := g.Cursor(); cur != nil {
		g.ActivateAt(cur.Row, cur.Col)
	}
}

// ActivateAt clicks the cell at (row, col): select, deselect or jump.
func (g *PegBoardUI) ActivateAt(row, col int) {
	if g.session == nil {
		return
	}
	out, err := g.session.Click(row, col)
	if errors.Is(err, engine.ErrNotAHole) {
		return
	}
	g.status = statusFor(out, err)
	if out.Move != nil {
		g.moveLog = append(g.moveLog, out.Move.String())
		if g.session.State() == engine.GameOver {
			log.Info().
				Str("board", g.session.Shape().String()).
				Int("moves", g.session.Moves()).
				Int("pegs", g.session.PegCount()).
				Msg("game over")
		}
	}
	g.sync()
}

// statusFor maps the result of a click to the hint bar message.
func statusFor(out engine.Outcome, err error) string {
	switch {
	case errors.Is(err, engine.ErrGameOver):
		return msgGameOver
	case errors.Is(err, engine.ErrEmptyCell):
		return msgEmptyHole
	case err != nil:
		return msgInvalid
	case out.Move != nil:
		return msgMoved
	}
	switch out.Selection {
	case engine.Switched:
		return msgSwitched
	case engine.Deselected:
		return msgDeselected
	default:
		return msgSelected
	}
}

// ClearSelection drops the selected peg. Returns false if nothing was selected.
func (g *PegBoardUI) ClearSelection() bool {
	if g.session == nil {
		return false
	}
	sel := g.session.Selected()
	if sel == nil {
		return false
	}
	if _, err := g.session.SelectPeg(sel.Row, sel.Col); err != nil {
		return false
	}
	g.status = msgDeselected
	g.sync()
	return true
}

// ToggleDiagonal flips the diagonal-moves option and returns the new value.
func (g *PegBoardUI) ToggleDiagonal() bool {
	if g.session == nil {
		return false
	}
	enabled := !g.session.Diagonal()
	wasOver := g.session.State() == engine.GameOver
	g.session.SetDiagonal(enabled)
	if enabled {
		g.status = "Diagonal moves enabled."
	} else {
		g.status = "Diagonal moves disabled."
	}
	if !wasOver && g.session.State() == engine.GameOver {
		g.status = msgGameOver
	}
	log.Debug().Bool("diagonal", enabled).Msg("rule changed")
	g.sync()
	return enabled
}

// Restart resets the current board to the starting layout.
func (g *PegBoardUI) Restart() {
	if g.session == nil {
		return
	}
	g.session.Restart()
	g.moveLog = nil
	g.status = msgRestarted
	log.Info().Str("board", g.session.Shape().String()).Msg("game restarted")
	g.sync()
}

func (g *PegBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.HoleColor),         // 1
		tcell.PaletteColor(c.Theme.Colors.PegColor),          // 2
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 3
		tcell.PaletteColor(c.Theme.Colors.SelectedColorBG),   // 4
		tcell.PaletteColor(c.Theme.Colors.LastMovedColorBG),  // 5
		tcell.PaletteColor(c.Theme.Colors.CoordinateColorFG), // 6
	}
	g.cfg = c
}

// sync refreshes the snapshot, info panel and hint from the session.
func (g *PegBoardUI) sync() {
	if g.session != nil {
		g.BoardState = g.session.BoardState()
		if g.BoardState.Finished() && g.status == msgMoved {
			g.status = msgMovedOver
		}
	}
	g.refreshHint()
}

func (g *PegBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	controls := "  hjkl/↑↓←→ move   ⏎ select/jump   d diagonal   r restart   n new   q quit"
	if g.BoardState != nil && g.BoardState.Finished() {
		controls = "  r restart   n new game   q menu"
	}
	g.hint.SetText(fmt.Sprintf("  %s\n%s", g.status, controls))
}

// IsFinished returns true if the game is over.
func (g *PegBoardUI) IsFinished() bool {
	return g.BoardState != nil && g.BoardState.Finished()
}

// drawCell draws a board cell (2 characters wide).
func drawCell(s tcell.Screen, style tcell.Style, r rune, row, col, l, t int) {
	s.SetContent(l+col*2, t+row, r, nil, style)
	s.SetContent(l+col*2+1, t+row, ' ', nil, style)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *PegBoardUI) {
	size := ui.BoardState.Size()
	style := tcell.StyleDefault.Foreground(ui.styles[6])
	highlight := tcell.StyleDefault.Background(ui.styles[3])

	for c := 0; c < size; c++ {
		_style := style
		if c == ui.curCol {
			_style = highlight
		}
		s.SetContent(x+boardLeft+c*2, y+size, rune('a'+c), nil, _style)
	}

	for r := 0; r < size; r++ {
		_style := style
		if r == ui.curRow {
			_style = highlight
		}
		s.SetContent(x+2, y+r, rune('1'+r), nil, _style)
	}
}
