package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"pegsol/types"
)

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
	moveLog    *[]string
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetMoveLog sets a pointer to the move log kept by the board.
func (p *GameInfoPanel) SetMoveLog(log *[]string) {
	p.moveLog = log
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	p.box.SetText(p.text())
}

func (p *GameInfoPanel) text() string {
	if p.boardState == nil || p.boardState.Size() == 0 {
		return ""
	}
	st := p.boardState

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"

	text += fmt.Sprintf("[white]Board:[-:-:-] %s\n", st.Shape.Title())
	diagonal := "off"
	if st.Diagonal {
		diagonal = "on"
	}
	text += fmt.Sprintf("[white]Diagonal:[-:-:-] %s\n", diagonal)
	text += fmt.Sprintf("[white]Moves:[-:-:-] %d\n", st.MoveNumber)
	text += fmt.Sprintf("[white]Pegs left:[-:-:-] %d\n", st.PegsLeft)

	if st.Finished() {
		text += "\n[yellow::b]Game Over[-:-:-]\n"
		text += fmt.Sprintf("[dimgray]%s[-]\n", rating(st))
	}

	if p.moveLog != nil && len(*p.moveLog) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		moves := *p.moveLog
		maxVisible := 12
		start := 0
		if len(moves) > maxVisible {
			start = len(moves) - maxVisible
		}

		for i := start; i < len(moves); i++ {
			marker := " "
			if i == len(moves)-1 {
				marker = "[white]>[-]"
			}
			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s\n", marker, i+1, moves[i])
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	return text
}

// rating describes a finished position by the pegs left on it.
func rating(st *types.BoardState) string {
	mid := st.Size() / 2
	switch {
	case st.PegsLeft == 1 && st.At(mid, mid) == types.CellPeg:
		return "Perfect: one peg, in the center"
	case st.PegsLeft == 1:
		return "Solved: one peg left"
	case st.PegsLeft <= 3:
		return "Very good"
	case st.PegsLeft <= 5:
		return "Good"
	default:
		return fmt.Sprintf("%d pegs left", st.PegsLeft)
	}
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *PegBoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, board, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *PegBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetMoveLog(&board.moveLog)
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// Horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 28, 0, false)

	// Board area on top, status bar at the bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 2, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *PegBoardUI) {
	gameFrame.Clear()

	boardWidth := 7*2 + boardLeft
	boardHeight := 7 + 1
	if board.BoardState != nil && board.BoardState.Size() > 0 {
		boardWidth = board.BoardState.Size()*2 + boardLeft
		boardHeight = board.BoardState.Size() + 1
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
