package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"pegsol/engine"
	"pegsol/types"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()

	shape    types.Shape
	diagonal bool
}

// NewGameSetup creates a new game setup form preselected with defaults.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:  onStart,
		onCancel: onCancel,
		shape:    defaults.Shape,
		diagonal: defaults.Diagonal,
	}

	boards := []string{types.English.Title(), types.European.Title()}

	form := tview.NewForm()

	form.AddDropDown("Board", boards, int(defaults.Shape), func(option string, index int) {
		setup.shape = types.Shape(index)
	})

	form.AddCheckbox("Allow diagonal moves", defaults.Diagonal, func(checked bool) {
		setup.diagonal = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.Config())
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Config returns the game configuration currently chosen in the form.
func (s *GameSetupUI) Config() engine.GameConfig {
	return engine.GameConfig{
		Shape:    s.shape,
		Diagonal: s.diagonal,
	}
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
