package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired color palette for the setup screen.
var MenuColors = struct {
	Border     tcell.Color // Muted blue-gray for borders
	Hint       tcell.Color // Dim gray for hints
	ButtonBG   tcell.Color // Button background
	ButtonText tcell.Color // Button text
}{
	Border:     tcell.PaletteColor(60),  // Muted blue-gray
	Hint:       tcell.PaletteColor(245), // Dim gray
	ButtonBG:   tcell.PaletteColor(60),  // Nord blue
	ButtonText: tcell.PaletteColor(255), // White
}
