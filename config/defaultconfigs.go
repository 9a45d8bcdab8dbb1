package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:    true,
		DrawLastMovedBackground: true,
		ShowCoordinates:         true,
		Colors: ConfigColors{
			BoardColor:        180,
			HoleColor:         94,
			PegColor:          232,
			CursorColorBG:     4,
			SelectedColorBG:   2,
			LastMovedColorBG:  179,
			CoordinateColorFG: 245,
		},
		Symbols: ConfigSymbols{
			Peg:  '●',
			Hole: '○',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			Board:         "english",
			AllowDiagonal: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
