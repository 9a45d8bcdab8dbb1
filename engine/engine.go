// Package engine implements the peg solitaire rules: board shape, jump
// validation and terminal-state detection.
package engine

import "pegsol/types"

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Shape    types.Shape // English (7x7) or European (9x9)
	Diagonal bool        // Allow diagonal jumps
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Shape:    types.English,
		Diagonal: false,
	}
}
