package engine

import (
	"errors"
	"fmt"
)

// Reason identifies why a selection or move was rejected.
type Reason int

const (
	NoSelection Reason = iota + 1
	NotAHole
	EmptyCell
	TargetOccupied
	IllegalJump
	NothingToJump
	GameAlreadyOver
)

var reasonText = map[Reason]string{
	NoSelection:     "no peg selected",
	NotAHole:        "not a hole",
	EmptyCell:       "empty cell, not a peg",
	TargetOccupied:  "destination is occupied",
	IllegalJump:     "not a two-cell jump in an allowed direction",
	NothingToJump:   "no peg to jump over",
	GameAlreadyOver: "game is over",
}

func (r Reason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return "unknown"
}

// RejectedError is returned when a selection or move is refused. The board
// is never modified when one is returned.
type RejectedError struct {
	Reason Reason
}

func (e *RejectedError) Error() string {
	if e.Reason == EmptyCell || e.Reason == NotAHole {
		return fmt.Sprintf("rejected: %s", e.Reason)
	}
	return fmt.Sprintf("invalid move: %s", e.Reason)
}

var (
	ErrNoSelection    = &RejectedError{NoSelection}
	ErrNotAHole       = &RejectedError{NotAHole}
	ErrEmptyCell      = &RejectedError{EmptyCell}
	ErrTargetOccupied = &RejectedError{TargetOccupied}
	ErrIllegalJump    = &RejectedError{IllegalJump}
	ErrNothingToJump  = &RejectedError{NothingToJump}
	ErrGameOver       = &RejectedError{GameAlreadyOver}
)

// IsRejected reports whether err is a rejection from the engine.
func IsRejected(err error) bool {
	var re *RejectedError
	return errors.As(err, &re)
}
