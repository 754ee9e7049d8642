package game

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Status identifies how the game stands or how it ended.
type Status int

const (
	InProgress Status = iota
	Checkmate
	FiftyMoveRule
	ThreefoldRepetition
	Stalemate
	InsufficientMaterial
	Resignation
	DrawByAgreement
	Timeout
	TimeoutDraw
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{
		"in progress", "checkmate", "fifty-move rule", "threefold repetition",
		"stalemate", "insufficient material", "resignation", "draw by agreement",
		"timeout", "timeout draw",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// IsDraw returns true for the statuses that end the game without a winner.
func (s Status) IsDraw() bool {
	switch s {
	case FiftyMoveRule, ThreefoldRepetition, Stalemate, InsufficientMaterial, DrawByAgreement, TimeoutDraw:
		return true
	}
	return false
}

// Status texts.
const (
	textInProgress           = "The game is in progress."
	textFiftyMoveRule        = "Draw due to the fifty-move rule."
	textThreefoldRepetition  = "Draw due to threefold repetition."
	textStalemate            = "Draw due to stalemate."
	textInsufficientMaterial = "Draw due to insufficient material."
	textDrawByAgreement      = "Draw by agreement."
	textTimeoutDraw          = "Draw due to timeout."
)

func checkmateText(winner chess.Colour) string {
	return fmt.Sprintf("%s won by checkmate.", winner)
}

func resignationText(loser chess.Colour) string {
	return fmt.Sprintf("%s resigned. %s won.", loser, loser.Opposite())
}

func timeoutText(winner chess.Colour) string {
	return fmt.Sprintf("%s won on time.", winner)
}
