package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"golang.org/x/exp/slices"
)

// MatingMaterial reports which sides still have enough material to mate.
type MatingMaterial struct {
	WhiteCanMate bool
	BlackCanMate bool
}

// Sufficient returns true if at least one side can still mate.
func (m MatingMaterial) Sufficient() bool {
	return m.WhiteCanMate || m.BlackCanMate
}

// CanMate returns the entry for the given colour.
func (m MatingMaterial) CanMate(colour chess.Colour) bool {
	if colour == chess.White {
		return m.WhiteCanMate
	}
	return m.BlackCanMate
}

// Piece sets, as sorted FEN letters, that cannot force mate on their own.
var (
	whiteBareSets = []string{"K", "KN", "BK"}
	blackBareSets = []string{"k", "kn", "bk"}
)

// ResolveMatingMaterial collects each side's piece letters, sorts them and
// compares them against the bare king, king and knight, and king and bishop
// sets. Pawns, rooks and queens always count as mating material.
func ResolveMatingMaterial(board *chess.Board) MatingMaterial {
	white := pieceLetters(board, chess.White)
	black := pieceLetters(board, chess.Black)
	return MatingMaterial{
		WhiteCanMate: !slices.Contains(whiteBareSets, white),
		BlackCanMate: !slices.Contains(blackBareSets, black),
	}
}

// pieceLetters returns the sorted FEN letters of the colour's pieces.
func pieceLetters(board *chess.Board, colour chess.Colour) string {
	var letters []byte
	for _, p := range board.Pieces(colour) {
		letters = append(letters, p.Letter())
	}
	slices.Sort(letters)
	return string(letters)
}

// IsCheckmate returns true if the side to move is in check and has no legal moves.
func IsCheckmate(board *chess.Board, ctx MoveContext) bool {
	return IsInCheck(board, ctx.ToMove) && !HasLegalMoves(board, ctx)
}

// IsStalemate returns true if the side to move is not in check but has no legal moves.
func IsStalemate(board *chess.Board, ctx MoveContext) bool {
	return !IsInCheck(board, ctx.ToMove) && !HasLegalMoves(board, ctx)
}
