package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates the pawn's pushes, double push, captures and en
// passant captures, in that order, left diagonal before right.
func pawnMoves(board *chess.Board, pawn *chess.Piece, enPassant string) []chess.Move {
	var moves []chess.Move
	from := pawn.Square
	dir := pawn.Colour.Forward()

	// Any move onto the far rank promotes.
	special := chess.NoSpecial
	if from.Y+dir == pawn.Colour.PromotionRank() {
		special = chess.Promotion
	}

	to := from.Add(0, dir)
	if to.InBounds() && board.Get(to) == nil {
		moves = append(moves, chess.Move{From: from, To: to, Special: special})

		if from.Y == pawn.Colour.PawnRank() {
			to2 := from.Add(0, 2*dir)
			if board.Get(to2) == nil {
				moves = append(moves, chess.Move{From: from, To: to2, Special: chess.DoublePawnPush})
			}
		}
	}

	for _, dx := range []int{-1, 1} {
		to := from.Add(dx, dir)
		if !to.InBounds() {
			continue
		}
		if to.Name() == enPassant && isEnPassantCapture(board, pawn, to) {
			moves = append(moves, chess.Move{From: from, To: to, Capture: true, Special: chess.EnPassant})
		}
		if target := board.Get(to); target != nil && target.Colour != pawn.Colour {
			moves = append(moves, chess.Move{From: from, To: to, Capture: true, Special: special})
		}
	}

	return moves
}

// isEnPassantCapture checks that the target square is empty and an enemy
// pawn stands beside the capturing pawn on the target's file.
func isEnPassantCapture(board *chess.Board, pawn *chess.Piece, to chess.Coord) bool {
	if board.Get(to) != nil {
		return false
	}
	victim := board.Get(chess.Coord{X: to.X, Y: pawn.Square.Y})
	return victim.Is(chess.Pawn, pawn.Colour.Opposite())
}
