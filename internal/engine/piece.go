package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveContext carries the game state that move generation depends on but
// the board itself does not hold.
type MoveContext struct {
	ToMove    chess.Colour
	EnPassant string // target square name or "-"
	Castling  chess.CastlingRights
}

// PseudoLegalMoves returns the moves the piece could make according to its
// movement pattern and the board occupancy, without checking whether the
// mover's king is left in check.
func PseudoLegalMoves(board *chess.Board, piece *chess.Piece, ctx MoveContext) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, piece, ctx.EnPassant)
	case chess.Knight:
		return rayMoves(board, piece, knightOffsets, false)
	case chess.Bishop:
		return rayMoves(board, piece, diagonalOffsets, true)
	case chess.Rook:
		return rayMoves(board, piece, orthogonalOffsets, true)
	case chess.Queen:
		return rayMoves(board, piece, royalOffsets, true)
	case chess.King:
		moves := rayMoves(board, piece, royalOffsets, false)
		return append(moves, castlingMoves(board, piece, ctx.Castling)...)
	}
	return nil
}

// rayMoves walks each offset from the piece's square. A ray ends at the
// board edge or the first occupied square, which yields a capture if it
// holds an enemy piece. Non-repeating pieces take a single step.
func rayMoves(board *chess.Board, piece *chess.Piece, offsets []offset, repeating bool) []chess.Move {
	var moves []chess.Move
	from := piece.Square

	for _, dir := range offsets {
		for to := from.Add(dir.dx, dir.dy); to.InBounds(); to = to.Add(dir.dx, dir.dy) {
			target := board.Get(to)
			if target != nil {
				if target.Colour != piece.Colour {
					moves = append(moves, chess.Move{From: from, To: to, Capture: true})
				}
				break
			}
			moves = append(moves, chess.Move{From: from, To: to})
			if !repeating {
				break
			}
		}
	}
	return moves
}
