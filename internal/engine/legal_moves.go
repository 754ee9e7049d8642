package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GenerateLegalMoves returns the legal moves for the side to move. Pieces are
// visited in board scan order (rank 1 to 8, file a to h) and each piece's
// moves keep their generation order.
func GenerateLegalMoves(board *chess.Board, ctx MoveContext) []chess.Move {
	var moves []chess.Move
	for _, piece := range board.Pieces(ctx.ToMove) {
		for _, move := range PseudoLegalMoves(board, piece, ctx) {
			if IsLegal(board, move) {
				moves = append(moves, move)
			}
		}
	}
	return moves
}

// UpdateLegalMoves regenerates the board's cached legal moves and resolves
// the notation of each one.
func UpdateLegalMoves(board *chess.Board, ctx MoveContext) []chess.Move {
	moves := GenerateLegalMoves(board, ctx)
	for i := range moves {
		moves[i].Notation = ResolveNotation(board, moves[i], moves)
	}
	board.LegalMoves = moves
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board, ctx MoveContext) bool {
	for _, piece := range board.Pieces(ctx.ToMove) {
		for _, move := range PseudoLegalMoves(board, piece, ctx) {
			if IsLegal(board, move) {
				return true
			}
		}
	}
	return false
}

// IsLegal returns true if making the pseudo-legal move does not leave the
// mover's king in check.
func IsLegal(board *chess.Board, move chess.Move) bool {
	mover := board.Get(move.From)
	if mover == nil {
		return false
	}
	legal := false
	simulateMove(board, move, func() {
		legal = !IsInCheck(board, mover.Colour)
	})
	return legal
}

// simulateMove makes the move on the board in place, runs fn, and then puts
// back every square, the mover's own square and the king cache exactly as
// they were. Castling rooks and promotions are not simulated; neither can
// change whether the mover's king is attacked.
func simulateMove(board *chess.Board, move chess.Move, fn func()) {
	from := board.Square(move.From)
	to := board.Square(move.To)
	mover := from.Piece
	captured := to.Piece
	kings := board.KeySquares.King

	var epSquare *chess.Square
	var epPiece *chess.Piece
	if move.Special == chess.EnPassant {
		epSquare = board.Square(chess.Coord{X: move.To.X, Y: move.From.Y})
		epPiece = epSquare.Piece
	}

	defer func() {
		from.Piece = mover
		to.Piece = captured
		mover.Square = move.From
		if epSquare != nil {
			epSquare.Piece = epPiece
		}
		board.KeySquares.King = kings
	}()

	from.Piece = nil
	if epSquare != nil {
		epSquare.Piece = nil
	}
	board.Place(mover, move.To)

	fn()
}
