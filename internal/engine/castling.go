package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castlingMoves generates the castling moves available to the king.
// A side is available when its right is still held, the king is not in
// check, and the squares the king crosses and lands on are empty and not
// attacked. Queenside also needs the knight square empty; the rook itself
// is only checked for presence.
func castlingMoves(board *chess.Board, king *chess.Piece, rights chess.CastlingRights) []chess.Move {
	colour := king.Colour
	other := colour.Opposite()
	home := colour.HomeRank()

	canKingside := rights.Has(colour, true)
	canQueenside := rights.Has(colour, false)
	if !canKingside && !canQueenside {
		return nil
	}

	// Rights in a FEN string do not guarantee the pieces are home.
	if king.Square != (chess.Coord{X: 4, Y: home}) {
		return nil
	}

	if IsControlled(board, king.Square, other) {
		return nil
	}

	var moves []chess.Move

	if canKingside && board.Get(chess.Coord{X: 7, Y: home}).Is(chess.Rook, colour) {
		path := board.KeySquares.Kingside[colour]
		if isSafeEmpty(board, path[0], other) && isSafeEmpty(board, path[1], other) {
			moves = append(moves, chess.Move{From: king.Square, To: path[1], Special: chess.KingsideCastle})
		}
	}

	if canQueenside && board.Get(chess.Coord{X: 0, Y: home}).Is(chess.Rook, colour) {
		path := board.KeySquares.Queenside[colour]
		if isSafeEmpty(board, path[0], other) && isSafeEmpty(board, path[1], other) && board.Get(path[2]) == nil {
			moves = append(moves, chess.Move{From: king.Square, To: path[1], Special: chess.QueensideCastle})
		}
	}

	return moves
}

// isSafeEmpty returns true if the square is empty and not attacked by byColour.
func isSafeEmpty(board *chess.Board, c chess.Coord, byColour chess.Colour) bool {
	return board.Get(c) == nil && !IsControlled(board, c, byColour)
}

// rookCastlingSquares returns the rook's origin and destination for a
// castling move landing the king on kingTo.
func rookCastlingSquares(kingTo chess.Coord, special chess.Special) (from, to chess.Coord) {
	if special == chess.KingsideCastle {
		return kingTo.Add(1, 0), kingTo.Add(-1, 0)
	}
	return kingTo.Add(-2, 0), kingTo.Add(1, 0)
}

// updateCastlingRights removes castling rights after a move: a king move
// removes both of its colour's rights, and any move from or onto a rook's
// home corner removes the right tied to that corner.
func updateCastlingRights(rights chess.CastlingRights, kind chess.Kind, colour chess.Colour, move chess.Move) chess.CastlingRights {
	if rights == chess.NoCastling {
		return rights
	}
	switch kind {
	case chess.King:
		rights = rights.RevokeAll(colour)
	case chess.Rook:
		rights = revokeCorner(rights, colour, move.From)
	}
	if move.Capture {
		rights = revokeCorner(rights, colour.Opposite(), move.To)
	}
	return rights
}

// revokeCorner removes the right tied to the rook corner c of colour, if c is one.
func revokeCorner(rights chess.CastlingRights, colour chess.Colour, c chess.Coord) chess.CastlingRights {
	if c.Y != colour.HomeRank() {
		return rights
	}
	switch c.X {
	case 0:
		return rights.Revoke(colour, false)
	case chess.BoardSize - 1:
		return rights.Revoke(colour, true)
	}
	return rights
}
