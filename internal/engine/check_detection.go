package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSquare := board.KingSquare(colour)

	// If king position not tracked, search for it
	if !kingSquare.InBounds() {
		kingSquare = findKing(board, colour)
		if !kingSquare.InBounds() {
			return false // No king found
		}
	}
	return IsControlled(board, kingSquare, colour.Opposite())
}

// IsControlled returns true if any piece of byColour attacks the square.
// Diagonal rays find bishops and queens at any distance, kings and
// correctly oriented pawns at distance one. Orthogonal rays find rooks and
// queens, and kings at distance one. Knights are looked up at their eight
// fixed offsets. Every ray stops at the first occupied square.
func IsControlled(board *chess.Board, at chess.Coord, byColour chess.Colour) bool {
	// A pawn attacks diagonally forward, so an attacking pawn stands one
	// rank behind the square from its own point of view.
	pawnStep := -byColour.Forward()

	diagonally := scanOffsets(board, at, byColour, diagonalOffsets, true, func(p *chess.Piece, dir offset, distance int) bool {
		switch p.Kind {
		case chess.Bishop, chess.Queen:
			return true
		case chess.King:
			return distance == 1
		case chess.Pawn:
			return distance == 1 && dir.dy == pawnStep
		}
		return false
	})
	if diagonally {
		return true
	}

	orthogonally := scanOffsets(board, at, byColour, orthogonalOffsets, true, func(p *chess.Piece, _ offset, distance int) bool {
		switch p.Kind {
		case chess.Rook, chess.Queen:
			return true
		case chess.King:
			return distance == 1
		}
		return false
	})
	if orthogonally {
		return true
	}

	return scanOffsets(board, at, byColour, knightOffsets, false, func(p *chess.Piece, _ offset, _ int) bool {
		return p.Kind == chess.Knight
	})
}

// scanOffsets walks each offset from the square and reports whether attacks
// accepts a piece of byColour found along the way. Walking stops at the
// first occupied square, or after one step when repeating is false.
func scanOffsets(board *chess.Board, at chess.Coord, byColour chess.Colour, offsets []offset,
	repeating bool, attacks func(p *chess.Piece, dir offset, distance int) bool) bool {
	for _, dir := range offsets {
		for c, distance := at.Add(dir.dx, dir.dy), 1; c.InBounds(); c, distance = c.Add(dir.dx, dir.dy), distance+1 {
			piece := board.Get(c)
			if piece != nil && piece.Colour == byColour && attacks(piece, dir, distance) {
				return true
			}
			if piece != nil || !repeating {
				break
			}
		}
	}
	return false
}

// findKing finds the king of the given colour by scanning the board.
func findKing(board *chess.Board, colour chess.Colour) chess.Coord {
	for _, p := range board.Pieces(colour) {
		if p.Kind == chess.King {
			return p.Square
		}
	}
	return chess.NoCoord
}
