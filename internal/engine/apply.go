package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// AppliedMove describes a move after it has been made on a board.
type AppliedMove struct {
	chess.Move

	// Mover is the kind and colour of the piece that moved, before any
	// promotion.
	Mover  chess.Kind
	Colour chess.Colour

	// PromotedTo is the new kind for promotions, NoKind otherwise.
	PromotedTo chess.Kind
}

// IsIrreversible returns true for pawn moves and captures, which reset the
// half-move clock and make earlier positions unreachable.
func (m AppliedMove) IsIrreversible() bool {
	return m.Mover == chess.Pawn || m.Capture
}

// MakeMove looks the request up in the board's cached legal moves and makes
// it. The request must name a legal move and a promotion piece of Q, R, B
// or N (empty means queen), otherwise the board is left untouched and a
// *errors.MoveError is returned. The returned notation carries the
// promotion suffix but no check suffix.
func MakeMove(board *chess.Board, req chess.Request) (AppliedMove, error) {
	from, okFrom := chess.ParseCoord(req.From)
	to, okTo := chess.ParseCoord(req.To)
	if !okFrom || !okTo {
		return AppliedMove{}, moveError(req, errors.ErrInvalidSquare)
	}

	promotion, ok := req.PromotionKind()
	if !ok {
		return AppliedMove{}, moveError(req, errors.ErrInvalidPromotion)
	}

	for _, move := range board.LegalMoves {
		if move.From == from && move.To == to {
			return ApplyMove(board, move, promotion), nil
		}
	}
	return AppliedMove{}, moveError(req, errors.ErrIllegalMove)
}

// ApplyMove makes a move that is known to be legal. promotion is used only
// when the move is tagged as a promotion.
func ApplyMove(board *chess.Board, move chess.Move, promotion chess.Kind) AppliedMove {
	piece := board.Get(move.From)
	applied := AppliedMove{Move: move, Mover: piece.Kind, Colour: piece.Colour}

	board.Set(move.From, nil)

	if move.IsPromotion() {
		applied.PromotedTo = promotion
		applied.Notation += PromotionSuffix(promotion)
		piece = chess.NewPiece(promotion, piece.Colour, move.To)
	}
	board.Place(piece, move.To)

	switch move.Special {
	case chess.KingsideCastle, chess.QueensideCastle:
		rookFrom, rookTo := rookCastlingSquares(move.To, move.Special)
		rook := board.Get(rookFrom)
		board.Set(rookFrom, nil)
		board.Place(rook, rookTo)
	case chess.EnPassant:
		board.Set(chess.Coord{X: move.To.X, Y: move.From.Y}, nil)
	}

	// The cache belongs to the position before the move.
	board.LegalMoves = nil

	return applied
}

// NextContext returns the move context after the applied move: castling
// rights updated, the en passant target set to the square skipped by a
// double pawn push, and the side to move flipped.
func NextContext(ctx MoveContext, move AppliedMove) MoveContext {
	next := MoveContext{
		ToMove:    ctx.ToMove.Opposite(),
		EnPassant: NoEnPassant,
		Castling:  updateCastlingRights(ctx.Castling, move.Mover, move.Colour, move.Move),
	}
	if move.Special == chess.DoublePawnPush {
		next.EnPassant = chess.Coord{X: move.From.X, Y: (move.From.Y + move.To.Y) / 2}.Name()
	}
	return next
}

func moveError(req chess.Request, err error) error {
	return &errors.MoveError{Err: err, From: req.From, To: req.To, PromoteTo: req.PromoteTo}
}
