package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Castling notation.
const (
	KingsideCastleNotation  = "O-O"
	QueensideCastleNotation = "O-O-O"
)

// ResolveNotation returns the algebraic notation of a legal move, without
// check or promotion suffixes. legal is the full list of legal moves for the
// position and is used to disambiguate between pieces of the same kind
// reaching the same square.
func ResolveNotation(board *chess.Board, move chess.Move, legal []chess.Move) string {
	switch move.Special {
	case chess.KingsideCastle:
		return KingsideCastleNotation
	case chess.QueensideCastle:
		return QueensideCastleNotation
	}

	piece := board.Get(move.From)
	if piece == nil {
		return ""
	}

	var sb strings.Builder
	if piece.Kind == chess.Pawn {
		if move.Capture {
			sb.WriteByte(move.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.Name())
		return sb.String()
	}

	sb.WriteByte(piece.Kind.Letter())
	sb.WriteString(disambiguator(board, piece, move, legal))
	if move.Capture {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.Name())
	return sb.String()
}

// PromotionSuffix returns the "=X" suffix for a promotion to kind.
func PromotionSuffix(kind chess.Kind) string {
	return "=" + string(kind.Letter())
}

// disambiguator looks for other pieces of the same kind that can also reach
// the destination. The origin file is preferred, then the origin rank, then
// the full origin square.
func disambiguator(board *chess.Board, piece *chess.Piece, move chess.Move, legal []chess.Move) string {
	var conflicts []chess.Coord
	for _, other := range legal {
		if other.To != move.To || other.From == move.From {
			continue
		}
		if p := board.Get(other.From); p != nil && p.Kind == piece.Kind {
			conflicts = append(conflicts, other.From)
		}
	}
	if len(conflicts) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, c := range conflicts {
		if c.X == move.From.X {
			sameFile = true
		}
		if c.Y == move.From.Y {
			sameRank = true
		}
	}

	switch {
	case !sameFile:
		return string(move.From.File())
	case !sameRank:
		return string(move.From.Rank())
	default:
		return move.From.Name()
	}
}
