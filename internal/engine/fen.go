// Package engine provides chess move generation, legality checking and
// board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NoEnPassant is the FEN en passant field when no target square exists.
const NoEnPassant = "-"

// Position holds the six fields of a FEN string.
type Position struct {
	Placement string
	ToMove    chess.Colour
	Castling  chess.CastlingRights
	EnPassant string
	HalfMoves int
	FullMoves int
}

// Context returns the move generation context described by the position.
func (p Position) Context() MoveContext {
	return MoveContext{ToMove: p.ToMove, EnPassant: p.EnPassant, Castling: p.Castling}
}

// String formats the position as a FEN string.
func (p Position) String() string {
	return fmt.Sprintf("%s %c %s %s %d %d",
		p.Placement, p.ToMove.Letter(), p.Castling.String(), p.EnPassant, p.HalfMoves, p.FullMoves)
}

// ParseFEN parses and validates a full FEN string. Trailing fields may be
// omitted and default to "w - - 0 1".
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return Position{}, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "fields", Got: strings.Join(parts[6:], " ")}
	}

	pos := Position{
		Placement: parts[0],
		ToMove:    chess.White,
		Castling:  chess.NoCastling,
		EnPassant: NoEnPassant,
		FullMoves: 1,
	}

	if err := validatePlacement(parts[0]); err != nil {
		return Position{}, err
	}

	if err := parseSideToMove(&pos, parts); err != nil {
		return Position{}, err
	}
	if err := parseCastlingRights(&pos, parts); err != nil {
		return Position{}, err
	}
	if err := parseEnPassant(&pos, parts); err != nil {
		return Position{}, err
	}
	if err := parseClocks(&pos, parts); err != nil {
		return Position{}, err
	}

	return pos, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	colour, ok := chess.ParseColour(parts[1])
	if !ok {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side to move", Got: parts[1]}
	}
	pos.ToMove = colour
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *Position, parts []string) error {
	if len(parts) < 3 {
		return nil
	}
	rights, ok := chess.ParseCastlingRights(parts[2])
	if !ok {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Got: parts[2]}
	}
	pos.Castling = rights
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == NoEnPassant {
		return nil
	}
	c, ok := chess.ParseCoord(parts[3])
	if !ok || (c.Y != 2 && c.Y != 5) {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "en passant", Got: parts[3]}
	}
	pos.EnPassant = c.Name()
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Got: parts[4]}
		}
		pos.HalfMoves = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Got: parts[5]}
		}
		pos.FullMoves = n
	}
	return nil
}

// validatePlacement checks the structure of the piece placement field:
// eight ranks of eight squares, known piece letters and one king per side.
func validatePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Got: placement}
	}

	kings := map[byte]int{}
	for _, rank := range ranks {
		width := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				width += int(c - '0')
			case chess.KindFromLetter(c) != chess.NoKind:
				width++
				if c == 'K' || c == 'k' {
					kings[c]++
				}
			default:
				return &errors.FENError{
					Err:   fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN),
					Field: "placement",
					Got:   rank,
				}
			}
		}
		if width != chess.BoardSize {
			return &errors.FENError{
				Err:   fmt.Errorf("rank covers %d squares: %w", width, errors.ErrInvalidFEN),
				Field: "placement",
				Got:   rank,
			}
		}
	}

	if kings['K'] != 1 || kings['k'] != 1 {
		return &errors.FENError{
			Err:   fmt.Errorf("need exactly one king per side: %w", errors.ErrInvalidFEN),
			Field: "placement",
			Got:   placement,
		}
	}
	return nil
}

// NewBoardFromFEN creates a board from the piece placement field of a FEN
// string. The first rank in the string is rank 8; the board stores rank 1
// first. Legal moves are not generated.
func NewBoardFromFEN(placement string) (*chess.Board, error) {
	if err := validatePlacement(placement); err != nil {
		return nil, err
	}

	board := chess.NewBoard()
	for i, rank := range strings.Split(placement, "/") {
		y := chess.BoardSize - 1 - i
		x := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			at := chess.Coord{X: x, Y: y}
			board.Place(chess.PieceFromLetter(c, at), at)
			x++
		}
	}
	return board, nil
}

// NewBoardFromPosition creates a board for a parsed position and fills in
// its legal moves.
func NewBoardFromPosition(pos Position) (*chess.Board, error) {
	board, err := NewBoardFromFEN(pos.Placement)
	if err != nil {
		return nil, err
	}
	UpdateLegalMoves(board, pos.Context())
	return board, nil
}

// BoardToFEN returns the piece placement field for the board.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	for y := chess.BoardSize - 1; y >= 0; y-- {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			piece := board.Get(chess.Coord{X: x, Y: y})
			if piece == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// NewInitialBoard creates a board with the standard starting position and
// its legal moves.
func NewInitialBoard() *chess.Board {
	pos, _ := ParseFEN(InitialFEN)
	board, _ := NewBoardFromPosition(pos)
	return board
}
