package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustPosition builds a board with its legal moves from a full FEN string.
func mustPosition(t testing.TB, fen string) (*chess.Board, MoveContext) {
	t.Helper()
	pos, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	board, err := NewBoardFromPosition(pos)
	if err != nil {
		t.Fatalf("NewBoardFromPosition(%q) failed: %v", fen, err)
	}
	return board, pos.Context()
}

// mustCoord parses a square name.
func mustCoord(t testing.TB, name string) chess.Coord {
	t.Helper()
	c, ok := chess.ParseCoord(name)
	if !ok {
		t.Fatalf("ParseCoord(%q) failed", name)
	}
	return c
}

// uciList returns the coordinate notation of each move.
func uciList(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.UCI()
	}
	return out
}

// notationList returns the resolved notation of each move.
func notationList(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation
	}
	return out
}

// findMove returns the legal move with the given coordinate notation.
func findMove(t testing.TB, board *chess.Board, uci string) chess.Move {
	t.Helper()
	for _, m := range board.LegalMoves {
		if m.UCI() == uci {
			return m
		}
	}
	t.Fatalf("move %s not among legal moves %v", uci, uciList(board.LegalMoves))
	return chess.Move{}
}

// play makes a sequence of coordinate moves, updating the context and the
// legal move cache after each one.
func play(t testing.TB, board *chess.Board, ctx MoveContext, moves ...string) MoveContext {
	t.Helper()
	for _, uci := range moves {
		req, ok := chess.ParseRequest(uci)
		if !ok {
			t.Fatalf("ParseRequest(%q) failed", uci)
		}
		applied, err := MakeMove(board, req)
		if err != nil {
			t.Fatalf("MakeMove(%s) failed: %v", uci, err)
		}
		ctx = NextContext(ctx, applied)
		UpdateLegalMoves(board, ctx)
	}
	return ctx
}
