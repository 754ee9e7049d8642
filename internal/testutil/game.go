package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// ParseMoves splits a space separated list of coordinate moves such as
// "e2e4 e7e5 e7e8q" into requests.
func ParseMoves(moves string) ([]chess.Request, error) {
	var reqs []chess.Request
	for _, field := range strings.Fields(moves) {
		req, ok := chess.ParseRequest(field)
		if !ok {
			return nil, fmt.Errorf("bad move %q", field)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// Play makes each move in turn and stops at the first error.
func Play(g *game.Game, moves string) error {
	reqs, err := ParseMoves(moves)
	if err != nil {
		return err
	}
	for _, req := range reqs {
		if _, err := g.MakeMove(req); err != nil {
			return err
		}
	}
	return nil
}

// MustNewGame creates a game from fen ("" for the initial position).
// It calls t.Fatal if the FEN is rejected.
func MustNewGame(t testing.TB, fen string, opts ...game.Option) *game.Game {
	t.Helper()
	g, err := game.New(fen, opts...)
	if err != nil {
		t.Fatalf("game.New(%q) failed: %v", fen, err)
	}
	return g
}

// MustPlay makes each move in turn. It calls t.Fatal on the first rejected move.
func MustPlay(t testing.TB, g *game.Game, moves string) {
	t.Helper()
	if err := Play(g, moves); err != nil {
		t.Fatalf("playing %q: %v", moves, err)
	}
}
