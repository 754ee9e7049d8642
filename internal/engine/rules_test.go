package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestResolveMatingMaterial(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		want      MatingMaterial
	}{
		{"bare kings", "4k3/8/8/8/8/8/8/4K3", MatingMaterial{false, false}},
		{"king and knight each", "4k3/8/3n4/8/8/5N2/8/4K3", MatingMaterial{false, false}},
		{"king and bishop each", "4k3/8/3b4/8/8/5B2/8/4K3", MatingMaterial{false, false}},
		{"rook against bare king", "4k3/8/8/8/8/8/8/R3K3", MatingMaterial{true, false}},
		{"queen for black", "4k3/8/8/8/8/8/8/q3K3", MatingMaterial{false, true}},
		{"single pawn", "4k3/8/8/8/8/8/4P3/4K3", MatingMaterial{true, false}},
		{"two knights", "4k3/8/8/8/8/8/8/1N2K1N1", MatingMaterial{true, false}},
		{"bishop and knight", "4k3/8/8/8/8/8/8/1N2KB2", MatingMaterial{true, false}},
		{"two bishops for black", "2b1kb2/8/8/8/8/8/8/4K3", MatingMaterial{false, true}},
		{"initial", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", MatingMaterial{true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.placement)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			got := ResolveMatingMaterial(board)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolveMatingMaterial() mismatch (-want +got):\n%s", diff)
			}
			if got.Sufficient() != (tt.want.WhiteCanMate || tt.want.BlackCanMate) {
				t.Errorf("Sufficient() = %v", got.Sufficient())
			}
			if got.CanMate(chess.White) != tt.want.WhiteCanMate || got.CanMate(chess.Black) != tt.want.BlackCanMate {
				t.Errorf("CanMate() disagrees with fields: %+v", got)
			}
		})
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantCheck     bool
		wantCheckmate bool
		wantStalemate bool
	}{
		{"initial", InitialFEN, false, false, false},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, true, false},
		{"back rank mate", "4Q1k1/5ppp/8/8/8/8/8/4K3 b - - 0 1", true, true, false},
		{"check with escape", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", true, false, false},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false, false, true},
		{"king and pawn stalemate", "8/8/8/8/8/2k5/2p5/2K5 w - - 0 1", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, ctx := mustPosition(t, tt.fen)
			if got := IsInCheck(board, ctx.ToMove); got != tt.wantCheck {
				t.Errorf("IsInCheck() = %v; want %v", got, tt.wantCheck)
			}
			if got := IsCheckmate(board, ctx); got != tt.wantCheckmate {
				t.Errorf("IsCheckmate() = %v; want %v", got, tt.wantCheckmate)
			}
			if got := IsStalemate(board, ctx); got != tt.wantStalemate {
				t.Errorf("IsStalemate() = %v; want %v", got, tt.wantStalemate)
			}
		})
	}
}
