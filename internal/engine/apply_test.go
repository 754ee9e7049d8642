package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestMakeMove(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		req           chess.Request
		wantPlacement string
		wantNotation  string
		wantSpecial   chess.Special
	}{
		{
			name:          "double pawn push",
			fen:           InitialFEN,
			req:           chess.Request{From: "e2", To: "e4"},
			wantPlacement: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
			wantNotation:  "e4",
			wantSpecial:   chess.DoublePawnPush,
		},
		{
			name:          "kingside castle moves the rook",
			fen:           "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			req:           chess.Request{From: "e1", To: "g1"},
			wantPlacement: "r3k2r/8/8/8/8/8/8/R4RK1",
			wantNotation:  "O-O",
			wantSpecial:   chess.KingsideCastle,
		},
		{
			name:          "queenside castle moves the rook",
			fen:           "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			req:           chess.Request{From: "e8", To: "c8"},
			wantPlacement: "2kr3r/8/8/8/8/8/8/R3K2R",
			wantNotation:  "O-O-O",
			wantSpecial:   chess.QueensideCastle,
		},
		{
			name:          "en passant removes the passed pawn",
			fen:           "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			req:           chess.Request{From: "e5", To: "d6"},
			wantPlacement: "rnbqkbnr/ppp1pppp/3P4/8/8/8/PPPP1PPP/RNBQKBNR",
			wantNotation:  "exd6",
			wantSpecial:   chess.EnPassant,
		},
		{
			name:          "promotion defaults to queen",
			fen:           "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			req:           chess.Request{From: "a7", To: "a8"},
			wantPlacement: "Qn2k3/8/8/8/8/8/8/4K3",
			wantNotation:  "a8=Q",
			wantSpecial:   chess.Promotion,
		},
		{
			name:          "underpromotion capture",
			fen:           "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			req:           chess.Request{From: "a7", To: "b8", PromoteTo: "n"},
			wantPlacement: "1N2k3/8/8/8/8/8/8/4K3",
			wantNotation:  "axb8=N",
			wantSpecial:   chess.Promotion,
		},
		{
			name:          "black promotion",
			fen:           "4k3/8/8/8/8/8/p7/4K3 b - - 0 1",
			req:           chess.Request{From: "a2", To: "a1", PromoteTo: "R"},
			wantPlacement: "4k3/8/8/8/8/8/8/r3K3",
			wantNotation:  "a1=R",
			wantSpecial:   chess.Promotion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustPosition(t, tt.fen)

			applied, err := MakeMove(board, tt.req)
			if err != nil {
				t.Fatalf("MakeMove() error = %v", err)
			}
			if got := BoardToFEN(board); got != tt.wantPlacement {
				t.Errorf("placement = %q; want %q", got, tt.wantPlacement)
			}
			if applied.Notation != tt.wantNotation {
				t.Errorf("Notation = %q; want %q", applied.Notation, tt.wantNotation)
			}
			if applied.Special != tt.wantSpecial {
				t.Errorf("Special = %v; want %v", applied.Special, tt.wantSpecial)
			}
			if board.LegalMoves != nil {
				t.Errorf("legal move cache not cleared after move")
			}

			// Every piece must point at the square that holds it.
			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				for _, p := range board.Pieces(colour) {
					if board.Get(p.Square) != p {
						t.Errorf("%c records square %v but is elsewhere", p.Letter(), p.Square)
					}
				}
			}
		})
	}
}

func TestMakeMove_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		req     chess.Request
		wantErr error
	}{
		{"not a legal move", InitialFEN, chess.Request{From: "e2", To: "e5"}, errors.ErrIllegalMove},
		{"empty square", InitialFEN, chess.Request{From: "e4", To: "e5"}, errors.ErrIllegalMove},
		{"opponent piece", InitialFEN, chess.Request{From: "e7", To: "e5"}, errors.ErrIllegalMove},
		{"bad square", InitialFEN, chess.Request{From: "e9", To: "e5"}, errors.ErrInvalidSquare},
		{"king promotion", "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.Request{From: "a7", To: "a8", PromoteTo: "K"}, errors.ErrInvalidPromotion},
		{"pawn promotion", "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.Request{From: "a7", To: "a8", PromoteTo: "P"}, errors.ErrInvalidPromotion},
		{"garbage promotion on normal move", InitialFEN, chess.Request{From: "e2", To: "e4", PromoteTo: "X"}, errors.ErrInvalidPromotion},
		{"pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", chess.Request{From: "e2", To: "d3"}, errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustPosition(t, tt.fen)
			before := board.Clone()

			_, err := MakeMove(board, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("MakeMove() error = %v; want %v", err, tt.wantErr)
			}
			var moveErr *errors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %v is not a MoveError", err)
			}
			if moveErr.From != tt.req.From || moveErr.To != tt.req.To {
				t.Errorf("MoveError names %s%s; want %s%s", moveErr.From, moveErr.To, tt.req.From, tt.req.To)
			}
			if diff := cmp.Diff(before, board); diff != "" {
				t.Errorf("rejected move changed the board (-before +after):\n%s", diff)
			}
		})
	}
}

func TestNextContext(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  MoveContext
	}{
		{
			name:  "double push sets en passant target",
			fen:   InitialFEN,
			moves: []string{"e2e4"},
			want:  MoveContext{ToMove: chess.Black, EnPassant: "e3", Castling: "KQkq"},
		},
		{
			name:  "black double push",
			fen:   InitialFEN,
			moves: []string{"g1f3", "c7c5"},
			want:  MoveContext{ToMove: chess.White, EnPassant: "c6", Castling: "KQkq"},
		},
		{
			name:  "target cleared by next move",
			fen:   InitialFEN,
			moves: []string{"e2e4", "g8f6"},
			want:  MoveContext{ToMove: chess.White, EnPassant: "-", Castling: "KQkq"},
		},
		{
			name:  "king move revokes both rights",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"e1f1"},
			want:  MoveContext{ToMove: chess.Black, EnPassant: "-", Castling: "kq"},
		},
		{
			name:  "castling revokes both rights",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves: []string{"e8g8"},
			want:  MoveContext{ToMove: chess.White, EnPassant: "-", Castling: "KQ"},
		},
		{
			name:  "rook move from corner revokes one right",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"h1h5"},
			want:  MoveContext{ToMove: chess.Black, EnPassant: "-", Castling: "Qkq"},
		},
		{
			name:  "queenside rook move",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			moves: []string{"a8b8"},
			want:  MoveContext{ToMove: chess.White, EnPassant: "-", Castling: "KQk"},
		},
		{
			name:  "capturing a rook on its corner revokes its right",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"a1a8"},
			want:  MoveContext{ToMove: chess.Black, EnPassant: "-", Castling: "Kk"},
		},
		{
			name:  "last right revoked gives dash",
			fen:   "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			moves: []string{"a1a2"},
			want:  MoveContext{ToMove: chess.Black, EnPassant: "-", Castling: "-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, ctx := mustPosition(t, tt.fen)
			got := play(t, board, ctx, tt.moves...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("NextContext() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAppliedMoveIsIrreversible(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want bool
	}{
		{"pawn push", InitialFEN, "e2e3", true},
		{"knight move", InitialFEN, "g1f3", false},
		{"capture", "rnbqkbnr/ppp1pppp/8/3p4/8/2N5/PPPPPPPP/R1BQKBNR w KQkq - 0 2", "c3d5", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := mustPosition(t, tt.fen)
			req, _ := chess.ParseRequest(tt.move)
			applied, err := MakeMove(board, req)
			if err != nil {
				t.Fatalf("MakeMove() error = %v", err)
			}
			if got := applied.IsIrreversible(); got != tt.want {
				t.Errorf("IsIrreversible() = %v; want %v", got, tt.want)
			}
		})
	}
}
