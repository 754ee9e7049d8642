package chess

import "testing"

func TestParseRequest(t *testing.T) {
	tests := []struct {
		in     string
		want   Request
		wantOK bool
	}{
		{"e2e4", Request{From: "e2", To: "e4"}, true},
		{"e7e8n", Request{From: "e7", To: "e8", PromoteTo: "n"}, true},
		{" g1f3 ", Request{From: "g1", To: "f3"}, true},
		{"e2", Request{}, false},
		{"z2e4", Request{}, false},
		{"e2e9", Request{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRequest(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseRequest(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRequestPromotionKind(t *testing.T) {
	tests := []struct {
		promote string
		want    Kind
		wantOK  bool
	}{
		{"", Queen, true},
		{"Q", Queen, true},
		{"r", Rook, true},
		{"B", Bishop, true},
		{"n", Knight, true},
		{"K", NoKind, false},
		{"P", NoKind, false},
		{"QQ", NoKind, false},
		{"x", NoKind, false},
	}
	for _, tt := range tests {
		got, ok := Request{PromoteTo: tt.promote}.PromotionKind()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("PromotionKind(%q) = %v, %v; want %v, %v", tt.promote, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCastlingRights(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		tests := []struct {
			in     string
			want   CastlingRights
			wantOK bool
		}{
			{"KQkq", "KQkq", true},
			{"kK", "Kk", true},
			{"-", NoCastling, true},
			{"", NoCastling, false},
			{"KK", NoCastling, false},
			{"KX", NoCastling, false},
		}
		for _, tt := range tests {
			got, ok := ParseCastlingRights(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseCastlingRights(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		}
	})

	t.Run("revoke", func(t *testing.T) {
		cr := CastlingRights("KQkq")
		cr = cr.Revoke(White, true)
		if cr != "Qkq" {
			t.Errorf("after revoking K: %q; want Qkq", cr)
		}
		if cr.Has(White, true) || !cr.Has(White, false) {
			t.Errorf("Has mismatch for %q", cr)
		}
		cr = cr.RevokeAll(Black)
		if cr != "Q" {
			t.Errorf("after revoking black: %q; want Q", cr)
		}
		cr = cr.Revoke(White, false)
		if cr != NoCastling {
			t.Errorf("after revoking all: %q; want -", cr)
		}
		if cr.Revoke(Black, true) != NoCastling {
			t.Error("revoking from - changed the value")
		}
	})
}

func TestSpecialString(t *testing.T) {
	tests := map[Special]string{
		NoSpecial:       "",
		DoublePawnPush:  "doublePawnMove",
		EnPassant:       "enPassant",
		KingsideCastle:  "ksCastle",
		QueensideCastle: "qsCastle",
		Promotion:       "promotion",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q; want %q", s, got, want)
		}
	}
}
