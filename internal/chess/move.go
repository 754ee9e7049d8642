package chess

import "strings"

// Special tags moves that have side effects beyond moving one piece.
type Special int

const (
	NoSpecial Special = iota
	DoublePawnPush
	EnPassant
	KingsideCastle
	QueensideCastle
	Promotion
)

// String returns the string representation of a special tag.
func (s Special) String() string {
	names := []string{"", "doublePawnMove", "enPassant", "ksCastle", "qsCastle", "promotion"}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// IsCastle returns true for either castling tag.
func (s Special) IsCastle() bool {
	return s == KingsideCastle || s == QueensideCastle
}

// Move is a pseudo-legal or legal move. Moves are regenerated every turn and
// only survive as history entries.
type Move struct {
	From    Coord
	To      Coord
	Capture bool
	Special Special

	// Notation is filled in once the move has been resolved against the
	// legal moves of its position.
	Notation string
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Special == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Special.IsCastle()
}

// UCI returns the coordinate form of the move, e.g. "e2e4".
func (m Move) UCI() string {
	return m.From.Name() + m.To.Name()
}

// Request is a caller's move request, by square name.
type Request struct {
	From string
	To   string

	// PromoteTo is one of Q, R, B, N (either case). Empty means queen.
	PromoteTo string
}

// ParseRequest parses coordinate notation such as "e2e4" or "e7e8n".
func ParseRequest(s string) (Request, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return Request{}, false
	}
	req := Request{From: s[:2], To: s[2:4]}
	if _, ok := ParseCoord(req.From); !ok {
		return Request{}, false
	}
	if _, ok := ParseCoord(req.To); !ok {
		return Request{}, false
	}
	if len(s) == 5 {
		req.PromoteTo = s[4:]
	}
	return req, true
}

// PromotionKind returns the piece kind requested for promotion.
// ok is false when PromoteTo names anything other than Q, R, B or N.
func (r Request) PromotionKind() (kind Kind, ok bool) {
	if r.PromoteTo == "" {
		return Queen, true
	}
	if len(r.PromoteTo) != 1 {
		return NoKind, false
	}
	switch kind = KindFromLetter(r.PromoteTo[0]); kind {
	case Queen, Rook, Bishop, Knight:
		return kind, true
	default:
		return NoKind, false
	}
}
