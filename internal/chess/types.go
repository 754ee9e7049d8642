// Package chess provides the core chess types shared by the rules engine.
package chess

// BoardSize is the number of files and of ranks.
const BoardSize = 8

// Colour is the side a piece or player belongs to.
type Colour int

const (
	Black Colour = iota
	White
)

func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other side.
func (c Colour) Opposite() Colour { return 1 - c }

// Letter returns the FEN side-to-move letter, 'w' or 'b'.
func (c Colour) Letter() byte { return "bw"[c] }

// Forward is the rank step of the colour's pawns: +1 for White, -1 for
// Black.
func (c Colour) Forward() int { return 2*int(c) - 1 }

// HomeRank is the rank index of the colour's back rank.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank is the rank index the colour's pawns start on and may double
// push from.
func (c Colour) PawnRank() int { return c.HomeRank() + c.Forward() }

// PromotionRank is the rank index the colour's pawns promote on.
func (c Colour) PromotionRank() int { return c.Opposite().HomeRank() }

// ParseColour reads a FEN side-to-move field.
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "w":
		return White, true
	case "b":
		return Black, true
	}
	return Black, false
}

// Kind is a piece type without colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const kindLetters = "?PNBRQK"

var kindNames = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the upper-case letter of the kind, '?' for NoKind.
func (k Kind) Letter() byte {
	if k > NoKind && int(k) < len(kindLetters) {
		return kindLetters[k]
	}
	return '?'
}

// KindFromLetter reads a piece letter of either case. Anything other than
// PNBRQK gives NoKind.
func KindFromLetter(c byte) Kind {
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if kindLetters[k] == c {
			return k
		}
	}
	return NoKind
}

// IsSlider reports whether the kind moves along unbounded rays.
func (k Kind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}
