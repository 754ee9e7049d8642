package chess

import "strings"

// CastlingRights is the FEN castling field: a subset of "KQkq" in that
// order, or "-" when no side may castle.
type CastlingRights string

// NoCastling is the value used once every right has been revoked.
const NoCastling CastlingRights = "-"

// rightLetter returns the FEN letter for the given colour and side.
func rightLetter(colour Colour, kingside bool) byte {
	letter := byte('Q')
	if kingside {
		letter = 'K'
	}
	if colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// ParseCastlingRights validates a FEN castling field.
func ParseCastlingRights(s string) (CastlingRights, bool) {
	if s == "-" {
		return NoCastling, true
	}
	if s == "" {
		return NoCastling, false
	}
	seen := map[rune]bool{}
	for _, c := range s {
		if !strings.ContainsRune("KQkq", c) || seen[c] {
			return NoCastling, false
		}
		seen[c] = true
	}
	// Normalise to canonical order.
	var sb strings.Builder
	for _, c := range "KQkq" {
		if seen[c] {
			sb.WriteRune(c)
		}
	}
	return CastlingRights(sb.String()), true
}

// Has reports whether the colour may still castle on the given side.
func (cr CastlingRights) Has(colour Colour, kingside bool) bool {
	return strings.IndexByte(string(cr), rightLetter(colour, kingside)) >= 0
}

// Revoke returns the rights with the given colour's side removed.
func (cr CastlingRights) Revoke(colour Colour, kingside bool) CastlingRights {
	if cr == NoCastling {
		return cr
	}
	s := strings.Replace(string(cr), string(rightLetter(colour, kingside)), "", 1)
	if s == "" {
		return NoCastling
	}
	return CastlingRights(s)
}

// RevokeAll returns the rights with both sides of the colour removed.
func (cr CastlingRights) RevokeAll(colour Colour) CastlingRights {
	return cr.Revoke(colour, true).Revoke(colour, false)
}

// String implements fmt.Stringer.
func (cr CastlingRights) String() string {
	if cr == "" {
		return string(NoCastling)
	}
	return string(cr)
}
