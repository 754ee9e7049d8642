package chess

// Piece is a single chess man. Its Square is a coordinate handle into the
// owning board, never a pointer back to it.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Coord
}

// NewPiece creates a piece of the given kind and colour standing on at.
func NewPiece(kind Kind, colour Colour, at Coord) *Piece {
	return &Piece{Kind: kind, Colour: colour, Square: at}
}

// PieceFromLetter creates a piece from a FEN letter (upper case white, lower
// case black). It returns nil if the letter is not a piece.
func PieceFromLetter(c byte, at Coord) *Piece {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return nil
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return NewPiece(kind, colour, at)
}

// Letter returns the display letter: uppercase for white, lowercase for black.
func (p *Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Is reports whether the piece has the given kind and colour.
func (p *Piece) Is(kind Kind, colour Colour) bool {
	return p != nil && p.Kind == kind && p.Colour == colour
}
