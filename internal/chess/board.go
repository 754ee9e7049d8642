package chess

// KeySquares caches the squares that the rules engine looks up repeatedly.
// All entries are indexed by Colour.
type KeySquares struct {
	// Current square of each king.
	King [2]Coord

	// Squares the king crosses and lands on when castling kingside.
	Kingside [2][2]Coord

	// Squares the king crosses and lands on when castling queenside,
	// followed by the knight square that must also be empty.
	Queenside [2][3]Coord
}

// Board is an 8x8 grid of squares, stored rank 1 first: Squares[y][x].
type Board struct {
	Squares [BoardSize][BoardSize]Square

	KeySquares KeySquares

	// Legal moves for the side to move, in board scan order (rank 1 to 8,
	// file a to h) and then per-piece generation order.
	LegalMoves []Move
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.Squares[y][x].Coord = Coord{X: x, Y: y}
		}
	}
	for _, colour := range []Colour{Black, White} {
		y := colour.HomeRank()
		b.KeySquares.King[colour] = NoCoord
		b.KeySquares.Kingside[colour] = [2]Coord{{X: 5, Y: y}, {X: 6, Y: y}}
		b.KeySquares.Queenside[colour] = [3]Coord{{X: 3, Y: y}, {X: 2, Y: y}, {X: 1, Y: y}}
	}
	return b
}

// Square returns the square at c, or nil if c is off the board.
func (b *Board) Square(c Coord) *Square {
	if !c.InBounds() {
		return nil
	}
	return &b.Squares[c.Y][c.X]
}

// Get returns the piece at c, or nil if the square is empty or off the board.
func (b *Board) Get(c Coord) *Piece {
	if !c.InBounds() {
		return nil
	}
	return b.Squares[c.Y][c.X].Piece
}

// Set replaces the occupant of c without touching the piece's own square
// handle.
func (b *Board) Set(c Coord, p *Piece) {
	if c.InBounds() {
		b.Squares[c.Y][c.X].Piece = p
	}
}

// Place puts p on c and points p at c. King squares are tracked.
func (b *Board) Place(p *Piece, c Coord) {
	b.Set(c, p)
	if p == nil {
		return
	}
	p.Square = c
	if p.Kind == King {
		b.KeySquares.King[p.Colour] = c
	}
}

// KingSquare returns the tracked king square of the colour.
func (b *Board) KingSquare(colour Colour) Coord {
	return b.KeySquares.King[colour]
}

// Pieces returns the pieces of the colour in board scan order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var pieces []*Piece
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.Squares[y][x].Piece; p != nil && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Clone creates a deep copy of the board, including fresh pieces, so the
// copy can be used independently of the original.
func (b *Board) Clone() *Board {
	nb := &Board{}
	*nb = *b
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if p := b.Squares[y][x].Piece; p != nil {
				cp := *p
				nb.Squares[y][x].Piece = &cp
			}
		}
	}
	if b.LegalMoves != nil {
		nb.LegalMoves = make([]Move, len(b.LegalMoves))
		copy(nb.LegalMoves, b.LegalMoves)
	}
	return nb
}
