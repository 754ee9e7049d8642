package chess

// Coord identifies one of the 64 cells. X is the file index (a=0..h=7) and
// Y the rank index (1=0..8=7).
type Coord struct {
	X int
	Y int
}

// NoCoord is the zero-information coordinate used where no square applies.
var NoCoord = Coord{X: -1, Y: -1}

// InBounds returns true if the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// File returns the file letter of the coordinate ('a'-'h').
func (c Coord) File() byte {
	return byte('a' + c.X)
}

// Rank returns the rank digit of the coordinate ('1'-'8').
func (c Coord) Rank() byte {
	return byte('1' + c.Y)
}

// Name returns the algebraic name of the square, e.g. "e4".
func (c Coord) Name() string {
	if !c.InBounds() {
		return "-"
	}
	return string([]byte{c.File(), c.Rank()})
}

// String implements fmt.Stringer.
func (c Coord) String() string {
	return c.Name()
}

// ParseCoord converts an algebraic square name to a coordinate.
func ParseCoord(name string) (Coord, bool) {
	if len(name) != 2 {
		return NoCoord, false
	}
	c := Coord{X: int(name[0]) - 'a', Y: int(name[1]) - '1'}
	if !c.InBounds() {
		return NoCoord, false
	}
	return c, true
}

// Square is one cell of the board. The board owns its squares; a square's
// occupant, if any, is owned through it.
type Square struct {
	Coord
	Piece *Piece
}

// Occupied returns true if a piece stands on the square.
func (s *Square) Occupied() bool {
	return s.Piece != nil
}
