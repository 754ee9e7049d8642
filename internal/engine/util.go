package engine

// offset is a single (file, rank) step.
type offset struct {
	dx int
	dy int
}

// Direction sets. Their order fixes the order in which moves are generated.
var (
	diagonalOffsets   = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonalOffsets = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	knightOffsets     = []offset{{2, 1}, {2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {-2, 1}, {-2, -1}}
	royalOffsets      = append(append([]offset{}, orthogonalOffsets...), diagonalOffsets...)
)
