// Package hashing provides Zobrist position hashing and a node count table
// for repeated positions.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x9E3779B97F4A7C15

var (
	// pieceKeys[colour][kind][square]
	pieceKeys    [2][7][chess.BoardSize * chess.BoardSize]uint64
	whiteToMove  uint64
	castlingKeys [4]uint64 // K, Q, k, q
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewPCG(zobristSeed, zobristSeed>>7))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rng.Uint64()
			}
		}
	}
	whiteToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

// Hash returns the Zobrist hash of a position: the pieces on the board, the
// side to move, the castling rights and the en passant target.
func Hash(board *chess.Board, toMove chess.Colour, castling chess.CastlingRights, enPassant string) uint64 {
	h := PlacementHash(board)
	if toMove == chess.White {
		h ^= whiteToMove
	}
	for i, right := range "KQkq" {
		for _, c := range string(castling) {
			if c == right {
				h ^= castlingKeys[i]
			}
		}
	}
	if ep, ok := chess.ParseCoord(enPassant); ok {
		h ^= epFileKeys[ep.X]
	}
	return h
}

// PlacementHash hashes the pieces on the board only.
func PlacementHash(board *chess.Board) uint64 {
	var h uint64
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			p := board.Squares[y][x].Piece
			if p == nil {
				continue
			}
			h ^= pieceKeys[p.Colour][p.Kind][y*chess.BoardSize+x]
		}
	}
	return h
}
