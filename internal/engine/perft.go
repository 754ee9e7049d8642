package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// promotionKinds are the pieces a pawn may promote to.
var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  string // Coordinate notation, e.g. "e2e4" or "a7a8q"
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Every promotion counts once per promotion piece.
func Perft(board *chess.Board, ctx MoveContext, depth int) uint64 {
	return perft(board, ctx, depth, nil)
}

// PerftCached is Perft with node counts of repeated positions taken from
// table. The table may be shared between goroutines.
func PerftCached(board *chess.Board, ctx MoveContext, depth int, table *hashing.PerftTable) uint64 {
	return perft(board, ctx, depth, table)
}

func perft(board *chess.Board, ctx MoveContext, depth int, table *hashing.PerftTable) uint64 {
	if depth <= 0 {
		return 1
	}

	// Leaf counts are cheaper to recompute than to look up.
	cache := table != nil && depth > 1
	var key uint64
	if cache {
		key = hashing.Hash(board, ctx.ToMove, ctx.Castling, ctx.EnPassant)
		if nodes, ok := table.Lookup(key, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, move := range GenerateLegalMoves(board, ctx) {
		for _, promotion := range expandPromotions(move) {
			if depth == 1 {
				nodes++
				continue
			}
			nodes += perftChild(board.Clone(), ctx, move, promotion, depth, table)
		}
	}

	if cache {
		table.Store(key, depth, nodes)
	}
	return nodes
}

// Divide runs Perft below each root move and reports the counts in move
// generation order.
func Divide(board *chess.Board, ctx MoveContext, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}

	var entries []DivideEntry
	for _, move := range GenerateLegalMoves(board, ctx) {
		for _, promotion := range expandPromotions(move) {
			entries = append(entries, DivideEntry{
				Move:  divideName(move, promotion),
				Nodes: perftChild(board.Clone(), ctx, move, promotion, depth, nil),
			})
		}
	}
	return entries
}

// PerftParallel splits the root moves across a worker pool, each task
// working on its own clone of the board. It returns the total node count and
// the per-move breakdown in move generation order.
func PerftParallel(board *chess.Board, ctx MoveContext, depth, workers int) (uint64, []DivideEntry) {
	return perftParallel(board, ctx, depth, workers, nil)
}

// PerftParallelCached is PerftParallel with all workers sharing table.
func PerftParallelCached(board *chess.Board, ctx MoveContext, depth, workers int, table *hashing.PerftTable) (uint64, []DivideEntry) {
	return perftParallel(board, ctx, depth, workers, table)
}

func perftParallel(board *chess.Board, ctx MoveContext, depth, workers int, table *hashing.PerftTable) (uint64, []DivideEntry) {
	if depth <= 0 {
		return 1, nil
	}

	type rootMove struct {
		board     *chess.Board
		move      chess.Move
		promotion chess.Kind
	}
	var roots []rootMove
	for _, move := range GenerateLegalMoves(board, ctx) {
		for _, promotion := range expandPromotions(move) {
			roots = append(roots, rootMove{board.Clone(), move, promotion})
		}
	}

	counts := worker.Map(roots, workers, func(r rootMove) uint64 {
		return perftChild(r.board, ctx, r.move, r.promotion, depth, table)
	})

	entries := make([]DivideEntry, len(roots))
	var total uint64
	for i, r := range roots {
		entries[i] = DivideEntry{Move: divideName(r.move, r.promotion), Nodes: counts[i]}
		total += counts[i]
	}
	return total, entries
}

// perftChild makes the move on board, which the caller hands over, and
// counts the nodes below it.
func perftChild(board *chess.Board, ctx MoveContext, move chess.Move, promotion chess.Kind, depth int, table *hashing.PerftTable) uint64 {
	applied := ApplyMove(board, move, promotion)
	return perft(board, NextContext(ctx, applied), depth-1, table)
}

// expandPromotions returns the promotion kinds to try for a move, or a
// single NoKind entry for moves that do not promote.
func expandPromotions(move chess.Move) []chess.Kind {
	if move.IsPromotion() {
		return promotionKinds
	}
	return []chess.Kind{chess.NoKind}
}

func divideName(move chess.Move, promotion chess.Kind) string {
	name := move.UCI()
	if promotion != chess.NoKind {
		name += strings.ToLower(string(promotion.Letter()))
	}
	return name
}
