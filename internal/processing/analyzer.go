// Package processing replays parsed games under the rules of chess and
// gathers statistics about them.
package processing

import (
	"log/slog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// GameAnalysis holds what was seen while replaying a game.
type GameAnalysis struct {
	Plies           int `json:"plies"`
	Captures        int `json:"captures"`
	Checks          int `json:"checks"`
	Castles         int `json:"castles"`
	EnPassants      int `json:"enPassants"`
	Promotions      int `json:"promotions"`
	Underpromotions int `json:"underpromotions"`

	// LongestQuietRun is the highest half-move clock reached: consecutive
	// half-moves without a capture or pawn move.
	LongestQuietRun int `json:"longestQuietRun"`

	// MostRepeated is the highest number of times one placement occurred
	// since the last irreversible move.
	MostRepeated int `json:"mostRepeated"`
}

// FiftyMoveReached returns true if the half-move clock reached 100.
func (ga *GameAnalysis) FiftyMoveReached() bool {
	return ga.LongestQuietRun >= 100
}

// RepetitionDetected returns true if a placement occurred three times.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.MostRepeated >= 3
}

// UnderpromotionFound returns true if any pawn promoted to a non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.Underpromotions > 0
}

// ReplayGame starts a game from startFEN, or from the FEN tag of pg when
// startFEN is empty, and plays the moves of pg in SAN or coordinate
// notation. Replay stops at the first rejected move: the game so far and
// its analysis are returned with a *errors.MoveError. A bad starting
// position returns a nil game.
func ReplayGame(pg *parser.Game, startFEN string, logger *slog.Logger) (*game.Game, *GameAnalysis, error) {
	if startFEN == "" {
		startFEN = pg.GetTag("FEN")
	}
	g, err := game.New(startFEN, game.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	analysis := &GameAnalysis{}
	analysis.observe(g)

	for _, text := range pg.MoveTexts() {
		ply := len(g.History()) + 1
		if g.IsFinished() {
			return g, analysis, &errors.MoveError{Err: errors.ErrGameFinished, From: text, Ply: ply}
		}

		legal := g.LegalMoves()
		req, err := parser.ResolveMove(text, g.Board(), legal)
		if err != nil {
			return g, analysis, &errors.MoveError{Err: err, Ply: ply}
		}
		move := findMove(legal, req)

		entry, err := g.MakeMove(req)
		if err != nil {
			return g, analysis, err
		}
		logger.Debug("move played", "ply", ply, "notation", entry.Notation, "fen", g.FEN())

		analysis.record(move, req, g)
	}
	return g, analysis, nil
}

// findMove returns the legal move a resolved request refers to.
func findMove(legal []chess.Move, req chess.Request) chess.Move {
	for _, m := range legal {
		if m.From.Name() == req.From && m.To.Name() == req.To {
			return m
		}
	}
	return chess.Move{}
}

// record counts a move just played in g.
func (ga *GameAnalysis) record(move chess.Move, req chess.Request, g *game.Game) {
	ga.Plies++
	if move.Capture {
		ga.Captures++
	}
	switch move.Special {
	case chess.KingsideCastle, chess.QueensideCastle:
		ga.Castles++
	case chess.EnPassant:
		ga.EnPassants++
	case chess.Promotion:
		ga.Promotions++
		if kind, _ := req.PromotionKind(); kind != chess.Queen {
			ga.Underpromotions++
		}
	}
	if g.InCheck() {
		ga.Checks++
	}
	ga.observe(g)
}

// observe updates the clock and repetition maxima from the current position.
func (ga *GameAnalysis) observe(g *game.Game) {
	ga.LongestQuietRun = max(ga.LongestQuietRun, g.HalfMoves())
	for _, pc := range g.Positions() {
		ga.MostRepeated = max(ga.MostRepeated, pc.Count)
	}
}
