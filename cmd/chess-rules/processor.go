package main

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// runGames plays every game read from r and writes each one. A game is
// written even when one of its moves is rejected; the first rejection is
// returned once all games are done. Input without any moves still yields
// the starting position.
func runGames(cfg *config.Config, r io.Reader, w output.Writer, logger *slog.Logger) error {
	p := parser.NewParser(r, logger)
	var firstErr error
	played := 0
	for {
		pg, err := p.ParseGame()
		if err != nil {
			return errors.Wrap(err, "reading moves")
		}
		if pg == nil {
			break
		}
		played++
		if err := runGame(cfg, pg, w, logger); err != nil {
			if !isMoveError(err) {
				return err
			}
			logger.Error("game stopped", "game", played, "line", pg.StartLine, "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if played == 0 {
		return runGame(cfg, &parser.Game{}, w, logger)
	}
	return firstErr
}

// isMoveError reports whether err rejected a move rather than the game
// setup or the output.
func isMoveError(err error) bool {
	var moveErr *errors.MoveError
	return errors.As(err, &moveErr)
}

// runGame replays one parsed game and writes it. The -fen option takes
// precedence over a FEN tag in the input.
func runGame(cfg *config.Config, pg *parser.Game, w output.Writer, logger *slog.Logger) error {
	g, analysis, playErr := processing.ReplayGame(pg, cfg.StartFEN, logger)
	if g == nil {
		return playErr
	}
	if playErr == nil {
		applyEnding(g, cfg)
		if pg.Result != "" && pg.Result != "*" && pg.Result != g.Result() {
			logger.Warn("recorded result differs", "recorded", pg.Result, "result", g.Result())
		}
	}

	startFEN := cfg.StartFEN
	if startFEN == "" {
		startFEN = pg.GetTag("FEN")
	}
	rec := &output.Record{StartFEN: startFEN, Game: g, Tags: pg.Tags, Analysis: analysis}
	if err := w.WriteGame(rec); err != nil {
		return err
	}
	return playErr
}

// applyEnding applies the configured resignation, timeout or draw.
func applyEnding(g *game.Game, cfg *config.Config) {
	switch {
	case cfg.Resign != "":
		g.PlayerResign(sideColour(cfg.Resign))
	case cfg.Timeout != "":
		g.PlayerTimeout(sideColour(cfg.Timeout))
	case cfg.Draw:
		g.PlayerDraw()
	}
}

// sideColour converts a validated side name ("w", "b", "white", "black").
func sideColour(side string) chess.Colour {
	if strings.HasPrefix(side, "w") {
		return chess.White
	}
	return chess.Black
}

// runPerft counts move paths from the starting position and writes the
// report.
func runPerft(cfg *config.Config, w output.Writer, logger *slog.Logger) error {
	fen := cfg.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return err
	}
	board, err := engine.NewBoardFromPosition(pos)
	if err != nil {
		return err
	}

	depth := cfg.Perft.Depth
	rep := &output.PerftReport{FEN: fen, Depth: depth}

	var table *hashing.PerftTable
	if cfg.Perft.Cached() {
		table = hashing.NewPerftTable(cfg.Perft.HashEntries)
	}
	start := time.Now()

	switch {
	case cfg.Perft.Workers > 1 || (cfg.Perft.Divide && table != nil):
		nodes, entries := engine.PerftParallelCached(board, pos.Context(), depth, cfg.Perft.Workers, table)
		rep.Nodes = nodes
		if cfg.Perft.Divide {
			rep.Divide = entries
		}
	case cfg.Perft.Divide:
		rep.Divide = engine.Divide(board, pos.Context(), depth)
		for _, e := range rep.Divide {
			rep.Nodes += e.Nodes
		}
	default:
		rep.Nodes = engine.PerftCached(board, pos.Context(), depth, table)
	}

	rep.Elapsed = time.Since(start)
	logger.Info("perft finished", "depth", depth, "nodes", rep.Nodes,
		"workers", cfg.Perft.Workers, "elapsed", rep.Elapsed)
	if table != nil {
		logger.Debug("perft table", "entries", table.Len(),
			"hits", table.Hits(), "misses", table.Misses(), "full", table.IsFull())
	}

	return w.WritePerft(rep)
}
