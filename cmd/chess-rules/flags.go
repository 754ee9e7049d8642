// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position and moves
	startFEN = flag.String("fen", "", "Starting position in FEN (default: standard position)")
	moveList = flag.String("moves", "", "Moves in SAN or coordinate notation, e.g. \"e4 e5 Nf3\" or \"e2e4 e7e5\" (default: arguments or stdin)")

	// Game endings applied after the moves
	resignSide  = flag.String("resign", "", "Side that resigns after the moves (w or b)")
	timeoutSide = flag.String("timeout", "", "Side that runs out of time after the moves (w or b)")
	agreeDraw   = flag.Bool("draw", false, "Agree a draw after the moves")

	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	lineLength    = flag.Int("w", 80, "Maximum line length")
	noLegalMoves  = flag.Bool("nolegal", false, "Don't list the legal moves of the final position")
	showPositions = flag.Bool("positions", false, "List the positions counted for repetition")
	showAnalysis  = flag.Bool("analysis", false, "Report captures, checks, castles, promotions and draw counters of each game")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move paths to this depth instead of playing moves")
	divide     = flag.Bool("divide", false, "Show the perft count below each root move")
	workers    = flag.Int("workers", 1, "Number of perft workers (0 = auto-detect based on CPU cores)")
	hashSize   = flag.Int("hash", 0, "Perft position table size in entries (0 = no table)")

	// Logging
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0 errors only, 1 game endings, 2 every move")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (errors only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
}

// applyGameFlags configures the starting position and the game ending.
func applyGameFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.Resign = *resignSide
	cfg.Timeout = *timeoutSide
	cfg.Draw = *agreeDraw
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.ShowLegalMoves = !*noLegalMoves
	cfg.Output.ShowPositions = *showPositions
	cfg.Output.ShowAnalysis = *showAnalysis
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.HashEntries = *hashSize
	if cfg.Perft.Workers == 0 {
		cfg.Perft.Workers = runtime.NumCPU()
	}
}
