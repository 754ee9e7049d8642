// Package output formats a finished or in-progress game and perft results as
// text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/parser"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// Record is a game together with the position it started from.
type Record struct {
	// StartFEN is the starting position. Empty means the standard position.
	StartFEN string
	Game     *game.Game

	// Tags are carried over from the input. SetUp, FEN and Result are
	// always derived from the game instead.
	Tags []parser.Tag

	Analysis *processing.GameAnalysis
}

// derivedTags are written from the game rather than copied from the input.
var derivedTags = map[string]bool{"SetUp": true, "FEN": true, "Result": true}

// inputTags returns the carried over tags that are not derived.
func (r *Record) inputTags() []parser.Tag {
	var tags []parser.Tag
	for _, t := range r.Tags {
		if !derivedTags[t.Name] {
			tags = append(tags, t)
		}
	}
	return tags
}

// startPosition returns the parsed starting position, falling back to the
// standard position if StartFEN cannot be parsed.
func (r *Record) startPosition() engine.Position {
	if r.StartFEN != "" {
		if pos, err := engine.ParseFEN(r.StartFEN); err == nil {
			return pos
		}
	}
	pos, _ := engine.ParseFEN(engine.InitialFEN)
	return pos
}

// customStart returns true if the game did not start from the standard
// position.
func (r *Record) customStart() bool {
	return r.StartFEN != "" && r.StartFEN != engine.InitialFEN
}

// PerftReport is the result of a perft run.
type PerftReport struct {
	FEN     string
	Depth   int
	Nodes   uint64
	Divide  []engine.DivideEntry
	Elapsed time.Duration
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game as PGN style tags and movetext followed by its
// status, final position and, if configured, its legal moves and
// repetition table.
func OutputGame(rec *Record, cfg *config.Config, w io.Writer) {
	g := rec.Game

	for _, t := range rec.inputTags() {
		fmt.Fprintf(w, "[%s \"%s\"]\n", t.Name, escapeTag(t.Value))
	}
	if rec.customStart() {
		fmt.Fprintf(w, "[SetUp \"1\"]\n[FEN \"%s\"]\n", rec.StartFEN)
	}
	fmt.Fprintf(w, "[Result \"%s\"]\n", g.Result())
	fmt.Fprintln(w)

	outputMoves(rec, cfg, w)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Status: %s\n", g.StatusText())
	fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	if g.InCheck() {
		fmt.Fprintf(w, "Check: %s\n", g.KeySquares().CheckSquare)
	}

	if cfg.Output.ShowAnalysis && rec.Analysis != nil {
		outputAnalysis(rec.Analysis, w)
	}
	if cfg.Output.ShowLegalMoves {
		outputLegalMoves(g, cfg, w)
	}
	if cfg.Output.ShowPositions {
		fmt.Fprintln(w, "Positions:")
		for _, p := range g.Positions() {
			fmt.Fprintf(w, "  %d %s\n", p.Count, p.Placement)
		}
	}
}

// escapeTag escapes a tag value for writing between double quotes.
func escapeTag(v string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v)
}

func outputAnalysis(a *processing.GameAnalysis, w io.Writer) {
	fmt.Fprintf(w, "Analysis: %d plies, %d captures, %d checks, %d castles, %d en passant, %d promotions (%d under)\n",
		a.Plies, a.Captures, a.Checks, a.Castles, a.EnPassants, a.Promotions, a.Underpromotions)
	fmt.Fprintf(w, "Longest quiet run: %d half-moves\n", a.LongestQuietRun)
	fmt.Fprintf(w, "Most repeated position: %d\n", a.MostRepeated)
}

// outputMoves writes the numbered movetext and the result.
func outputMoves(rec *Record, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	for _, token := range moveTokens(rec) {
		ow.Write(token)
	}
	ow.NewLine()
}

// MoveText returns the numbered movetext of a game followed by its result,
// e.g. "1. e4 e5 2. Nf3 *". A game that started with Black to move opens
// with "N...".
func MoveText(rec *Record) string {
	return strings.Join(moveTokens(rec), " ")
}

// moveTokens returns the move numbers, notations and result in order.
func moveTokens(rec *Record) []string {
	start := rec.startPosition()
	moveNum := start.FullMoves
	isWhite := start.ToMove == chess.White

	var parts []string
	for i, entry := range rec.Game.History() {
		if isWhite {
			parts = append(parts, fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			parts = append(parts, fmt.Sprintf("%d...", moveNum))
		}
		parts = append(parts, entry.Notation)

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
	return append(parts, rec.Game.Result())
}

// outputLegalMoves writes the notation of every legal move, wrapped.
func outputLegalMoves(g *game.Game, cfg *config.Config, w io.Writer) {
	legal := g.LegalMoves()
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	ow.Write(fmt.Sprintf("Legal moves (%d):", len(legal)))
	for _, m := range legal {
		ow.Write(m.Notation)
	}
	ow.NewLine()
}

// OutputPerft writes a perft report: one "move: nodes" line per root move
// when a breakdown is present, then the total.
func OutputPerft(rep *PerftReport, w io.Writer) {
	for _, e := range rep.Divide {
		fmt.Fprintf(w, "%s: %d\n", e.Move, e.Nodes)
	}
	if len(rep.Divide) > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Depth: %d\n", rep.Depth)
	fmt.Fprintf(w, "Nodes searched: %d\n", rep.Nodes)
	if rep.Elapsed > 0 {
		fmt.Fprintf(w, "Time: %s\n", rep.Elapsed.Round(time.Millisecond))
	}
}
