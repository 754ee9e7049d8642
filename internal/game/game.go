// Package game drives a chess game: it owns the board, tracks the state a
// FEN string carries beyond piece placement, records history and decides
// when and how the game ends.
package game

import (
	"log/slog"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// HistoryEntry is one move as recorded in the game history. Notation ends in
// "+" or "#" when the move gave check or mate.
type HistoryEntry struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Notation string `json:"notation"`
}

// KeySquares names the squares a presentation layer highlights.
type KeySquares struct {
	// LastMove holds the origin and destination of the last move, or is
	// empty before the first move.
	LastMove []string `json:"lastMove"`

	// CheckSquare is the king square of the side to move when it is in
	// check, otherwise empty.
	CheckSquare string `json:"checkSquare,omitempty"`
}

// PositionCount is one entry of the repetition table.
type PositionCount struct {
	Placement string `json:"placement"`
	Count     int    `json:"count"`
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for rejected moves and game endings.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// Game is a chess game in progress or finished.
type Game struct {
	board     *chess.Board
	toMove    chess.Colour
	castling  chess.CastlingRights
	enPassant string
	halfMoves int
	fullMoves int

	// Placement string to number of occurrences since the last pawn move
	// or capture.
	positionCounts map[string]int

	history  []HistoryEntry
	lastMove []string

	inCheck     bool
	inCheckmate bool
	isDraw      bool
	isFinished  bool
	status      Status
	statusText  string
	winner      chess.Colour // meaningful only for decisive endings

	log *slog.Logger
}

// New creates a game from a FEN string. An empty string starts from the
// standard initial position. A position that is already decided, such as
// checkmate or stalemate, yields a finished game.
func New(fen string, opts ...Option) (*Game, error) {
	if fen == "" {
		fen = engine.InitialFEN
	}
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	board, err := engine.NewBoardFromPosition(pos)
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:          board,
		toMove:         pos.ToMove,
		castling:       pos.Castling,
		enPassant:      pos.EnPassant,
		halfMoves:      pos.HalfMoves,
		fullMoves:      pos.FullMoves,
		positionCounts: map[string]int{engine.BoardToFEN(board): 1},
		status:         InProgress,
		statusText:     textInProgress,
		log:            slog.Default().With("package", "game"),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.updateStatus()
	if g.isFinished {
		g.log.Info("game created in a finished position", "fen", fen, "status", g.statusText)
	}
	return g, nil
}

// context returns the move generation context for the side to move.
func (g *Game) context() engine.MoveContext {
	return engine.MoveContext{ToMove: g.toMove, EnPassant: g.enPassant, Castling: g.castling}
}

// MakeMove plays a move for the side to move. On any error the game is
// left exactly as it was: moves after the game has finished fail with
// errors.ErrGameFinished, moves not in the legal move list with
// errors.ErrIllegalMove and promotion pieces other than Q, R, B or N with
// errors.ErrInvalidPromotion.
func (g *Game) MakeMove(req chess.Request) (HistoryEntry, error) {
	ply := len(g.history) + 1

	if g.isFinished {
		err := &errors.MoveError{Err: errors.ErrGameFinished, From: req.From, To: req.To, PromoteTo: req.PromoteTo, Ply: ply}
		g.log.Debug("move rejected", "error", err)
		return HistoryEntry{}, err
	}

	applied, err := engine.MakeMove(g.board, req)
	if err != nil {
		var moveErr *errors.MoveError
		if errors.As(err, &moveErr) {
			moveErr.Ply = ply
		}
		g.log.Debug("move rejected", "error", err)
		return HistoryEntry{}, err
	}

	ctx := engine.NextContext(g.context(), applied)
	g.castling = ctx.Castling
	g.enPassant = ctx.EnPassant

	// Earlier positions can no longer recur.
	if applied.IsIrreversible() {
		g.halfMoves = 0
		g.positionCounts = map[string]int{}
	} else {
		g.halfMoves++
	}
	if applied.Colour == chess.Black {
		g.fullMoves++
	}
	g.toMove = ctx.ToMove

	engine.UpdateLegalMoves(g.board, ctx)
	g.positionCounts[engine.BoardToFEN(g.board)]++
	g.updateStatus()

	notation := applied.Notation
	switch {
	case g.inCheckmate:
		notation += "#"
	case g.inCheck:
		notation += "+"
	}
	entry := HistoryEntry{From: applied.From.Name(), To: applied.To.Name(), Notation: notation}
	g.history = append(g.history, entry)
	g.lastMove = []string{entry.From, entry.To}

	if g.isFinished {
		g.log.Info("game finished", "status", g.statusText, "ply", ply, "fen", g.FEN())
	}
	return entry, nil
}

// updateStatus recomputes the check and terminal flags for the side to move.
// Checkmate takes precedence over every draw; among draws the fifty-move
// rule is checked first, then repetition, stalemate and material.
func (g *Game) updateStatus() {
	g.inCheck = engine.IsInCheck(g.board, g.toMove)
	noMoves := len(g.board.LegalMoves) == 0
	g.inCheckmate = g.inCheck && noMoves

	switch {
	case g.inCheckmate:
		g.winner = g.toMove.Opposite()
		g.setStatus(Checkmate, checkmateText(g.winner))
	case g.halfMoves >= 100:
		g.setStatus(FiftyMoveRule, textFiftyMoveRule)
	case g.hasRepetition():
		g.setStatus(ThreefoldRepetition, textThreefoldRepetition)
	case noMoves:
		g.setStatus(Stalemate, textStalemate)
	case !engine.ResolveMatingMaterial(g.board).Sufficient():
		g.setStatus(InsufficientMaterial, textInsufficientMaterial)
	default:
		g.setStatus(InProgress, textInProgress)
	}
}

func (g *Game) setStatus(status Status, text string) {
	g.status = status
	g.statusText = text
	g.isDraw = status.IsDraw()
	g.isFinished = status != InProgress
}

// hasRepetition returns true if any position has occurred three times.
func (g *Game) hasRepetition() bool {
	for _, n := range g.positionCounts {
		if n >= 3 {
			return true
		}
	}
	return false
}

// PlayerResign ends the game with the given colour resigning. It has no
// effect on a finished game.
func (g *Game) PlayerResign(colour chess.Colour) {
	if g.isFinished {
		return
	}
	g.winner = colour.Opposite()
	g.setStatus(Resignation, resignationText(colour))
	g.log.Info("game finished", "status", g.statusText)
}

// PlayerDraw ends the game as a draw by agreement. It has no effect on a
// finished game.
func (g *Game) PlayerDraw() {
	if g.isFinished {
		return
	}
	g.setStatus(DrawByAgreement, textDrawByAgreement)
	g.log.Info("game finished", "status", g.statusText)
}

// PlayerTimeout ends the game with the given colour out of time. The
// opponent wins if it still has mating material, otherwise the game is
// drawn. It has no effect on a finished game.
func (g *Game) PlayerTimeout(colour chess.Colour) {
	if g.isFinished {
		return
	}
	winner := colour.Opposite()
	if engine.ResolveMatingMaterial(g.board).CanMate(winner) {
		g.winner = winner
		g.setStatus(Timeout, timeoutText(winner))
	} else {
		g.setStatus(TimeoutDraw, textTimeoutDraw)
	}
	g.log.Info("game finished", "status", g.statusText)
}

// FEN returns the FEN string of the current position.
func (g *Game) FEN() string {
	return engine.Position{
		Placement: engine.BoardToFEN(g.board),
		ToMove:    g.toMove,
		Castling:  g.castling,
		EnPassant: g.enPassant,
		HalfMoves: g.halfMoves,
		FullMoves: g.fullMoves,
	}.String()
}

// LegalMoves returns the legal moves for the side to move with their
// notation. A finished game still reports the moves of its final position.
func (g *Game) LegalMoves() []chess.Move {
	return slices.Clone(g.board.LegalMoves)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour { return g.toMove }

// Castling returns the remaining castling rights.
func (g *Game) Castling() chess.CastlingRights { return g.castling }

// EnPassant returns the en passant target square name, or "-".
func (g *Game) EnPassant() string { return g.enPassant }

// HalfMoves returns the half-move clock.
func (g *Game) HalfMoves() int { return g.halfMoves }

// FullMoves returns the full-move number.
func (g *Game) FullMoves() int { return g.fullMoves }

// InCheck returns true if the side to move is in check.
func (g *Game) InCheck() bool { return g.inCheck }

// InCheckmate returns true if the side to move is checkmated.
func (g *Game) InCheckmate() bool { return g.inCheckmate }

// IsDraw returns true if the game ended in a draw.
func (g *Game) IsDraw() bool { return g.isDraw }

// IsFinished returns true if the game is over.
func (g *Game) IsFinished() bool { return g.isFinished }

// Status returns how the game stands.
func (g *Game) Status() Status { return g.status }

// StatusText returns the human-readable status.
func (g *Game) StatusText() string { return g.statusText }

// Result returns the game result in PGN form: "1-0", "0-1", "1/2-1/2" or
// "*" while the game is in progress.
func (g *Game) Result() string {
	switch {
	case !g.isFinished:
		return "*"
	case g.isDraw:
		return "1/2-1/2"
	case g.winner == chess.White:
		return "1-0"
	default:
		return "0-1"
	}
}

// Winner returns the winning colour. ok is false while the game is in
// progress or when it was drawn.
func (g *Game) Winner() (winner chess.Colour, ok bool) {
	if !g.isFinished || g.isDraw {
		return chess.Black, false
	}
	return g.winner, true
}

// History returns the moves played so far.
func (g *Game) History() []HistoryEntry {
	return slices.Clone(g.history)
}

// MoveHistory returns the notation of the moves played so far.
func (g *Game) MoveHistory() []string {
	out := make([]string, len(g.history))
	for i, h := range g.history {
		out[i] = h.Notation
	}
	return out
}

// KeySquares returns the squares of the last move and, when the side to
// move is in check, its king square.
func (g *Game) KeySquares() KeySquares {
	ks := KeySquares{LastMove: slices.Clone(g.lastMove)}
	if ks.LastMove == nil {
		ks.LastMove = []string{}
	}
	if g.inCheck {
		ks.CheckSquare = g.board.KingSquare(g.toMove).Name()
	}
	return ks
}

// Positions returns the repetition table sorted by placement.
func (g *Game) Positions() []PositionCount {
	placements := make([]string, 0, len(g.positionCounts))
	for p := range g.positionCounts {
		placements = append(placements, p)
	}
	slices.Sort(placements)

	out := make([]PositionCount, len(placements))
	for i, p := range placements {
		out[i] = PositionCount{Placement: p, Count: g.positionCounts[p]}
	}
	return out
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Clone()
}
