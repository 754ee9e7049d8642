// Package chessgame is the public entry point to the rules engine. A
// ChessGame accepts coordinate move requests, enforces the rules of chess and
// reports the position, the legal moves and the game status in plain types
// that encode cleanly to JSON.
//
// A ChessGame must not be used from more than one goroutine at a time.
package chessgame

import (
	"log/slog"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// InitialFEN is the FEN string of the standard starting position.
const InitialFEN = engine.InitialFEN

// Errors returned by MakeMove and New. Test for them with errors.Is.
var (
	ErrInvalidFEN       = errors.ErrInvalidFEN
	ErrIllegalMove      = errors.ErrIllegalMove
	ErrInvalidPromotion = errors.ErrInvalidPromotion
	ErrGameFinished     = errors.ErrGameFinished
	ErrInvalidSquare    = errors.ErrInvalidSquare
	ErrInvalidColour    = errors.ErrInvalidColour
)

// Move is a legal move of the current position.
type Move struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Capture  bool   `json:"capture"`
	Special  string `json:"special,omitempty"`
	Notation string `json:"notation"`
}

// HistoryEntry is a move that has been played.
type HistoryEntry = game.HistoryEntry

// KeySquares names the squares to highlight: the last move and the king in
// check.
type KeySquares = game.KeySquares

// View is a snapshot of everything a client needs to draw the game.
type View struct {
	FEN         string     `json:"fen"`
	ToMove      string     `json:"toMove"`
	InCheck     bool       `json:"inCheck"`
	InCheckmate bool       `json:"inCheckmate"`
	IsDraw      bool       `json:"isDraw"`
	IsFinished  bool       `json:"isFinished"`
	Status      string     `json:"status"`
	StatusText  string     `json:"statusText"`
	Result      string     `json:"result"`
	MoveHistory []string   `json:"moveHistory"`
	KeySquares  KeySquares `json:"keySquares"`
	LegalMoves  []Move     `json:"legalMoves"`
}

// Option configures a ChessGame.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for rejected moves and game endings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ChessGame is a single game of chess.
type ChessGame struct {
	g *game.Game
}

// New starts a game from fen, or from the standard position when fen is
// empty. A malformed FEN returns an error wrapping ErrInvalidFEN.
func New(fen string, opts ...Option) (*ChessGame, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	g, err := game.New(fen, game.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}
	return &ChessGame{g: g}, nil
}

// MakeMove plays the move from one square to another, e.g. MakeMove("e2",
// "e4", ""). promoteTo selects the promotion piece (Q, R, B or N, either
// case) and defaults to a queen. It returns the move's notation including
// any "+" or "#" suffix. A rejected move leaves the game unchanged.
func (c *ChessGame) MakeMove(from, to, promoteTo string) (string, error) {
	entry, err := c.g.MakeMove(chess.Request{From: from, To: to, PromoteTo: promoteTo})
	if err != nil {
		return "", err
	}
	return entry.Notation, nil
}

// FEN returns the FEN string of the current position.
func (c *ChessGame) FEN() string { return c.g.FEN() }

// LegalMoves returns the legal moves for the side to move in generation
// order.
func (c *ChessGame) LegalMoves() []Move {
	legal := c.g.LegalMoves()
	out := make([]Move, len(legal))
	for i, m := range legal {
		out[i] = Move{
			From:     m.From.Name(),
			To:       m.To.Name(),
			Capture:  m.Capture,
			Special:  m.Special.String(),
			Notation: m.Notation,
		}
	}
	return out
}

// PlayerResign ends the game with colour ("white" or "black", or "w" or "b")
// resigning.
func (c *ChessGame) PlayerResign(colour string) error {
	col, err := parseColour(colour)
	if err != nil {
		return err
	}
	c.g.PlayerResign(col)
	return nil
}

// PlayerDraw ends the game as a draw by agreement.
func (c *ChessGame) PlayerDraw() { c.g.PlayerDraw() }

// PlayerTimeout ends the game with colour out of time.
func (c *ChessGame) PlayerTimeout(colour string) error {
	col, err := parseColour(colour)
	if err != nil {
		return err
	}
	c.g.PlayerTimeout(col)
	return nil
}

// IsFinished returns true once the game is over.
func (c *ChessGame) IsFinished() bool { return c.g.IsFinished() }

// IsDraw returns true if the game ended in a draw.
func (c *ChessGame) IsDraw() bool { return c.g.IsDraw() }

// InCheck returns true if the side to move is in check.
func (c *ChessGame) InCheck() bool { return c.g.InCheck() }

// InCheckmate returns true if the side to move is checkmated.
func (c *ChessGame) InCheckmate() bool { return c.g.InCheckmate() }

// StatusText returns a sentence describing the game status.
func (c *ChessGame) StatusText() string { return c.g.StatusText() }

// Result returns "1-0", "0-1", "1/2-1/2" or "*".
func (c *ChessGame) Result() string { return c.g.Result() }

// ToMove returns "White" or "Black".
func (c *ChessGame) ToMove() string { return c.g.ToMove().String() }

// MoveHistory returns the notation of every move played.
func (c *ChessGame) MoveHistory() []string { return c.g.MoveHistory() }

// History returns every move played with its squares.
func (c *ChessGame) History() []HistoryEntry { return c.g.History() }

// KeySquares returns the squares to highlight.
func (c *ChessGame) KeySquares() KeySquares { return c.g.KeySquares() }

// View returns a snapshot of the game.
func (c *ChessGame) View() View {
	return View{
		FEN:         c.g.FEN(),
		ToMove:      c.ToMove(),
		InCheck:     c.g.InCheck(),
		InCheckmate: c.g.InCheckmate(),
		IsDraw:      c.g.IsDraw(),
		IsFinished:  c.g.IsFinished(),
		Status:      c.g.Status().String(),
		StatusText:  c.g.StatusText(),
		Result:      c.g.Result(),
		MoveHistory: c.g.MoveHistory(),
		KeySquares:  c.g.KeySquares(),
		LegalMoves:  c.LegalMoves(),
	}
}

func parseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "w", "white":
		return chess.White, nil
	case "b", "black":
		return chess.Black, nil
	}
	return chess.Black, errors.Wrapf(ErrInvalidColour, "%q", s)
}
