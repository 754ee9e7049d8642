package parser

import (
	"io"
	"log/slog"
)

// Tag is a PGN tag pair such as [FEN "..."].
type Tag struct {
	Name  string
	Value string
}

// Move is one move of the main line as written in the input.
type Move struct {
	Text string
	NAGs []string
	Line uint
}

// Game is one game read from the input. Comments and variations are
// skipped.
type Game struct {
	Tags   []Tag
	Moves  []Move
	Result string // Terminating result, empty if none was written

	StartLine uint
	EndLine   uint
}

// GetTag returns the value of the named tag, or "" if it is absent.
func (g *Game) GetTag(name string) string {
	for _, t := range g.Tags {
		if t.Name == name {
			return t.Value
		}
	}
	return ""
}

// SetTag sets a tag value, replacing an earlier one of the same name.
func (g *Game) SetTag(name, value string) {
	for i := range g.Tags {
		if g.Tags[i].Name == name {
			g.Tags[i].Value = value
			return
		}
	}
	g.Tags = append(g.Tags, Tag{Name: name, Value: value})
}

// MoveTexts returns the text of every move.
func (g *Game) MoveTexts() []string {
	texts := make([]string, len(g.Moves))
	for i, m := range g.Moves {
		texts[i] = m.Text
	}
	return texts
}

// Parser splits PGN input into games, keeping only the main line.
type Parser struct {
	lexer   *Lexer
	pending *Token // read but not yet consumed
	logger  *slog.Logger
}

// NewParser returns a parser reading r. Problems in the input are logged as
// warnings to logger, or to the default logger when it is nil.
func NewParser(r io.Reader, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{lexer: NewLexer(r, logger), logger: logger}
}

func (p *Parser) next() *Token {
	if tok := p.pending; tok != nil {
		p.pending = nil
		return tok
	}
	return p.lexer.NextToken()
}

// ParseGame reads the next game. A game ends at its result, at the tags of
// the following game or at the end of input. It returns nil, nil once the
// input holds no more games.
func (p *Parser) ParseGame() (*Game, error) {
	var (
		game     = &Game{StartLine: p.lexer.LineNumber()}
		depth    int    // variation nesting
		tagName  string // tag awaiting its value
		started  bool   // any tag, move or result seen
		inMoves  bool   // movetext has begun
		finished bool
	)

	for !finished {
		tok := p.next()
		if !started && startsGame(tok.Type) {
			started = true
			game.StartLine = tok.Line
		}
		if tagName != "" && tok.Type != StringToken {
			p.logger.Warn("missing tag string", "tag", tagName, "line", tok.Line)
			tagName = ""
		}

		switch tok.Type {
		case EOFToken:
			if depth > 0 {
				p.logger.Warn("missing ')' to close variation", "line", tok.Line)
			}
			finished = true

		case TagToken:
			if inMoves {
				// The next game's tags end this one.
				p.pending = tok
				finished = true
				break
			}
			tagName = tok.Text

		case StringToken:
			if tagName == "" {
				p.logger.Warn("missing tag name", "value", tok.Text, "line", tok.Line)
				break
			}
			game.SetTag(tagName, tok.Text)
			tagName = ""

		case MoveToken:
			inMoves = true
			if depth == 0 {
				game.Moves = append(game.Moves, Move{Text: tok.Text, Line: tok.Line})
			}

		case NAGToken:
			if n := len(game.Moves); depth == 0 && n > 0 {
				game.Moves[n-1].NAGs = append(game.Moves[n-1].NAGs, tok.Text)
			}

		case MoveNumber:
			inMoves = true

		case RAVStart:
			if started {
				depth++
			}

		case RAVEnd:
			if depth > 0 {
				depth--
			}

		case TerminatingResult:
			if depth == 0 {
				game.Result = tok.Text
				finished = true
			}
		}
		game.EndLine = tok.Line
	}

	if err := p.lexer.Err(); err != nil {
		return nil, err
	}
	if !started {
		return nil, nil
	}
	return game, nil
}

// startsGame reports whether a token can open a game. Stray annotations or
// parentheses between games are ignored.
func startsGame(t TokenType) bool {
	switch t {
	case TagToken, StringToken, MoveToken, MoveNumber, TerminatingResult:
		return true
	}
	return false
}

// ParseAllGames reads every game in the input.
func (p *Parser) ParseAllGames() ([]*Game, error) {
	var games []*Game
	for {
		game, err := p.ParseGame()
		if err != nil || game == nil {
			return games, err
		}
		games = append(games, game)
	}
}
