package parser

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Decoded is what a piece of move text says about a move, before it is
// matched against the legal moves of a position.
type Decoded struct {
	Text string

	// Kind is the moving piece. NoKind when the text names both squares
	// without a piece letter, as in "e2e4".
	Kind chess.Kind

	// FromFile and FromRank disambiguate the origin square ('a'-'h',
	// '1'-'8'); zero when not given.
	FromFile byte
	FromRank byte

	To        chess.Coord
	Promotion chess.Kind    // NoKind if none was written
	Castle    chess.Special // KingsideCastle or QueensideCastle, else NoSpecial
}

func isFile(c byte) bool {
	return c >= 'a' && c <= 'h'
}

func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// pieceKind returns the kind named by an upper case SAN piece letter.
func pieceKind(c byte) chess.Kind {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N':
		return chess.KindFromLetter(c)
	}
	return chess.NoKind
}

// castleKind recognises O-O and O-O-O written with O, o or 0, with or
// without dashes.
func castleKind(text string) chess.Special {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case 'O', 'o', '0':
			sb.WriteByte('O')
		case '-':
		default:
			return chess.NoSpecial
		}
	}
	switch sb.String() {
	case "OO":
		return chess.KingsideCastle
	case "OOO":
		return chess.QueensideCastle
	}
	return chess.NoSpecial
}

// DecodeMove breaks SAN ("Nf3", "exd5", "e8=Q", "O-O", "R1a3") or
// coordinate notation ("e2e4", "e7e8q") into its parts. Check and
// annotation suffixes are ignored. It returns false if the text cannot
// describe a move.
func DecodeMove(text string) (Decoded, bool) {
	d := Decoded{Text: text}
	s := strings.TrimRight(text, "+#!?")
	if s == "" {
		return d, false
	}

	if d.Castle = castleKind(s); d.Castle != chess.NoSpecial {
		d.Kind = chess.King
		return d, true
	}

	// Promotion suffix: "=Q", or a bare piece letter right after the
	// destination rank as in "e8Q" and "e7e8q".
	if i := strings.IndexByte(s, '='); i >= 0 {
		if i != len(s)-2 {
			return d, false
		}
		d.Promotion = chess.KindFromLetter(s[i+1])
		s = s[:i]
	} else if n := len(s); n >= 3 && isRank(s[n-2]) && strings.IndexByte("QRBNqrbn", s[n-1]) >= 0 {
		d.Promotion = chess.KindFromLetter(s[n-1])
		s = s[:n-1]
	}
	switch d.Promotion {
	case chess.NoKind, chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
	default:
		return d, false
	}
	if strings.ContainsRune(s, '=') {
		return d, false
	}

	if kind := pieceKind(s[0]); kind != chess.NoKind {
		d.Kind = kind
		s = s[1:]
	}

	var squares []byte
	for i := 0; i < len(s); i++ {
		if isCapture(s[i]) {
			continue
		}
		if !isFile(s[i]) && !isRank(s[i]) {
			return d, false
		}
		squares = append(squares, s[i])
	}

	n := len(squares)
	if n < 2 || n > 4 {
		return d, false
	}
	to, ok := chess.ParseCoord(string(squares[n-2:]))
	if !ok {
		return d, false
	}
	d.To = to

	switch from := squares[:n-2]; len(from) {
	case 0:
	case 1:
		if isFile(from[0]) {
			d.FromFile = from[0]
		} else {
			d.FromRank = from[0]
		}
	case 2:
		if !isFile(from[0]) || !isRank(from[1]) {
			return d, false
		}
		d.FromFile, d.FromRank = from[0], from[1]
	}

	if d.Kind == chess.NoKind && (d.FromFile == 0 || d.FromRank == 0) {
		// "e4", "exd5"
		d.Kind = chess.Pawn
	}
	if d.Promotion != chess.NoKind && d.Kind != chess.Pawn && d.Kind != chess.NoKind {
		return d, false
	}
	return d, true
}

// matches reports whether move, played on board, fits the decoded text.
func (d Decoded) matches(board *chess.Board, move chess.Move) bool {
	if d.Castle != chess.NoSpecial {
		return move.Special == d.Castle
	}
	if move.To != d.To {
		return false
	}
	if d.FromFile != 0 && move.From.File() != d.FromFile {
		return false
	}
	if d.FromRank != 0 && move.From.Rank() != d.FromRank {
		return false
	}
	if d.Kind != chess.NoKind {
		if p := board.Get(move.From); p == nil || p.Kind != d.Kind {
			return false
		}
	}
	if d.Promotion != chess.NoKind && !move.IsPromotion() {
		return false
	}
	return true
}

// Resolve finds the one legal move the text describes and returns it as a
// request. It fails with ErrIllegalMove when no legal move fits and with
// ErrAmbiguousMove when several do.
func (d Decoded) Resolve(board *chess.Board, legal []chess.Move) (chess.Request, error) {
	var found []chess.Move
	for _, m := range legal {
		if d.matches(board, m) {
			found = append(found, m)
		}
	}

	switch len(found) {
	case 0:
		return chess.Request{}, errors.Wrapf(errors.ErrIllegalMove, "%q", d.Text)
	case 1:
	default:
		return chess.Request{}, errors.Wrapf(errors.ErrAmbiguousMove, "%q matches %d moves", d.Text, len(found))
	}

	req := chess.Request{From: found[0].From.Name(), To: found[0].To.Name()}
	if d.Promotion != chess.NoKind {
		req.PromoteTo = string(d.Promotion.Letter())
	}
	return req, nil
}

// ResolveMove decodes text and resolves it against the legal moves.
// Text that cannot describe a move fails with ErrInvalidMoveText.
func ResolveMove(text string, board *chess.Board, legal []chess.Move) (chess.Request, error) {
	d, ok := DecodeMove(text)
	if !ok {
		return chess.Request{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}
	return d.Resolve(board, legal)
}
