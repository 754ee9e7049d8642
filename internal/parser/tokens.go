// Package parser reads PGN-style movetext: tag pairs, move numbers, moves in
// SAN or coordinate notation, comments, NAGs, variations and results.
package parser

// TokenType is the kind of a token handed to the parser.
type TokenType int

const (
	EOFToken TokenType = iota
	TagToken
	StringToken
	CommentToken
	NAGToken
	CheckSymbol
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult

	// noToken marks input that yields nothing, such as whitespace.
	noToken
)

// String returns the upper-case name of the token type.
func (t TokenType) String() string {
	switch t {
	case EOFToken:
		return "EOF"
	case TagToken:
		return "TAG"
	case StringToken:
		return "STRING"
	case CommentToken:
		return "COMMENT"
	case NAGToken:
		return "NAG"
	case CheckSymbol:
		return "CHECK_SYMBOL"
	case MoveNumber:
		return "MOVE_NUMBER"
	case RAVStart:
		return "RAV_START"
	case RAVEnd:
		return "RAV_END"
	case MoveToken:
		return "MOVE"
	case TerminatingResult:
		return "TERMINATING_RESULT"
	}
	return "UNKNOWN"
}

// Token is one lexical unit with the line it started on.
type Token struct {
	Type    TokenType
	Text    string // tag names and values, moves, comments, NAGs and results
	MoveNum uint
	Line    uint
}
