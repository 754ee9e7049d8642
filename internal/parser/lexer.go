package parser

import (
	"bufio"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// charClass groups input bytes by the token they can start.
type charClass uint8

const (
	classJunk charClass = iota
	classSpace
	classTagOpen
	classTagClose
	classQuote
	classBraceOpen
	classBraceClose
	classSemicolon
	classDollar
	classAnnotation
	classCheck
	classDot
	classParenOpen
	classParenClose
	classPercent
	classBackslash
	classStar
	classDash
	classDigit
	classLetter
)

var (
	classes   = buildClasses()
	moveBytes = buildMoveBytes()
)

func buildClasses() (t [256]charClass) {
	for _, c := range []byte(" \t\r\n") {
		t[c] = classSpace
	}
	for c, class := range map[byte]charClass{
		'[': classTagOpen, ']': classTagClose, '"': classQuote,
		'{': classBraceOpen, '}': classBraceClose, ';': classSemicolon,
		'$': classDollar, '!': classAnnotation, '?': classAnnotation,
		'+': classCheck, '#': classCheck, '.': classDot,
		'(': classParenOpen, ')': classParenClose, '%': classPercent,
		'\\': classBackslash, '*': classStar, '-': classDash, '_': classLetter,
	} {
		t[c] = class
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = classDigit
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = classLetter
		t[c-'a'+'A'] = classLetter
	}
	return t
}

// buildMoveBytes marks the bytes that may appear in move text: files,
// ranks, piece letters (lower case only as promotion suffixes), capture
// marks, promotion and castling.
func buildMoveBytes() (t [256]bool) {
	for _, c := range []byte("abcdefgh12345678KQRBNqrnxX:-=Oo0") {
		t[c] = true
	}
	return t
}

// Lexer splits PGN input into tokens, one line at a time.
type Lexer struct {
	in       *bufio.Reader
	line     string
	pos      int
	lineNum  uint
	ravLevel uint
	done     bool
	err      error
	logger   *slog.Logger
}

// NewLexer returns a lexer reading r. Problems in the input are logged as
// warnings to logger, or to the default logger when it is nil.
func NewLexer(r io.Reader, logger *slog.Logger) *Lexer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Lexer{in: bufio.NewReader(r), logger: logger}
}

// Err returns the first read error. Reaching the end of input is not an
// error.
func (l *Lexer) Err() error { return l.err }

// LineNumber returns the number of the line being read.
func (l *Lexer) LineNumber() uint { return l.lineNum }

// NextToken returns the next token, or an EOFToken once input runs out.
func (l *Lexer) NextToken() *Token {
	for {
		if l.pos >= len(l.line) && !l.nextLine() {
			return &Token{Type: EOFToken, Line: l.lineNum}
		}
		if tok := l.scan(); tok.Type != noToken {
			tok.Line = l.lineNum
			return tok
		}
	}
}

func (l *Lexer) nextLine() bool {
	if l.done {
		return false
	}
	line, err := l.in.ReadString('\n')
	if err != nil {
		l.done = true
		if err != io.EOF {
			l.err = err
			return false
		}
		if line == "" {
			return false
		}
	}
	l.line, l.pos = line, 0
	l.lineNum++
	return true
}

func (l *Lexer) peek() byte {
	if l.pos < len(l.line) {
		return l.line[l.pos]
	}
	return 0
}

func (l *Lexer) skip(class charClass) {
	for l.pos < len(l.line) && classes[l.line[l.pos]] == class {
		l.pos++
	}
}

func (l *Lexer) skipLine() string {
	rest := l.line[l.pos:]
	l.pos = len(l.line)
	return rest
}

func (l *Lexer) warn(msg string, args ...any) {
	l.logger.Warn(msg, append(args, "line", l.lineNum)...)
}

var nothing = &Token{Type: noToken}

// scan reads one symbol starting at the current position.
func (l *Lexer) scan() *Token {
	start := l.pos
	ch := l.line[start]
	l.pos++

	switch classes[ch] {
	case classSpace, classDot:
		l.skip(classes[ch])
	case classTagOpen:
		return l.tagName()
	case classTagClose:
	case classQuote:
		return l.quoted()
	case classBraceOpen:
		return l.comment()
	case classBraceClose:
		l.warn("unmatched comment end")
	case classSemicolon:
		return &Token{Type: CommentToken, Text: strings.TrimSpace(l.skipLine())}
	case classDollar:
		digits := l.pos
		l.skip(classDigit)
		return &Token{Type: NAGToken, Text: "$" + l.line[digits:l.pos]}
	case classAnnotation:
		l.skip(classAnnotation)
		return &Token{Type: NAGToken, Text: nagFor(l.line[start:l.pos])}
	case classCheck:
		l.skip(classCheck)
		return &Token{Type: CheckSymbol}
	case classParenOpen:
		l.ravLevel++
		return &Token{Type: RAVStart}
	case classParenClose:
		if l.ravLevel == 0 {
			l.warn("too many ')'")
			break
		}
		l.ravLevel--
		return &Token{Type: RAVEnd}
	case classPercent:
		l.skipLine()
	case classBackslash:
		l.pos = min(l.pos+1, len(l.line))
	case classStar:
		return &Token{Type: TerminatingResult, Text: "*"}
	case classDash:
		if l.peek() == '-' {
			l.pos++
			// Null moves reach the game so that playing one fails.
			return &Token{Type: MoveToken, Text: "--"}
		}
		l.warn("single '-' not allowed")
	case classDigit:
		return l.number(ch)
	case classLetter:
		return l.moveText(start)
	default:
		l.warn("unknown character", "char", string(ch))
		l.skip(classJunk)
	}
	return nothing
}

func (l *Lexer) tagName() *Token {
	l.skip(classSpace)
	start := l.pos
	for l.pos < len(l.line) {
		if c := classes[l.line[l.pos]]; c != classLetter && c != classDigit {
			break
		}
		l.pos++
	}
	if l.pos == start {
		return nothing
	}
	return &Token{Type: TagToken, Text: l.line[start:l.pos]}
}

func (l *Lexer) quoted() *Token {
	var sb strings.Builder
	for l.pos < len(l.line) {
		ch := l.line[l.pos]
		l.pos++
		switch {
		case ch == '"':
			return &Token{Type: StringToken, Text: sb.String()}
		case ch == '\\' && l.pos < len(l.line):
			sb.WriteByte(l.line[l.pos])
			l.pos++
		default:
			sb.WriteByte(ch)
		}
	}
	l.warn("missing closing quote")
	return &Token{Type: StringToken, Text: strings.TrimRight(sb.String(), "\r\n")}
}

// comment reads a brace comment, which may run over several lines.
func (l *Lexer) comment() *Token {
	var sb strings.Builder
	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			sb.WriteString(l.line[l.pos : l.pos+end])
			l.pos += end + 1
			return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
		}
		sb.WriteString(l.skipLine())
		if !l.nextLine() {
			l.warn("missing end of comment")
			return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
		}
	}
}

// moveText reads a run of move characters. Whether it names a legal move is
// decided when it is played.
func (l *Lexer) moveText(start int) *Token {
	if !moveBytes[l.line[start]] {
		l.skip(classLetter)
		l.warn("unknown move text", "text", l.line[start:l.pos])
		return nothing
	}
	for l.pos < len(l.line) && moveBytes[l.line[l.pos]] {
		l.pos++
	}
	return &Token{Type: MoveToken, Text: l.line[start:l.pos]}
}

// digitPrefixed lists the tokens that begin with a digit but are not move
// numbers. Longer forms come first.
var digitPrefixed = []struct {
	text string
	tok  Token
}{
	{"1/2-1/2", Token{Type: TerminatingResult, Text: "1/2-1/2"}},
	{"0-0-0", Token{Type: MoveToken, Text: "O-O-O"}},
	{"1/2", Token{Type: TerminatingResult, Text: "1/2-1/2"}},
	{"1-0", Token{Type: TerminatingResult, Text: "1-0"}},
	{"0-1", Token{Type: TerminatingResult, Text: "0-1"}},
	{"0-0", Token{Type: MoveToken, Text: "O-O"}},
}

func (l *Lexer) number(first byte) *Token {
	start := l.pos - 1
	for _, d := range digitPrefixed {
		if d.text[0] == first && strings.HasPrefix(l.line[start:], d.text) {
			l.pos = start + len(d.text)
			tok := d.tok
			return &tok
		}
	}
	l.skip(classDigit)
	n, _ := strconv.ParseUint(l.line[start:l.pos], 10, 32)
	l.skip(classDot)
	return &Token{Type: MoveNumber, MoveNum: uint(n)}
}

var nags = map[string]string{"!": "$1", "?": "$2", "!!": "$3", "??": "$4", "!?": "$5", "?!": "$6"}

func nagFor(annotation string) string {
	if n, ok := nags[annotation]; ok {
		return n
	}
	return "$0"
}
