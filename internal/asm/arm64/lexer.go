package arm64

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNewline
	tokIdent
	tokNumber
	tokHash
	tokMinus
	tokComma
	tokLBracket
	tokRBracket
	tokBang
)

var tokenNames = [...]string{
	tokEOF:      "end of input",
	tokNewline:  "end of line",
	tokIdent:    "identifier",
	tokNumber:   "number",
	tokHash:     "'#'",
	tokMinus:    "'-'",
	tokComma:    "','",
	tokLBracket: "'['",
	tokRBracket: "']'",
	tokBang:     "'!'",
}

func (k tokenKind) String() string {
	return tokenNames[k]
}

type token struct {
	kind  tokenKind
	text  string // lowercased identifier or literal text
	value int64  // tokNumber only
	line  int
}

var punctuation = map[byte]tokenKind{
	'#': tokHash, '-': tokMinus, ',': tokComma,
	'[': tokLBracket, ']': tokRBracket, '!': tokBang,
}

func (t token) describe() string {
	switch t.kind {
	case tokIdent, tokNumber:
		return fmt.Sprintf("%s %q", t.kind, t.text)
	}
	return t.kind.String()
}

// lexer splits source text into tokens. Space, tab and carriage return
// separate tokens; newline is a token of its own. Comments start with "//" or
// ";" and run to the end of the line.
type lexer struct {
	path string
	src  string
	pos  int
	line int
}

func newLexer(path string, src []byte) *lexer {
	return &lexer{path: path, src: string(src), line: 1}
}

func (l *lexer) errorf(format string, args ...any) error {
	return &SyntaxError{Path: l.path, Line: l.line, Msg: fmt.Sprintf(format, args...)}
}

func (l *lexer) next() (token, error) {
	l.skipBlanks()
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, line: l.line}, nil
	}
	c := l.src[l.pos]
	switch {
	case c == '\n':
		tok := token{kind: tokNewline, line: l.line}
		l.pos++
		l.line++
		return tok, nil
	case isLetter(c):
		start := l.pos
		for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos])) {
			l.pos++
		}
		return token{kind: tokIdent, text: strings.ToLower(l.src[start:l.pos]), line: l.line}, nil
	case isDigit(c):
		return l.number()
	}
	if kind, ok := punctuation[c]; ok {
		l.pos++
		return token{kind: kind, text: string(c), line: l.line}, nil
	}
	return token{}, l.errorf("unexpected character %q", c)
}

func (l *lexer) skipBlanks() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == ';' || strings.HasPrefix(l.src[l.pos:], "//"):
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

// number lexes a decimal digit run or a 0x-prefixed hexadecimal literal.
func (l *lexer) number() (token, error) {
	start := l.pos
	base := 10
	digits := isDigit
	if strings.HasPrefix(l.src[l.pos:], "0x") || strings.HasPrefix(l.src[l.pos:], "0X") {
		l.pos += 2
		base = 16
		digits = isHexDigit
	}
	bodyStart := l.pos
	for l.pos < len(l.src) && digits(l.src[l.pos]) {
		l.pos++
	}
	text := l.src[start:l.pos]
	if (l.pos < len(l.src) && isLetter(l.src[l.pos])) || l.pos == bodyStart {
		for l.pos < len(l.src) && (isLetter(l.src[l.pos]) || isDigit(l.src[l.pos])) {
			l.pos++
		}
		return token{}, l.errorf("malformed numeric literal %q", l.src[start:l.pos])
	}
	v, err := strconv.ParseUint(l.src[bodyStart:l.pos], base, 64)
	if err != nil || v > math.MaxInt64 {
		return token{}, l.errorf("numeric literal %q out of range", text)
	}
	return token{kind: tokNumber, text: text, value: int64(v), line: l.line}, nil
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
